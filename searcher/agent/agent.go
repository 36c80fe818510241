package agent

import (
	"obstruction/experiments/metrics"
	"obstruction/game"
	"obstruction/searcher"
)

// Agent picks a move for the side to move at state, along with the
// statistics of whatever deliberation produced it.
type Agent interface {
	FindMove(state game.State) (game.Move, metrics.SearchMetric, error)
}

type searchAgent struct {
	searcher *searcher.Searcher
}

// NewSearchAgent returns an agent that plays by depth-limited search.
func NewSearchAgent(s *searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	return a.searcher.FindMove(state)
}
