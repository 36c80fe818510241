package agent

import (
	"golang.org/x/exp/rand"

	"obstruction/experiments/metrics"
	"obstruction/game"
	"obstruction/searcher"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays uniformly random legal
// moves. The same seed reproduces the same game.
func NewRandomAgent(seed uint64) Agent {
	return randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a randomAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, searcher.ErrAlreadyTerminal
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{Algorithm: "random"}, nil
}
