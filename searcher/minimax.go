package searcher

import (
	"errors"
	"fmt"
	"math"

	"obstruction/experiments/metrics"
	"obstruction/game"
)

// Algorithm selects the tree traversal strategy.
type Algorithm string

const (
	// Minimax expands every node down to the depth limit.
	Minimax Algorithm = "MM"
	// AlphaBeta carries (alpha, beta) bounds and skips branches that
	// cannot change the root decision. It backs up the same root value and
	// move as Minimax while expanding at most as many nodes.
	AlphaBeta Algorithm = "AB"
)

// ErrAlreadyTerminal reports a search started from a state where the side
// to move has no legal move, i.e. the game is already over.
var ErrAlreadyTerminal = errors.New("no legal move: state is already terminal")

type Option func(s *Searcher)

// Searcher picks moves by depth-limited game-tree search. The search is
// sequential and depth-first: it holds one root-to-leaf path of states at a
// time, and scored siblings are dropped before the next one is created.
type Searcher struct {
	depth     int
	algorithm Algorithm
	evaluate  game.Evaluate
	metrics   metrics.Collector
}

func WithAlgorithm(algorithm Algorithm) Option {
	return func(s *Searcher) {
		s.algorithm = algorithm
	}
}

func WithAlphaBeta() Option {
	return func(s *Searcher) {
		s.algorithm = AlphaBeta
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(s *Searcher) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func New(depth int, options ...Option) (*Searcher, error) {
	if depth < 1 {
		return nil, fmt.Errorf("search depth must be positive, got %d: %w",
			depth, game.ErrInvalidConfiguration)
	}
	s := &Searcher{ // Default values
		depth:     depth,
		algorithm: Minimax,
		evaluate:  game.EvaluateMobility,
		metrics:   metrics.NewCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s, nil
}

// FindMove searches from state to the configured depth and returns the
// best move for the side to move, with the statistics of the search. Every
// visited state counts as one expanded node; branches cut off by alpha-beta
// are never created and never counted. Ties between equally good moves go
// to the one generated first, so repeated calls on the same state return
// the same move and node count.
func (s *Searcher) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, ErrAlreadyTerminal
	}

	s.metrics.Start(string(s.algorithm), s.depth)
	s.metrics.AddNode() // Root counts as expanded

	alpha, beta := math.Inf(-1), math.Inf(1)
	maximizing := state.Player() == game.Max

	best := moves[0]
	value := math.Inf(-1)
	if !maximizing {
		value = math.Inf(1)
	}

	for _, move := range moves {
		child, err := state.Play(move)
		if err != nil {
			return game.Move{}, metrics.SearchMetric{}, err
		}
		v := s.search(child, s.depth-1, alpha, beta)

		if maximizing {
			if v > value {
				value, best = v, move
			}
			if s.algorithm == AlphaBeta && value > alpha {
				alpha = value
			}
		} else {
			if v < value {
				value, best = v, move
			}
			if s.algorithm == AlphaBeta && value < beta {
				beta = value
			}
		}
		if s.algorithm == AlphaBeta && alpha >= beta {
			break
		}
	}

	return best, s.metrics.Complete(), nil
}

func (s *Searcher) search(state game.State, depth int, alpha, beta float64) float64 {
	s.metrics.AddNode()

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.TerminalUtility(state.Winner())
	}
	if depth == 0 {
		return s.evaluate(state)
	}

	if state.Player() == game.Max {
		value := math.Inf(-1)
		for _, move := range moves {
			child := s.play(state, move)
			if v := s.search(child, depth-1, alpha, beta); v > value {
				value = v
			}
			if s.algorithm == AlphaBeta {
				if value > alpha {
					alpha = value
				}
				if alpha >= beta {
					return value
				}
			}
		}
		return value
	}

	value := math.Inf(1)
	for _, move := range moves {
		child := s.play(state, move)
		if v := s.search(child, depth-1, alpha, beta); v < value {
			value = v
		}
		if s.algorithm == AlphaBeta {
			if value < beta {
				beta = value
			}
			if beta <= alpha {
				return value
			}
		}
	}
	return value
}

func (s *Searcher) play(state game.State, move game.Move) game.State {
	child, err := state.Play(move)
	if err != nil {
		// Moves come straight from LegalMoves
		panic(fmt.Sprintf("generated move %v is not playable: %v", move, err))
	}
	return child
}
