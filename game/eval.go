package game

import "math"

// EvaluateMobility scores a cutoff state by how many open squares it leaves
// the side to move. The magnitude is the open count c, except c == 1, which
// scores width*height + 1: the mover is then all but forced to hand the
// last square to the opponent, so the sentinel makes it the worst value of
// its sign. The score is positive when Max is to move (Min chose this
// state) and negative when Min is to move, so both sides end up steering
// toward states that starve the opponent of options.
func EvaluateMobility(s State) float64 {
	b, ok := s.(*Board)
	if !ok {
		panic("unexpected state type")
	}

	util := float64(b.open)
	if b.open == 1 {
		util = float64(b.width*b.height + 1)
	}
	if b.turn == Max {
		return util
	}
	return -util
}

// TerminalUtility maps a decided game to an infinite score so that won and
// lost positions dominate every heuristic estimate.
func TerminalUtility(winner Player) float64 {
	if winner == Max {
		return math.Inf(1)
	}
	return math.Inf(-1)
}
