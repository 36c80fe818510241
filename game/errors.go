package game

import "errors"

var (
	// ErrInvalidConfiguration reports non-positive board dimensions or a
	// non-positive search depth.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrIllegalMove reports a move outside the legal move set of a state.
	ErrIllegalMove = errors.New("illegal move")
)
