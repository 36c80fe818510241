package game

import "fmt"

// Move places the active player's marker on the open square at the
// zero-based row and column.
type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("%d/%d", m.Row, m.Col)
}
