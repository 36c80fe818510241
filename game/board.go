package game

import (
	"fmt"
	"strings"
)

type cell byte

const (
	cellOpen cell = iota
	cellBlocked
	cellMax
	cellMin
)

var cellSymbols = map[byte]cell{
	'-': cellOpen,
	'/': cellBlocked,
	'O': cellMax,
	'X': cellMin,
}

// Board is an Obstruction position. A move places the active player's
// marker on any open square and blocks every open square adjacent to it;
// the player left without an open square on its turn loses.
//
// Boards are immutable: Play copies, so a parent stays valid while the
// searcher walks its descendants, and the blocked region only ever grows
// from one position to the next.
type Board struct {
	width  int
	height int
	cells  []cell // row-major
	open   int    // count of cellOpen squares
	turn   Player
	marks  [2]Move // most recently placed marker, indexed by Player - 1
	placed [2]bool
}

// NewBoard returns an all-open width x height board with Max to move.
func NewBoard(width, height int) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("board dimensions must be positive, got %dx%d: %w",
			width, height, ErrInvalidConfiguration)
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
		open:   width * height,
		turn:   Max,
	}, nil
}

// ParseBoard builds a position from one string per row, using the same
// symbols String renders: '-' open, '/' blocked, 'O' Max marker, 'X' Min
// marker. The last marker parsed for each side is taken as its position.
func ParseBoard(turn Player, rows ...string) (*Board, error) {
	if turn != Max && turn != Min {
		return nil, fmt.Errorf("turn must be Max or Min: %w", ErrInvalidConfiguration)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("board dimensions must be positive: %w", ErrInvalidConfiguration)
	}

	b := &Board{
		width:  len(rows[0]),
		height: len(rows),
		cells:  make([]cell, len(rows[0])*len(rows)),
		turn:   turn,
	}
	for row, line := range rows {
		if len(line) != b.width {
			return nil, fmt.Errorf("row %d has %d squares, want %d: %w",
				row, len(line), b.width, ErrInvalidConfiguration)
		}
		for col := 0; col < b.width; col++ {
			c, ok := cellSymbols[line[col]]
			if !ok {
				return nil, fmt.Errorf("unknown square symbol %q at %d/%d: %w",
					line[col], row, col, ErrInvalidConfiguration)
			}
			b.cells[row*b.width+col] = c
			switch c {
			case cellOpen:
				b.open++
			case cellMax:
				b.marks[Max-1] = Move{Row: row, Col: col}
				b.placed[Max-1] = true
			case cellMin:
				b.marks[Min-1] = Move{Row: row, Col: col}
				b.placed[Min-1] = true
			}
		}
	}
	return b, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// OpenSquares returns the number of squares that are neither blocked nor
// carry a marker.
func (b *Board) OpenSquares() int { return b.open }

// Player returns the side to move.
func (b *Board) Player() Player { return b.turn }

// Position returns the square of p's most recently placed marker, or false
// if p has not placed one yet.
func (b *Board) Position(p Player) (Move, bool) {
	if p != Max && p != Min {
		return Move{}, false
	}
	return b.marks[p-1], b.placed[p-1]
}

// LegalMoves lists every open square in row-major order. The order is
// stable, so move generation and tie-breaking are deterministic. An empty
// result means the side to move has lost.
func (b *Board) LegalMoves() []Move {
	moves := make([]Move, 0, b.open)
	for i, c := range b.cells {
		if c == cellOpen {
			moves = append(moves, Move{Row: i / b.width, Col: i % b.width})
		}
	}
	return moves
}

// IsTerminal reports whether the side to move has no legal move.
func (b *Board) IsTerminal() bool { return b.open == 0 }

// Winner returns NoPlayer while the game is running, and otherwise the
// opponent of the side stuck without a move.
func (b *Board) Winner() Player {
	if b.open > 0 {
		return NoPlayer
	}
	return b.turn.Opponent()
}

// Play returns the position after the side to move places its marker on m:
// the marker square and every open square around it become unavailable and
// the turn passes. The receiver is not modified.
func (b *Board) Play(m Move) (State, error) {
	if m.Row < 0 || m.Row >= b.height || m.Col < 0 || m.Col >= b.width {
		return nil, fmt.Errorf("square %v is outside the %dx%d board: %w",
			m, b.width, b.height, ErrIllegalMove)
	}
	if b.cells[m.Row*b.width+m.Col] != cellOpen {
		return nil, fmt.Errorf("square %v is not open: %w", m, ErrIllegalMove)
	}

	cells := make([]cell, len(b.cells))
	copy(cells, b.cells)
	open := b.open

	mark := cellMax
	if b.turn == Min {
		mark = cellMin
	}
	cells[m.Row*b.width+m.Col] = mark
	open--

	for row := m.Row - 1; row <= m.Row+1; row++ {
		if row < 0 || row >= b.height {
			continue
		}
		for col := m.Col - 1; col <= m.Col+1; col++ {
			if col < 0 || col >= b.width {
				continue
			}
			if i := row*b.width + col; cells[i] == cellOpen {
				cells[i] = cellBlocked
				open--
			}
		}
	}

	next := &Board{
		width:  b.width,
		height: b.height,
		cells:  cells,
		open:   open,
		turn:   b.turn.Opponent(),
		marks:  b.marks,
		placed: b.placed,
	}
	next.marks[b.turn-1] = m
	next.placed[b.turn-1] = true
	return next, nil
}

// String renders the board as a grid with numbered rows and columns.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString(" ")
	for col := 0; col < b.width; col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	for row := 0; row < b.height; row++ {
		fmt.Fprintf(&sb, "\n%d", row)
		for col := 0; col < b.width; col++ {
			switch b.cells[row*b.width+col] {
			case cellOpen:
				sb.WriteString(" -")
			case cellBlocked:
				sb.WriteString(" /")
			case cellMax:
				sb.WriteString(" O")
			case cellMin:
				sb.WriteString(" X")
			}
		}
	}
	return sb.String()
}
