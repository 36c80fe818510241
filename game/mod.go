package game

// Player identifies one of the two sides. Max plays "O" and moves first,
// Min plays "X". NoPlayer is returned where no side applies, such as the
// winner of an unfinished game.
type Player int8

const (
	NoPlayer Player = iota
	Max
	Min
)

func (p Player) Opponent() Player {
	switch p {
	case Max:
		return Min
	case Min:
		return Max
	default:
		return NoPlayer
	}
}

func (p Player) String() string {
	switch p {
	case Max:
		return "O"
	case Min:
		return "X"
	default:
		return "-"
	}
}

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() Player
	LegalMoves() []Move
	Play(Move) (State, error)
	Winner() Player
	IsTerminal() bool
}

// Evaluate scores a non-terminal cutoff state. Positive values favor Max,
// negative values favor Min.
type Evaluate func(State) float64
