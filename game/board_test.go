package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("creating an all-open board with Max to move", func(t *testing.T) {
		board, err := NewBoard(3, 2)

		require.NoError(t, err)
		require.Equal(t, 3, board.Width())
		require.Equal(t, 2, board.Height())
		require.Equal(t, 6, board.OpenSquares())
		require.Equal(t, Max, board.Player())
		require.False(t, board.IsTerminal())

		_, placed := board.Position(Max)
		require.False(t, placed, "No marker should be placed yet")
		_, placed = board.Position(Min)
		require.False(t, placed, "No marker should be placed yet")
	})

	t.Run("rejecting non-positive dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 3}, {0, 0}} {
			_, err := NewBoard(dims[0], dims[1])
			require.ErrorIs(t, err, ErrInvalidConfiguration)
		}
	})
}

func TestParseBoard(t *testing.T) {
	t.Run("parsing a mid-game position", func(t *testing.T) {
		board, err := ParseBoard(Min,
			"O/-",
			"//X",
			"---")

		require.NoError(t, err)
		require.Equal(t, 3, board.Width())
		require.Equal(t, 3, board.Height())
		require.Equal(t, 4, board.OpenSquares())
		require.Equal(t, Min, board.Player())

		pos, placed := board.Position(Max)
		require.True(t, placed)
		require.Equal(t, Move{Row: 0, Col: 0}, pos)
		pos, placed = board.Position(Min)
		require.True(t, placed)
		require.Equal(t, Move{Row: 1, Col: 2}, pos)
	})

	t.Run("rejecting malformed input", func(t *testing.T) {
		_, err := ParseBoard(NoPlayer, "--")
		require.ErrorIs(t, err, ErrInvalidConfiguration, "turn must be a real player")

		_, err = ParseBoard(Max)
		require.ErrorIs(t, err, ErrInvalidConfiguration, "no rows")

		_, err = ParseBoard(Max, "---", "--")
		require.ErrorIs(t, err, ErrInvalidConfiguration, "ragged rows")

		_, err = ParseBoard(Max, "-?-")
		require.ErrorIs(t, err, ErrInvalidConfiguration, "unknown symbol")
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("listing open squares in row-major order", func(t *testing.T) {
		board, err := ParseBoard(Max,
			"-/O",
			"X--")
		require.NoError(t, err)

		got := board.LegalMoves()

		require.Equal(t, []Move{
			{Row: 0, Col: 0},
			{Row: 1, Col: 1},
			{Row: 1, Col: 2},
		}, got, "Moves should enumerate open squares row by row")
	})

	t.Run("returning no moves exactly on terminal boards", func(t *testing.T) {
		board, err := ParseBoard(Min,
			"O/",
			"//")
		require.NoError(t, err)

		require.Empty(t, board.LegalMoves())
		require.True(t, board.IsTerminal())
	})
}

func TestPlay(t *testing.T) {
	t.Run("placing a marker blocks the open neighborhood", func(t *testing.T) {
		board, err := NewBoard(3, 3)
		require.NoError(t, err)

		next, err := board.Play(Move{Row: 0, Col: 0})

		require.NoError(t, err)
		b := next.(*Board)
		require.Equal(t, 5, b.OpenSquares(), "Corner move should block its two side neighbors and the diagonal")
		require.Equal(t, Min, b.Player(), "Turn should pass to Min")
		require.Equal(t, []Move{
			{Row: 0, Col: 2},
			{Row: 1, Col: 2},
			{Row: 2, Col: 0},
			{Row: 2, Col: 1},
			{Row: 2, Col: 2},
		}, b.LegalMoves())

		pos, placed := b.Position(Max)
		require.True(t, placed)
		require.Equal(t, Move{Row: 0, Col: 0}, pos)
	})

	t.Run("a center move on 3x3 ends the game", func(t *testing.T) {
		board, err := NewBoard(3, 3)
		require.NoError(t, err)

		next, err := board.Play(Move{Row: 1, Col: 1})

		require.NoError(t, err)
		require.Equal(t, 0, next.(*Board).OpenSquares())
		require.True(t, next.IsTerminal())
		require.Equal(t, Max, next.Winner(), "Min is left without a move")
	})

	t.Run("never mutating the parent position", func(t *testing.T) {
		board, err := NewBoard(2, 2)
		require.NoError(t, err)

		_, err = board.Play(Move{Row: 1, Col: 1})

		require.NoError(t, err)
		require.Equal(t, 4, board.OpenSquares(), "Parent should be untouched")
		require.Equal(t, Max, board.Player())
		require.Len(t, board.LegalMoves(), 4)
	})

	t.Run("rejecting moves outside the board", func(t *testing.T) {
		board, err := NewBoard(2, 2)
		require.NoError(t, err)

		for _, move := range []Move{
			{Row: -1, Col: 0},
			{Row: 0, Col: -1},
			{Row: 2, Col: 0},
			{Row: 0, Col: 2},
		} {
			_, err := board.Play(move)
			require.ErrorIs(t, err, ErrIllegalMove)
		}
	})

	t.Run("rejecting moves onto unavailable squares", func(t *testing.T) {
		board, err := ParseBoard(Min,
			"O/-",
			"---")
		require.NoError(t, err)

		_, err = board.Play(Move{Row: 0, Col: 0})
		require.ErrorIs(t, err, ErrIllegalMove, "Marker squares are not open")

		_, err = board.Play(Move{Row: 0, Col: 1})
		require.ErrorIs(t, err, ErrIllegalMove, "Blocked squares are not open")
	})
}

func TestWinner(t *testing.T) {
	t.Run("no winner while any square is open", func(t *testing.T) {
		board, err := NewBoard(2, 2)
		require.NoError(t, err)

		require.Equal(t, NoPlayer, board.Winner())
	})

	t.Run("the stuck player's opponent wins", func(t *testing.T) {
		board, err := ParseBoard(Min,
			"O/",
			"//")
		require.NoError(t, err)
		require.Equal(t, Max, board.Winner())

		board, err = ParseBoard(Max,
			"X/",
			"//")
		require.NoError(t, err)
		require.Equal(t, Min, board.Winner())
	})
}

func TestBoardString(t *testing.T) {
	board, err := ParseBoard(Min,
		"O/-",
		"-X-")
	require.NoError(t, err)

	want := "  0 1 2\n" +
		"0 O / -\n" +
		"1 - X -"
	require.Equal(t, want, board.String())
}

func TestPlayerOpponent(t *testing.T) {
	require.Equal(t, Min, Max.Opponent())
	require.Equal(t, Max, Min.Opponent())
	require.Equal(t, NoPlayer, NoPlayer.Opponent())
}
