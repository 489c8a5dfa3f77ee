package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Run("Won position scores plus one for the bot", func(t *testing.T) {
		// Given: a board where O already holds the middle row
		board := [9]string{
			"X", "X", "",
			"O", "O", "O",
			"X", "", "",
		}

		// Then: the position is a bot win regardless of who would move
		require.Equal(t, 1, Score(board, "O", "X", false))
		require.Equal(t, 1, Score(board, "O", "X", true))
	})

	t.Run("Lost position scores minus one for the bot", func(t *testing.T) {
		// Given: a board where X holds the left column
		board := [9]string{
			"X", "O", "",
			"X", "O", "",
			"X", "", "",
		}

		require.Equal(t, -1, Score(board, "O", "X", true))
	})

	t.Run("Drawn full board scores zero", func(t *testing.T) {
		board := [9]string{
			"O", "X", "O",
			"O", "X", "X",
			"X", "O", "O",
		}

		require.Equal(t, 0, Score(board, "O", "X", true))
	})

	t.Run("Empty board is a draw under optimal play", func(t *testing.T) {
		board := [9]string{}

		assert.Equal(t, 0, Score(board, "O", "X", true))
		assert.Equal(t, 0, Score(board, "O", "X", false))
	})

	t.Run("Board is left untouched by the evaluation", func(t *testing.T) {
		// Given: a mid-game position
		board := [9]string{"X", "", "O", "", "X", "", "", "", ""}
		before := board

		// When: the position is evaluated to full depth
		_ = Score(board, "O", "X", true)

		// Then: the caller's board is bit-identical to what it was
		require.Equal(t, before, board)
	})
}

func TestBestCell(t *testing.T) {
	t.Run("Empty board opens in the top-left corner", func(t *testing.T) {
		// Given: an empty board; every opening scores a draw, so the
		// row-major tie-break settles on cell 0. Locked as a baseline.
		board := [9]string{}

		cell, err := BestCell(board, "O", "X")

		require.NoError(t, err)
		require.Equal(t, 0, cell)
	})

	t.Run("Immediate win is taken over a plain block", func(t *testing.T) {
		// Given: O can complete the middle row at cell 5; blocking X at
		// cell 2 instead would only salvage a draw
		board := [9]string{
			"X", "X", "",
			"O", "O", "",
			"X", "", "",
		}

		cell, err := BestCell(board, "O", "X")

		require.NoError(t, err)
		require.Equal(t, 5, cell)
	})

	t.Run("Imminent loss is blocked", func(t *testing.T) {
		// Given: X threatens the top row at cell 2 and O has no win of its own
		board := [9]string{
			"X", "X", "",
			"", "O", "",
			"", "", "",
		}

		cell, err := BestCell(board, "O", "X")

		require.NoError(t, err)
		require.Equal(t, 2, cell)
	})

	t.Run("Blocking move that doubles as a fork is preferred by scan order", func(t *testing.T) {
		// Given: both cell 2 and cell 5 win for O eventually; cell 2 blocks
		// the top row and forks the diagonal with the middle row, cell 5 wins
		// outright. Both score +1, so the lower index wins the tie.
		board := [9]string{
			"X", "X", "",
			"O", "O", "",
			"", "", "",
		}

		cell, err := BestCell(board, "O", "X")

		require.NoError(t, err)
		require.Equal(t, 2, cell)

		// Then: the chosen continuation is in fact a forced bot win
		next := board
		next[cell] = "O"
		require.Equal(t, 1, Score(next, "O", "X", false))
	})

	t.Run("Full board is a contract violation", func(t *testing.T) {
		board := [9]string{"X", "O", "X", "O", "X", "O", "X", "O", "X"}

		_, err := BestCell(board, "O", "X")

		assert.ErrorIs(t, err, ErrNoEmptyCells)
	})
}

// TestBestCell_SelfPlayAlwaysDraws pits the exhaustive search against itself
// from the empty board; perfect play from both sides must end in a draw.
func TestBestCell_SelfPlayAlwaysDraws(t *testing.T) {
	board := [9]string{}
	mark, opponent := "X", "O"

	for Winner(board) == "" && !IsDraw(board) {
		cell, err := BestCell(board, mark, opponent)
		require.NoError(t, err)
		require.Equal(t, EmptyCell, board[cell])

		board[cell] = mark
		mark, opponent = opponent, mark
	}

	require.Empty(t, Winner(board))
	require.True(t, IsDraw(board))
}
