package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playmategames/tictactoe-bot-backend/internal/apperror"
)

func TestNewGame(t *testing.T) {
	// When: create a new game instance
	game := NewGame("000", DifficultyHard)

	// Then: the game should have the expected initial state
	expectedGame := Game{
		ID:         "000",
		Board:      [9]string{},
		Turn:       PlayerX,
		Winner:     "",
		Status:     StatusOngoing,
		Difficulty: DifficultyHard,
	}

	require.NotNil(t, game)
	require.Equal(t, expectedGame, *game)
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: We have a new game
		game := NewGame("000", DifficultyHard)

		// When: X makes the first move
		err := game.MakeTurn(PlayerX, 0)
		require.NoError(t, err)

		// Then: the board reflects the move and the turn passes to O
		require.Equal(t, PlayerX, game.Board[0])
		require.Equal(t, PlayerO, game.Turn)
		require.Equal(t, StatusOngoing, game.Status)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game with a move already made
		game := NewGame("000", DifficultyHard)
		require.NoError(t, game.MakeTurn(PlayerX, 0))

		expectedGame := *game

		// When: O tries to move to the same occupied cell
		err := game.MakeTurn(PlayerO, 0)

		// Then: an ErrCellOccupied error should be returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// Then: the game state should remain unchanged
		require.Equal(t, expectedGame, *game)
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		// Given: a new game where X moves first
		game := NewGame("000", DifficultyHard)

		// When: O tries to make a move before X
		err := game.MakeTurn(PlayerO, 1)

		// Then: an ErrNotYourTurn error should be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		require.Equal(t, EmptyCell, game.Board[1])
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		game := NewGame("000", DifficultyHard)

		// When: a cell index outside the board is passed
		err := game.MakeTurn(PlayerX, 20)

		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Invalid Negative Cell", func(t *testing.T) {
		game := NewGame("000", DifficultyHard)

		err := game.MakeTurn(PlayerX, -1)

		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a game where X has already won
		game := NewGame("000", DifficultyHard)
		game.Board = [9]string{PlayerX, PlayerX, PlayerX, EmptyCell, PlayerO, EmptyCell, EmptyCell, PlayerO, EmptyCell}
		game.Status = StatusFinished
		game.Winner = PlayerX

		// When: O tries to make a move after the game has finished
		err := game.MakeTurn(PlayerO, 3)

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X holds two cells of the top row
		game := NewGame("000", DifficultyHard)
		game.Board = [9]string{PlayerX, PlayerX, EmptyCell, PlayerO, PlayerO, EmptyCell, EmptyCell, EmptyCell, EmptyCell}

		// When: X completes the row
		err := game.MakeTurn(PlayerX, 2)
		require.NoError(t, err)

		// Then: the game is finished with X as the winner and no turn left
		require.Equal(t, StatusFinished, game.Status)
		require.Equal(t, PlayerX, game.Winner)
		require.Empty(t, game.Turn)
	})

	t.Run("Filling the last cell without a line is a tie", func(t *testing.T) {
		// Given: one empty cell and no winning line in sight
		game := NewGame("000", DifficultyHard)
		game.Board = [9]string{
			PlayerO, PlayerX, PlayerO,
			PlayerO, PlayerX, PlayerX,
			PlayerX, PlayerO, EmptyCell,
		}

		// When: X fills the final cell
		err := game.MakeTurn(PlayerX, 8)
		require.NoError(t, err)

		// Then: the game ends in a tie
		require.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerTie, game.Winner)
	})
}

func TestGame_Restart(t *testing.T) {
	// Given: a finished game on the normal difficulty
	game := NewGame("000", DifficultyNormal)
	game.Board = [9]string{PlayerX, PlayerX, PlayerX, PlayerO, PlayerO, EmptyCell, EmptyCell, EmptyCell, EmptyCell}
	game.Status = StatusFinished
	game.Winner = PlayerX
	game.Turn = ""

	// When: the game is restarted
	game.Restart()

	// Then: the board is empty, X moves first, and the difficulty survives
	require.Equal(t, [9]string{}, game.Board)
	require.Equal(t, StatusOngoing, game.Status)
	require.Equal(t, PlayerX, game.Turn)
	require.Empty(t, game.Winner)
	require.Equal(t, DifficultyNormal, game.Difficulty)
}

func TestGame_SetDifficulty(t *testing.T) {
	t.Run("Switching difficulty restarts the game", func(t *testing.T) {
		// Given: a game in progress on hard
		game := NewGame("000", DifficultyHard)
		require.NoError(t, game.MakeTurn(PlayerX, 4))

		// When: the difficulty is switched to easy
		err := game.SetDifficulty(DifficultyEasy)
		require.NoError(t, err)

		// Then: the in-progress board is discarded and the level is stored
		require.Equal(t, DifficultyEasy, game.Difficulty)
		require.Equal(t, [9]string{}, game.Board)
		require.Equal(t, StatusOngoing, game.Status)
		require.Equal(t, PlayerX, game.Turn)
	})

	t.Run("Unknown level is rejected", func(t *testing.T) {
		// Given: a game with a move on the board
		game := NewGame("000", DifficultyHard)
		require.NoError(t, game.MakeTurn(PlayerX, 4))

		// When: an unknown level is passed
		err := game.SetDifficulty("nightmare")

		// Then: the error is returned and nothing is discarded
		require.ErrorIs(t, err, apperror.ErrUnknownDifficulty)
		assert.Equal(t, DifficultyHard, game.Difficulty)
		assert.Equal(t, PlayerX, game.Board[4])
	})
}

func TestIsValidDifficulty(t *testing.T) {
	for _, level := range []string{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		assert.True(t, IsValidDifficulty(level), level)
	}

	assert.False(t, IsValidDifficulty(""))
	assert.False(t, IsValidDifficulty("impossible"))
}
