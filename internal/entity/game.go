package entity

import (
	"fmt"

	"github.com/playmategames/tictactoe-bot-backend/internal/apperror"
	"github.com/playmategames/tictactoe-bot-backend/internal/engine"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = engine.EmptyCell
)

const (
	DifficultyEasy   = "easy"
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"
)

type Game struct {
	ID         string    `json:"id"`
	Board      [9]string `json:"board"`
	Turn       string    `json:"player_turn"`
	Winner     string    `json:"winner"`
	Status     string    `json:"status"`
	Difficulty string    `json:"difficulty"`
	Players    []*Player `json:"players,omitempty"`
}

// NewGame - creates an ongoing game with an empty board.
// The human always plays X and moves first, the bot replies with O.
func NewGame(id, difficulty string) *Game {
	return &Game{
		ID:         id,
		Board:      [9]string{},
		Turn:       PlayerX,
		Status:     StatusOngoing,
		Difficulty: difficulty,
	}
}

// IsValidDifficulty - reports whether the level is one of easy, normal or hard.
func IsValidDifficulty(level string) bool {
	switch level {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	default:
		return false
	}
}

// MakeTurn - places the mark on the cell and re-evaluates the game state.
// An invalid move leaves the game untouched and returns a sentinel error.
func (that *Game) MakeTurn(playerMark string, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = playerMark
	that.UpdateState()

	return nil
}

// UpdateState - re-evaluates the board and moves the game forward: a win or a
// tie finishes it, otherwise the turn passes to the other mark.
func (that *Game) UpdateState() {
	if winner := engine.Winner(that.Board); winner != "" {
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = ""
		return
	}

	if engine.IsDraw(that.Board) {
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
		return
	}

	that.Turn = toggleMark(that.Turn)
}

// Restart - resets the board to an ongoing empty game.
// The difficulty setting survives the restart.
func (that *Game) Restart() {
	that.Board = [9]string{}
	that.Turn = PlayerX
	that.Winner = ""
	that.Status = StatusOngoing
}

// SetDifficulty - switches the bot level and restarts the game;
// changing the level always discards the game in progress.
func (that *Game) SetDifficulty(level string) error {
	if !IsValidDifficulty(level) {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, level)
	}

	that.Difficulty = level
	that.Restart()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func toggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
