package service

import (
	"errors"
	"fmt"

	"github.com/playmategames/tictactoe-bot-backend/internal/engine"
	"github.com/playmategames/tictactoe-bot-backend/internal/entity"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

// randSource is the slice of math/rand the bot needs.
// Tests inject a deterministic implementation to pin tier behavior.
type randSource interface {
	Float64() float64
	Intn(n int) int
}

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct {
	random randSource

	// normalOptimalChance - probability that the normal tier plays the minimax
	// move instead of a random one.
	normalOptimalChance float64
}

func NewBotService(random randSource, normalOptimalChance float64) BotService {
	return &botService{
		random:              random,
		normalOptimalChance: normalOptimalChance,
	}
}

// MakeTurn - chooses a cell according to the game's difficulty and applies the
// bot's mark there. Calling it on a full board is a caller contract violation
// and fails with ErrNoAvailableMoves.
func (that *botService) MakeTurn(game *entity.Game) error {
	botPlayer := findBotPlayer(game)
	if botPlayer == nil {
		return ErrBotNotFound
	}

	chosenCell, err := that.chooseCell(game, botPlayer.Mark)
	if err != nil {
		return err
	}

	if err = game.MakeTurn(botPlayer.Mark, chosenCell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

func (that *botService) chooseCell(game *entity.Game, botMark string) (int, error) {
	availableCells := engine.EmptyCells(game.Board)
	if len(availableCells) == 0 {
		return 0, ErrNoAvailableMoves
	}

	switch game.Difficulty {
	case entity.DifficultyEasy:
		return availableCells[that.random.Intn(len(availableCells))], nil
	case entity.DifficultyNormal:
		if that.random.Float64() >= that.normalOptimalChance {
			return availableCells[that.random.Intn(len(availableCells))], nil
		}
	}

	// normal tier past the coin flip, hard tier always
	bestCell, err := engine.BestCell(game.Board, botMark, opponentMark(botMark))
	if err != nil {
		return 0, fmt.Errorf("failed to pick best cell: %w", err)
	}

	return bestCell, nil
}

func findBotPlayer(game *entity.Game) *entity.Player {
	for _, player := range game.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}

func opponentMark(mark string) string {
	if mark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}
