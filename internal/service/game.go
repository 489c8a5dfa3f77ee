package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/playmategames/tictactoe-bot-backend/internal/entity"
	"github.com/playmategames/tictactoe-bot-backend/internal/repository"
)

type GameService interface {
	CreateGame(ctx context.Context, player *entity.Player, difficulty string) (*entity.Game, error)
	UpdateGame(ctx context.Context, game *entity.Game) error
	DeleteGame(ctx context.Context, gameID string) error

	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
}

type gameService struct {
	gameRepo repository.GameRepository
}

func NewGameService(gameRepo repository.GameRepository) GameService {
	return &gameService{
		gameRepo: gameRepo,
	}
}

// CreateGame - creates a session for the player: the human takes X and moves
// first, the bot opponent takes O.
func (that *gameService) CreateGame(ctx context.Context, player *entity.Player, difficulty string) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString(), difficulty)

	player.GameID = game.ID
	player.Mark = entity.PlayerX

	botPlayer := entity.NewBotPlayer(game.ID, entity.PlayerO)
	game.Players = append(game.Players, player, botPlayer)

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return game, nil
}

func (that *gameService) UpdateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *gameService) DeleteGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

func (that *gameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}
