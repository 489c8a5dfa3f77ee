package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/playmategames/tictactoe-bot-backend/internal/apperror"
	"github.com/playmategames/tictactoe-bot-backend/internal/entity"
)

// GamePlayService owns a session's lifecycle: it applies the human's move,
// lets the bot reply, and handles restarts and difficulty switches.
type GamePlayService interface {
	GetOrCreateGame(ctx context.Context, player *entity.Player, difficulty string) (*entity.Game, error)

	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
	RestartGame(ctx context.Context, playerID string) (*entity.Game, error)
	SetDifficulty(ctx context.Context, playerID, level string) (*entity.Game, error)
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
	botService    BotService

	defaultDifficulty string
}

func NewGamePlayService(logger *slog.Logger, playerService PlayerService, gameService GameService, botService BotService, defaultDifficulty string) GamePlayService {
	return &gamePlayService{
		logger:            logger,
		playerService:     playerService,
		gameService:       gameService,
		botService:        botService,
		defaultDifficulty: defaultDifficulty,
	}
}

// GetOrCreateGame - returns the player's current session or starts a new one.
func (that *gamePlayService) GetOrCreateGame(ctx context.Context, player *entity.Player, difficulty string) (*entity.Game, error) {
	if player.GameID != "" {
		game, err := that.gameService.GetGameByID(ctx, player.GameID)
		if err == nil {
			return game, nil
		}

		that.logger.Warn("stored game is gone, starting a new one", "gameID", player.GameID, "error", err)
	}

	return that.createGame(ctx, player, difficulty)
}

// MakeTurn - applies the human move; while the game stays ongoing the bot
// replies synchronously in the same call.
func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error) {
	player, game, err := that.getPlayerGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(player.Mark, cell); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsOngoing() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// RestartGame - resets the session's board; the difficulty level survives.
func (that *gamePlayService) RestartGame(ctx context.Context, playerID string) (*entity.Game, error) {
	_, game, err := that.getPlayerGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	game.Restart()

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// SetDifficulty - switches the bot level, which always restarts the session.
func (that *gamePlayService) SetDifficulty(ctx context.Context, playerID, level string) (*entity.Game, error) {
	_, game, err := that.getPlayerGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err = game.SetDifficulty(level); err != nil {
		return game, fmt.Errorf("failed to set difficulty: %w", err)
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) createGame(ctx context.Context, player *entity.Player, difficulty string) (*entity.Game, error) {
	if difficulty == "" {
		difficulty = that.defaultDifficulty
	}

	if !entity.IsValidDifficulty(difficulty) {
		return nil, fmt.Errorf("failed to create game: %w: %q", apperror.ErrUnknownDifficulty, difficulty)
	}

	game, err := that.gameService.CreateGame(ctx, player, difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) getPlayerGame(ctx context.Context, playerID string) (*entity.Player, *entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return player, game, nil
}
