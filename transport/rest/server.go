package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/playmategames/tictactoe-bot-backend/internal/entity"
)

type playerService interface {
	GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error)
}

type gamePlayService interface {
	GetOrCreateGame(ctx context.Context, player *entity.Player, difficulty string) (*entity.Game, error)

	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
	RestartGame(ctx context.Context, playerID string) (*entity.Game, error)
	SetDifficulty(ctx context.Context, playerID, level string) (*entity.Game, error)
}

type Server struct {
	logger *slog.Logger

	players  playerService
	gamePlay gamePlayService
}

func New(logger *slog.Logger, players playerService, gamePlay gamePlayService) *Server {
	return &Server{
		logger:   logger,
		players:  players,
		gamePlay: gamePlay,
	}
}

// Router - wires all routes and returns the handler.
func (that *Server) Router() http.Handler {
	router := chi.NewRouter()

	router.Get("/ping", that.handlePing)

	router.Route("/api/game", func(router chi.Router) {
		router.Post("/", that.handleNewGame)
		router.Post("/turn", that.handleTurn)
		router.Post("/restart", that.handleRestart)
		router.Post("/difficulty", that.handleDifficulty)
	})

	return router
}

// Start - runs the HTTP server until the context is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
