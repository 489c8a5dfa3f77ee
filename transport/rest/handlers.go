package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/playmategames/tictactoe-bot-backend/internal/apperror"
	"github.com/playmategames/tictactoe-bot-backend/internal/entity"
	"github.com/playmategames/tictactoe-bot-backend/internal/repository"
)

// playerIDHeader carries the caller's identity; the server issues one on the
// first game request and the client echoes it back on every call.
const playerIDHeader = "X-Player-ID"

type newGameRequest struct {
	Difficulty string `json:"difficulty,omitempty"`
}

type turnRequest struct {
	Cell int `json:"cell"`
}

type difficultyRequest struct {
	Difficulty string `json:"difficulty"`
}

type responsePayload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *entity.Game   `json:"game,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("handler", "newGame")
	ctx := r.Context()

	var req newGameRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	player, err := that.players.GetOrCreatePlayer(ctx, r.Header.Get(playerIDHeader))
	if err != nil {
		log.Error("failed to get or create player", "error", err)
		writeError(w, statusFor(err), err)
		return
	}

	game, err := that.gamePlay.GetOrCreateGame(ctx, player, req.Difficulty)
	if err != nil {
		log.Error("failed to get or create game", "error", err)
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, responsePayload{Player: player, Game: game})
}

func (that *Server) handleTurn(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("handler", "turn")
	ctx := r.Context()

	var req turnRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	game, err := that.gamePlay.MakeTurn(ctx, r.Header.Get(playerIDHeader), req.Cell)
	if err != nil {
		log.Warn("turn rejected", "cell", req.Cell, "error", err)
		writeGameError(w, statusFor(err), game, err)
		return
	}

	writeJSON(w, http.StatusOK, responsePayload{Game: game})
}

func (that *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("handler", "restart")
	ctx := r.Context()

	game, err := that.gamePlay.RestartGame(ctx, r.Header.Get(playerIDHeader))
	if err != nil {
		log.Error("failed to restart game", "error", err)
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, responsePayload{Game: game})
}

func (that *Server) handleDifficulty(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("handler", "difficulty")
	ctx := r.Context()

	var req difficultyRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	game, err := that.gamePlay.SetDifficulty(ctx, r.Header.Get(playerIDHeader), req.Difficulty)
	if err != nil {
		log.Warn("difficulty change rejected", "level", req.Difficulty, "error", err)
		writeGameError(w, statusFor(err), game, err)
		return
	}

	writeJSON(w, http.StatusOK, responsePayload{Game: game})
}

// statusFor - maps service errors onto HTTP statuses: rejected moves are a
// conflict with the current state, unknown ids are not found.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrNotYourTurn):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrUnknownDifficulty):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrPlayerNotFound),
		errors.Is(err, repository.ErrGameNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}

	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, payload responsePayload) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, responsePayload{Error: err.Error()})
}

// writeGameError - a rejected move is not fatal: the response carries the
// unchanged game state next to the error so the client can re-render it.
func writeGameError(w http.ResponseWriter, status int, game *entity.Game, err error) {
	writeJSON(w, status, responsePayload{Game: game, Error: err.Error()})
}
