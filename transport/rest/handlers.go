package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-replay/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-replay/internal/entity"
)

var errMalformedBody = errors.New("malformed request body")

type gameUseCase interface {
	CreateGame(ctx context.Context) (*entity.View, error)
	GetView(ctx context.Context, id string) (*entity.View, error)
	ViewAt(ctx context.Context, id string, pointer int) (*entity.View, error)
	PlayMove(ctx context.Context, id string, row, column int) (*entity.View, error)
	JumpToMove(ctx context.Context, id string, destination int) (*entity.View, error)
	Reset(ctx context.Context, id string) (*entity.View, error)
	DeleteGame(ctx context.Context, id string) error
}

type Handlers interface {
	CreateGame(w http.ResponseWriter, r *http.Request)
	GetGame(w http.ResponseWriter, r *http.Request)
	DeleteGame(w http.ResponseWriter, r *http.Request)
	PlayMove(w http.ResponseWriter, r *http.Request)
	JumpToMove(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
}

type moveRequest struct {
	Row    *int `json:"row"`
	Column *int `json:"column"`
}

type jumpRequest struct {
	Destination *int `json:"destination"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger *slog.Logger
	games  gameUseCase
}

func NewHandlers(logger *slog.Logger, games gameUseCase) Handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		games:  games,
	}
}

func (that *handlers) CreateGame(w http.ResponseWriter, r *http.Request) {
	view, err := that.games.CreateGame(r.Context())
	if err != nil {
		that.writeError(w, "CreateGame", err)
		return
	}

	that.writeJSON(w, http.StatusCreated, view)
}

// GetGame - the current view, or the view at ?pointer=k.
func (that *handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")

	rawPointer := r.URL.Query().Get("pointer")
	if rawPointer == "" {
		view, err := that.games.GetView(r.Context(), gameID)
		if err != nil {
			that.writeError(w, "GetGame", err)
			return
		}

		that.writeJSON(w, http.StatusOK, view)
		return
	}

	pointer, err := strconv.Atoi(rawPointer)
	if err != nil {
		that.writeError(w, "GetGame", errMalformedBody)
		return
	}

	view, err := that.games.ViewAt(r.Context(), gameID, pointer)
	if err != nil {
		that.writeError(w, "GetGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func (that *handlers) DeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(r.Context(), chi.URLParam(r, "gameID")); err != nil {
		that.writeError(w, "DeleteGame", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) PlayMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Row == nil || req.Column == nil {
		that.writeError(w, "PlayMove", errMalformedBody)
		return
	}

	view, err := that.games.PlayMove(r.Context(), chi.URLParam(r, "gameID"), *req.Row, *req.Column)
	if err != nil {
		that.writeError(w, "PlayMove", err)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func (that *handlers) JumpToMove(w http.ResponseWriter, r *http.Request) {
	var req jumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Destination == nil {
		that.writeError(w, "JumpToMove", errMalformedBody)
		return
	}

	view, err := that.games.JumpToMove(r.Context(), chi.URLParam(r, "gameID"), *req.Destination)
	if err != nil {
		that.writeError(w, "JumpToMove", err)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func (that *handlers) Reset(w http.ResponseWriter, r *http.Request) {
	view, err := that.games.Reset(r.Context(), chi.URLParam(r, "gameID"))
	if err != nil {
		that.writeError(w, "Reset", err)
		return
	}

	that.writeJSON(w, http.StatusOK, view)
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

// writeError maps domain errors to HTTP statuses.
func (that *handlers) writeError(w http.ResponseWriter, method string, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrInvalidJump),
		errors.Is(err, errMalformedBody):
		status = http.StatusBadRequest
	default:
		that.logger.Error("request failed", "method", method, "error", err)
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}

	that.writeJSON(w, status, errorResponse{Error: message})
}
