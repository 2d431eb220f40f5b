package http

import (
	"net/http"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/service"
)

// GameHandler exposes the read-only catalog.
type GameHandler struct {
	games service.GameService
}

func NewGameHandler(games service.GameService) *GameHandler {
	return &GameHandler{games: games}
}

func (h *GameHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	game, err := h.games.GetGame(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

func (h *GameHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	games, err := h.games.ListGames(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if games == nil {
		games = []domain.Game{}
	}
	writeJSON(w, http.StatusOK, games)
}
