package history

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/logger"

	"puzzle_place/internal/converter"
	"puzzle_place/internal/service"
	"puzzle_place/pkg/resp"
)

const defaultTopSize = 10

type HandlerDeps struct {
	Serv service.HistoryService
}

type Handler struct {
	serv service.HistoryService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Recent возвращает последние завершённые игры
func (h *Handler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := h.serv.Recent(r.Context(), limit)
	if err != nil {
		logger.Errorf("history handler error: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponses(entries))
}

// Leaderboard возвращает топ игроков ивента по сумме выигрышей
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid event id", http.StatusBadRequest)
		return
	}

	n := int64(defaultTopSize)
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid n", http.StatusBadRequest)
			return
		}
		n = parsed
	}

	rows, err := h.serv.Leaderboard(r.Context(), eventID, n)
	if err != nil {
		logger.Errorf("leaderboard handler error: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLeaderboardResponses(rows))
}
