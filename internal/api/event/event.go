package event

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/logger"

	dto "puzzle_place/internal/api/dto/event"
	"puzzle_place/internal/converter"
	"puzzle_place/internal/service"
	eventsrv "puzzle_place/internal/service/event"
	"puzzle_place/pkg/req"
	"puzzle_place/pkg/resp"
)

type HandlerDeps struct {
	Serv service.EventService
}

type Handler struct {
	serv service.EventService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Create создаёт новый ивент
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.CreateEventRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	id, err := h.serv.CreateEvent(r.Context(), converter.CreateEventRequestToModel(&requestBody))
	if err != nil {
		writeEventError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, map[string]interface{}{
		"id": id,
	})
}

// Get возвращает ивент по ID
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "eventID")
	if err != nil {
		http.Error(w, "invalid event id", http.StatusBadRequest)
		return
	}

	event, err := h.serv.GetEvent(r.Context(), id)
	if err != nil {
		writeEventError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToEventResponse(event))
}

// List возвращает активные ивенты
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.serv.ListEvents(r.Context())
	if err != nil {
		writeEventError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToEventResponses(events))
}

// Update обновляет поля ивента
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "eventID")
	if err != nil {
		http.Error(w, "invalid event id", http.StatusBadRequest)
		return
	}

	requestBody, err := req.Decode[dto.UpdateEventRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	err = h.serv.UpdateEvent(r.Context(), converter.UpdateEventRequestToModel(id, &requestBody))
	if err != nil {
		writeEventError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete деактивирует ивент
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "eventID")
	if err != nil {
		http.Error(w, "invalid event id", http.StatusBadRequest)
		return
	}

	err = h.serv.DeleteEvent(r.Context(), id)
	if err != nil {
		writeEventError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddPrize добавляет приз в пул ивента
func (h *Handler) AddPrize(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "eventID")
	if err != nil {
		http.Error(w, "invalid event id", http.StatusBadRequest)
		return
	}

	requestBody, err := req.Decode[dto.AddPrizeRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	id, err := h.serv.AddPrize(r.Context(), converter.AddPrizeRequestToModel(eventID, &requestBody))
	if err != nil {
		writeEventError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, map[string]interface{}{
		"id": id,
	})
}

// ListPrizes возвращает пул призов ивента
func (h *Handler) ListPrizes(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "eventID")
	if err != nil {
		http.Error(w, "invalid event id", http.StatusBadRequest)
		return
	}

	prizes, err := h.serv.ListPrizes(r.Context(), eventID)
	if err != nil {
		writeEventError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPrizeResponses(prizes))
}

// DeletePrize удаляет приз из пула ивента
func (h *Handler) DeletePrize(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "eventID")
	if err != nil {
		http.Error(w, "invalid event id", http.StatusBadRequest)
		return
	}

	prizeID, err := pathID(r, "prizeID")
	if err != nil {
		http.Error(w, "invalid prize id", http.StatusBadRequest)
		return
	}

	err = h.serv.DeletePrize(r.Context(), eventID, prizeID)
	if err != nil {
		writeEventError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// writeEventError переводит ошибки сервиса ивентов в HTTP-статусы
func writeEventError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, eventsrv.ErrEventNotFound),
		errors.Is(err, eventsrv.ErrPrizeNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, eventsrv.ErrPoolFull),
		errors.Is(err, eventsrv.ErrInvalidPrize):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, eventsrv.ErrEventInUse):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		logger.Errorf("event handler error: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
