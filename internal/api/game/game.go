package game

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/logger"

	dto "puzzle_place/internal/api/dto/game"
	"puzzle_place/internal/converter"
	"puzzle_place/internal/service"
	gamesrv "puzzle_place/internal/service/game"
	"puzzle_place/pkg/req"
	"puzzle_place/pkg/resp"
)

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Start запускает новую игру на ивенте и возвращает раскладку кейсов
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.StartGameRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	game, err := h.serv.StartGame(r.Context(), requestBody.EventID)
	if err != nil {
		writeGameError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToStartGameResponse(game))
}

// OpenCase вскрывает кейс и возвращает приз из него
func (h *Handler) OpenCase(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.OpenCaseRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	result, err := h.serv.OpenCase(r.Context(), requestBody.GameID, requestBody.CaseNumber)
	if err != nil {
		writeGameError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToOpenCaseResponse(result))
}

// BankerOffer считает и фиксирует предложение банкира по текущей игре
func (h *Handler) BankerOffer(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	if gameID == "" {
		http.Error(w, "game_id is required", http.StatusBadRequest)
		return
	}

	offer, err := h.serv.BankerOffer(r.Context(), gameID)
	if err != nil {
		writeGameError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.BankerOfferResponse{Offer: offer})
}

// AcceptOffer принимает предложение банкира и завершает игру
func (h *Handler) AcceptOffer(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.AcceptOfferRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	wonAmount, err := h.serv.AcceptOffer(r.Context(), requestBody.GameID, requestBody.OfferAmount)
	if err != nil {
		writeGameError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.AcceptOfferResponse{
		Message:   "Предложение банкира принято",
		WonAmount: wonAmount,
	})
}

// Finish вскрывает кейс игрока и завершает игру его содержимым
func (h *Handler) Finish(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.FinishGameRequest](r.Body)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	result, err := h.serv.FinishGame(r.Context(), requestBody.GameID, requestBody.FinalCase)
	if err != nil {
		writeGameError(w, err)
		return
	}

	resp.WriteJSONResponse(
		w,
		http.StatusOK,
		converter.ToFinishGameResponse(result, "Игра завершена"),
	)
}

// writeGameError переводит ошибки игрового сервиса в HTTP-статусы
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gamesrv.ErrUserNotFound):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, gamesrv.ErrGameNotFound),
		errors.Is(err, gamesrv.ErrEventNotFound),
		errors.Is(err, gamesrv.ErrEmptyPrizePool),
		errors.Is(err, gamesrv.ErrCaseNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, gamesrv.ErrActiveGameExists):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, gamesrv.ErrInvalidCase),
		errors.Is(err, gamesrv.ErrCaseAlreadyOpened),
		errors.Is(err, gamesrv.ErrNoCasesOpened),
		errors.Is(err, gamesrv.ErrOfferMismatch):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		logger.Errorf("game handler error: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
