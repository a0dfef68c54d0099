package event

import (
	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"puzzle_place/internal/config"
	"puzzle_place/internal/repository"
	"puzzle_place/internal/service"
)

// EventError - типизированная ошибка сервиса ивентов
type EventError string

func (e EventError) Error() string {
	return string(e)
}

const (
	ErrEventNotFound EventError = "event not found"
	ErrPrizeNotFound EventError = "prize not found"
	ErrPoolFull      EventError = "prize pool is full"
	ErrInvalidPrize  EventError = "prize value must be non-negative and zero for blanks"
	ErrEventInUse    EventError = "event has unfinished games"
)

type serv struct {
	cfg       config.GameConfig
	eventRepo repository.EventRepository
	gameRepo  repository.GameRepository
	txManager trm.Manager
}

func NewEventService(
	cfg config.GameConfig,
	eventRepo repository.EventRepository,
	gameRepo repository.GameRepository,
	txManager trm.Manager,
) service.EventService {
	return &serv{
		cfg:       cfg,
		eventRepo: eventRepo,
		gameRepo:  gameRepo,
		txManager: txManager,
	}
}
