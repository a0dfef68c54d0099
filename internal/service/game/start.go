package game

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"puzzle_place/internal/metrics"
	"puzzle_place/internal/middleware"
	"puzzle_place/internal/model"
	"puzzle_place/internal/repository"
)

// StartGame начинает новую игру на ивенте.
// Ивент должен быть активным с непустым пулом призов, у игрока не должно быть
// другой незавершенной игры на этом ивенте. Раскладка возвращается целиком:
// дальнейшая валидация в любом случае на стороне сервера
func (s *serv) StartGame(ctx context.Context, eventID int64) (*model.Game, error) {
	// Получаем ID пользователя
	playerID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotFound
	}

	var game *model.Game

	// Начало транзакции: проверки и создание игры как единое целое
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		event, err := s.eventRepo.GetEvent(txCtx, eventID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		if !event.IsActive {
			return ErrEventNotFound
		}

		prizes, err := s.eventRepo.GetPrizes(txCtx, eventID)
		if err != nil {
			return err
		}
		if len(prizes) == 0 {
			return ErrEmptyPrizePool
		}

		// Инвариант: одна активная игра на пару игрок-ивент
		_, err = s.gameRepo.GetActiveGameByEvent(txCtx, playerID, eventID)
		if err == nil {
			return ErrActiveGameExists
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		game = &model.Game{
			ID:              uuid.NewString(),
			EventID:         eventID,
			PlayerID:        playerID,
			CaseAssignments: assignCases(prizes, s.cfg.CaseCount()),
			OpenedCases:     []int{},
			BankerOffers:    []model.BankerOffer{},
			StartedAt:       time.Now(),
		}

		return s.gameRepo.CreateGame(txCtx, game)
	})
	if err != nil {
		return nil, err
	}

	metrics.GamesStarted.Inc()

	return game, nil
}
