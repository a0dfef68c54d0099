package event

import (
	"context"
	"errors"

	"puzzle_place/internal/model"
	"puzzle_place/internal/repository"
)

// AddPrize добавляет приз в пул ивента. Пул ограничен количеством кейсов,
// пустышка обязана иметь нулевое значение
func (s *serv) AddPrize(ctx context.Context, prize *model.Prize) (int64, error) {
	if prize.Value < 0 || (prize.IsBlank && prize.Value != 0) {
		return 0, ErrInvalidPrize
	}

	var id int64

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		_, err := s.eventRepo.GetEvent(txCtx, prize.EventID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		prizes, err := s.eventRepo.GetPrizes(txCtx, prize.EventID)
		if err != nil {
			return err
		}
		if len(prizes) >= s.cfg.MaxPrizes() {
			return ErrPoolFull
		}

		id, err = s.eventRepo.AddPrize(txCtx, prize)
		return err
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *serv) ListPrizes(ctx context.Context, eventID int64) ([]model.Prize, error) {
	_, err := s.eventRepo.GetEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	return s.eventRepo.GetPrizes(ctx, eventID)
}

// DeletePrize удаляет приз из пула. Запрещено, пока на ивенте есть
// незавершенные игры: их раскладки ссылаются на пул
func (s *serv) DeletePrize(ctx context.Context, eventID, prizeID int64) error {
	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		inUse, err := s.gameRepo.HasUnfinishedGames(txCtx, eventID)
		if err != nil {
			return err
		}
		if inUse {
			return ErrEventInUse
		}

		err = s.eventRepo.DeletePrize(txCtx, eventID, prizeID)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPrizeNotFound
		}
		return err
	})
}
