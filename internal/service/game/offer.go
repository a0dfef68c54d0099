package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/logger"

	"puzzle_place/internal/metrics"
	"puzzle_place/internal/middleware"
	"puzzle_place/internal/model"
)

// BankerOffer считает предложение банкира по текущему состоянию игры.
// Требует хотя бы одного вскрытого кейса. Каждый расчет дописывается
// в историю предложений - это аудит того, сколько предложений было сделано
// и на каком количестве вскрытых кейсов, а не очередь ожидающих решений
func (s *serv) BankerOffer(ctx context.Context, gameID string) (int64, error) {
	// Получаем ID пользователя
	playerID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return 0, ErrUserNotFound
	}

	var offer int64

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		game, err := s.activeGameForUpdate(txCtx, gameID, playerID)
		if err != nil {
			return err
		}

		if len(game.OpenedCases) == 0 {
			return ErrNoCasesOpened
		}

		pool, err := s.prizePool(txCtx, game.EventID)
		if err != nil {
			return err
		}

		offer, err = computeOffer(game, pool, s.cfg.BankerRate())
		if err != nil {
			logger.Errorf("game %s: %v", game.ID, err)
			return err
		}

		offers := append(game.BankerOffers, model.BankerOffer{
			Amount:      offer,
			Accepted:    false,
			AtCaseCount: len(game.OpenedCases),
		})

		return s.gameRepo.UpdateBankerOffers(txCtx, game.ID, offers)
	})
	if err != nil {
		return 0, err
	}

	metrics.BankerOffers.Inc()

	return offer, nil
}

// AcceptOffer принимает предложение банкира и завершает игру.
// Переданная сумма сверяется с последним рассчитанным предложением:
// клиенту здесь не доверяем
func (s *serv) AcceptOffer(ctx context.Context, gameID string, offerAmount int64) (int64, error) {
	// Получаем ID пользователя
	playerID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return 0, ErrUserNotFound
	}

	var (
		eventID int64
		now     time.Time
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		game, err := s.activeGameForUpdate(txCtx, gameID, playerID)
		if err != nil {
			return err
		}

		if len(game.BankerOffers) == 0 {
			return ErrOfferMismatch
		}

		last := len(game.BankerOffers) - 1
		if game.BankerOffers[last].Amount != offerAmount {
			return ErrOfferMismatch
		}

		game.BankerOffers[last].Accepted = true
		if err := s.gameRepo.UpdateBankerOffers(txCtx, game.ID, game.BankerOffers); err != nil {
			return err
		}

		now = time.Now()
		if err := s.gameRepo.FinishGame(txCtx, game.ID, nil, offerAmount, now); err != nil {
			return err
		}

		// Ровно одна запись истории на игру, в той же транзакции,
		// что и завершение
		eventID = game.EventID
		return s.historyRepo.AddEntry(txCtx, &model.HistoryEntry{
			EventID:    game.EventID,
			PlayerID:   game.PlayerID,
			PrizeName:  fmt.Sprintf("Предложение банкира (%d)", offerAmount),
			PrizeValue: offerAmount,
			PlayedAt:   now,
		})
	})
	if err != nil {
		return 0, err
	}

	// Таблица лидеров обновляется после коммита: redis вне транзакции,
	// ошибка не отменяет завершенную игру
	if err := s.leaderboardRepo.AddWin(ctx, eventID, playerID, offerAmount); err != nil {
		logger.Errorf("game %s: failed to update leaderboard: %v", gameID, err)
	}

	metrics.GamesFinished.WithLabelValues(metrics.OutcomeOffer).Inc()

	return offerAmount, nil
}
