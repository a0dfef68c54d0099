package game

import (
	"context"
	"time"

	"github.com/google/logger"

	"puzzle_place/internal/metrics"
	"puzzle_place/internal/middleware"
	"puzzle_place/internal/model"
)

// FinishGame вскрывает финальный кейс игрока и завершает игру.
// Финальный кейс должен существовать в раскладке, но не обязан быть
// вскрытым ранее - это кейс, который игрок оставил себе или на который
// обменялся в конце раунда
func (s *serv) FinishGame(ctx context.Context, gameID string, finalCase int) (*model.FinishResult, error) {
	// Получаем ID пользователя
	playerID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotFound
	}

	var (
		res     *model.FinishResult
		eventID int64
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		game, err := s.activeGameForUpdate(txCtx, gameID, playerID)
		if err != nil {
			return err
		}

		prizeID, ok := game.AssignedPrize(finalCase)
		if !ok {
			return ErrCaseNotFound
		}

		pool, err := s.prizePool(txCtx, game.EventID)
		if err != nil {
			return err
		}

		prize, ok := pool[prizeID]
		if !ok {
			logger.Errorf("game %s: final case %d references missing prize %d", game.ID, finalCase, prizeID)
			return ErrCorruptAssignment
		}

		now := time.Now()
		if err := s.gameRepo.FinishGame(txCtx, game.ID, &prize.ID, prize.Value, now); err != nil {
			return err
		}

		// Ровно одна запись истории на игру, в той же транзакции,
		// что и завершение
		eventID = game.EventID
		err = s.historyRepo.AddEntry(txCtx, &model.HistoryEntry{
			EventID:    game.EventID,
			PlayerID:   game.PlayerID,
			PrizeName:  prize.Name,
			PrizeValue: prize.Value,
			PlayedAt:   now,
		})
		if err != nil {
			return err
		}

		res = &model.FinishResult{
			Prize:     prize,
			WonAmount: prize.Value,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Таблица лидеров обновляется после коммита: redis вне транзакции,
	// ошибка не отменяет завершенную игру
	if err := s.leaderboardRepo.AddWin(ctx, eventID, playerID, res.WonAmount); err != nil {
		logger.Errorf("game %s: failed to update leaderboard: %v", gameID, err)
	}

	metrics.GamesFinished.WithLabelValues(metrics.OutcomeCase).Inc()

	return res, nil
}
