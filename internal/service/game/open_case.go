package game

import (
	"context"

	"github.com/google/logger"

	"puzzle_place/internal/middleware"
	"puzzle_place/internal/model"
)

// OpenCase вскрывает кейс. Повторное вскрытие отклоняется, а не игнорируется:
// OpenedCases остается множеством в порядке вставки, и клиент не получает
// дублей события вскрытия
func (s *serv) OpenCase(ctx context.Context, gameID string, caseNumber int) (*model.OpenCaseResult, error) {
	// Получаем ID пользователя
	playerID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotFound
	}

	var res *model.OpenCaseResult

	// Вся мутация под блокировкой строки игры: конкурентные вскрытия
	// одной игры сериализуются
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		game, err := s.activeGameForUpdate(txCtx, gameID, playerID)
		if err != nil {
			return err
		}

		prizeID, ok := game.AssignedPrize(caseNumber)
		if !ok {
			return ErrInvalidCase
		}
		if game.IsOpened(caseNumber) {
			return ErrCaseAlreadyOpened
		}

		pool, err := s.prizePool(txCtx, game.EventID)
		if err != nil {
			return err
		}

		prize, ok := pool[prizeID]
		if !ok {
			// Раскладка ссылается на приз, которого нет в пуле -
			// нарушение целостности данных, а не ошибка пользователя
			logger.Errorf("game %s: case %d references missing prize %d", game.ID, caseNumber, prizeID)
			return ErrCorruptAssignment
		}

		opened := append(game.OpenedCases, caseNumber)
		if err := s.gameRepo.UpdateOpenedCases(txCtx, game.ID, opened); err != nil {
			return err
		}

		res = &model.OpenCaseResult{
			CaseNumber:  caseNumber,
			Prize:       prize,
			OpenedCases: opened,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
