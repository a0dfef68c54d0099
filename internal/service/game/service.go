package game

import (
	"context"
	"errors"

	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"puzzle_place/internal/config"
	"puzzle_place/internal/model"
	"puzzle_place/internal/repository"
	"puzzle_place/internal/service"
)

type serv struct {
	cfg             config.GameConfig
	gameRepo        repository.GameRepository
	eventRepo       repository.EventRepository
	historyRepo     repository.HistoryRepository
	leaderboardRepo repository.LeaderboardRepository
	txManager       trm.Manager
}

// NewGameService Создать игровой сервис кейсов
func NewGameService(
	cfg config.GameConfig,
	gameRepo repository.GameRepository,
	eventRepo repository.EventRepository,
	historyRepo repository.HistoryRepository,
	leaderboardRepo repository.LeaderboardRepository,
	txManager trm.Manager,
) service.GameService {
	return &serv{
		cfg:             cfg,
		gameRepo:        gameRepo,
		eventRepo:       eventRepo,
		historyRepo:     historyRepo,
		leaderboardRepo: leaderboardRepo,
		txManager:       txManager,
	}
}

// prizePool загружает пул призов ивента в виде map по ID приза.
// Пул read-only на все время жизни игры
func (s *serv) prizePool(ctx context.Context, eventID int64) (map[int64]model.Prize, error) {
	prizes, err := s.eventRepo.GetPrizes(ctx, eventID)
	if err != nil {
		return nil, err
	}

	pool := make(map[int64]model.Prize, len(prizes))
	for _, p := range prizes {
		pool[p.ID] = p
	}
	return pool, nil
}

// activeGameForUpdate достает незавершенную игру игрока под блокировкой строки
func (s *serv) activeGameForUpdate(ctx context.Context, gameID string, playerID int64) (*model.Game, error) {
	game, err := s.gameRepo.GetActiveGameForUpdate(ctx, gameID, playerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return game, nil
}
