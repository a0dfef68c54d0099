package history

import (
	"context"

	"puzzle_place/internal/model"
	"puzzle_place/internal/repository"
	"puzzle_place/internal/service"
)

const defaultLimit = 20

type serv struct {
	historyRepo     repository.HistoryRepository
	leaderboardRepo repository.LeaderboardRepository
}

func NewHistoryService(
	historyRepo repository.HistoryRepository,
	leaderboardRepo repository.LeaderboardRepository,
) service.HistoryService {
	return &serv{
		historyRepo:     historyRepo,
		leaderboardRepo: leaderboardRepo,
	}
}

// Recent - последние завершенные игры
func (s *serv) Recent(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	return s.historyRepo.ListRecent(ctx, limit)
}

// Leaderboard - лучшие игроки ивента по суммарному выигрышу
func (s *serv) Leaderboard(ctx context.Context, eventID int64, n int64) ([]model.LeaderboardRow, error) {
	if n <= 0 {
		n = defaultLimit
	}
	return s.leaderboardRepo.Top(ctx, eventID, n)
}
