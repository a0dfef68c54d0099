package leaderboard_repo

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"puzzle_place/internal/model"
	"puzzle_place/internal/repository"
)

const (
	// Ключ сортированного множества: leaderboard:<eventID>,
	// score - суммарный выигрыш игрока на ивенте
	leaderboardKeyPrefix = "leaderboard:"
)

type repo struct {
	client *redis.Client
}

func NewLeaderboardRepository(client *redis.Client) repository.LeaderboardRepository {
	return &repo{
		client: client,
	}
}

func leaderboardKey(eventID int64) string {
	return fmt.Sprintf("%s%d", leaderboardKeyPrefix, eventID)
}

// AddWin - прибавляет выигрыш игрока к его счету на ивенте
func (r *repo) AddWin(ctx context.Context, eventID, playerID, amount int64) error {
	err := r.client.ZIncrBy(ctx, leaderboardKey(eventID),
		float64(amount), strconv.FormatInt(playerID, 10)).Err()
	if err != nil {
		return fmt.Errorf("failed to update leaderboard: %w", err)
	}

	return nil
}

// Top - первые n игроков ивента по суммарному выигрышу
func (r *repo) Top(ctx context.Context, eventID int64, n int64) ([]model.LeaderboardRow, error) {
	if n <= 0 {
		return nil, nil
	}

	entries, err := r.client.ZRevRangeWithScores(ctx, leaderboardKey(eventID), 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	rows := make([]model.LeaderboardRow, 0, len(entries))
	for _, entry := range entries {
		member, ok := entry.Member.(string)
		if !ok {
			continue
		}

		playerID, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt leaderboard member %q: %w", member, err)
		}

		rows = append(rows, model.LeaderboardRow{
			PlayerID: playerID,
			TotalWon: int64(entry.Score),
		})
	}

	return rows, nil
}
