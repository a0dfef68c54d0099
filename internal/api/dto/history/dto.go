package history

import "time"

type HistoryEntryResponse struct {
	EventID    int64     `json:"event_id"`
	PlayerID   int64     `json:"player_id"`
	PrizeName  string    `json:"prize_name"`
	PrizeValue int64     `json:"prize_value"`
	PlayedAt   time.Time `json:"played_at"`
}

type LeaderboardRowResponse struct {
	PlayerID int64 `json:"player_id"`
	TotalWon int64 `json:"total_won"` // Суммарный выигрыш на ивенте
}
