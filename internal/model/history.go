package model

import "time"

// HistoryEntry - запись о завершенной игре. Создается ровно один раз,
// в момент завершения игры
type HistoryEntry struct {
	ID         int64
	EventID    int64
	PlayerID   int64
	PrizeName  string
	PrizeValue int64
	PlayedAt   time.Time
}

// LeaderboardRow - строка таблицы лидеров ивента
type LeaderboardRow struct {
	PlayerID int64
	TotalWon int64
}
