package converter

import (
	dto "puzzle_place/internal/api/dto/history"
	"puzzle_place/internal/model"
)

func ToHistoryResponses(entries []model.HistoryEntry) []dto.HistoryEntryResponse {
	result := make([]dto.HistoryEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = dto.HistoryEntryResponse{
			EventID:    e.EventID,
			PlayerID:   e.PlayerID,
			PrizeName:  e.PrizeName,
			PrizeValue: e.PrizeValue,
			PlayedAt:   e.PlayedAt,
		}
	}
	return result
}

func ToLeaderboardResponses(rows []model.LeaderboardRow) []dto.LeaderboardRowResponse {
	result := make([]dto.LeaderboardRowResponse, len(rows))
	for i, r := range rows {
		result[i] = dto.LeaderboardRowResponse{
			PlayerID: r.PlayerID,
			TotalWon: r.TotalWon,
		}
	}
	return result
}
