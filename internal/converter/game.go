package converter

import (
	dto "puzzle_place/internal/api/dto/game"
	"puzzle_place/internal/model"
)

func ToStartGameResponse(game *model.Game) dto.StartGameResponse {
	assignments := make([]dto.CaseAssignment, len(game.CaseAssignments))
	for i, ca := range game.CaseAssignments {
		assignments[i] = dto.CaseAssignment{
			CaseNumber: ca.CaseNumber,
			PrizeID:    ca.PrizeID,
		}
	}

	return dto.StartGameResponse{
		GameID:          game.ID,
		CaseAssignments: assignments,
	}
}

func ToPrizeDTO(prize model.Prize) dto.Prize {
	return dto.Prize{
		ID:      prize.ID,
		Name:    prize.Name,
		Value:   prize.Value,
		IsBlank: prize.IsBlank,
	}
}

func ToOpenCaseResponse(res *model.OpenCaseResult) dto.OpenCaseResponse {
	return dto.OpenCaseResponse{
		CaseNumber:  res.CaseNumber,
		Prize:       ToPrizeDTO(res.Prize),
		OpenedCases: res.OpenedCases,
	}
}

func ToFinishGameResponse(res *model.FinishResult, message string) dto.FinishGameResponse {
	return dto.FinishGameResponse{
		Message:    message,
		FinalPrize: ToPrizeDTO(res.Prize),
		WonAmount:  res.WonAmount,
	}
}
