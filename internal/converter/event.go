package converter

import (
	dto "puzzle_place/internal/api/dto/event"
	"puzzle_place/internal/model"
)

func CreateEventRequestToModel(req *dto.CreateEventRequest) *model.Event {
	return &model.Event{
		Name:        req.Name,
		Description: req.Description,
	}
}

func UpdateEventRequestToModel(id int64, req *dto.UpdateEventRequest) *model.Event {
	return &model.Event{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	}
}

func ToEventResponse(event *model.Event) dto.EventResponse {
	return dto.EventResponse{
		ID:          event.ID,
		Name:        event.Name,
		Description: event.Description,
		IsActive:    event.IsActive,
		CreatedAt:   event.CreatedAt,
	}
}

func ToEventResponses(events []model.Event) []dto.EventResponse {
	result := make([]dto.EventResponse, len(events))
	for i := range events {
		result[i] = ToEventResponse(&events[i])
	}
	return result
}

func AddPrizeRequestToModel(eventID int64, req *dto.AddPrizeRequest) *model.Prize {
	return &model.Prize{
		EventID: eventID,
		Name:    req.Name,
		Value:   req.Value,
		IsBlank: req.IsBlank,
	}
}

func ToPrizeResponse(prize model.Prize) dto.PrizeResponse {
	return dto.PrizeResponse{
		ID:      prize.ID,
		EventID: prize.EventID,
		Name:    prize.Name,
		Value:   prize.Value,
		IsBlank: prize.IsBlank,
	}
}

func ToPrizeResponses(prizes []model.Prize) []dto.PrizeResponse {
	result := make([]dto.PrizeResponse, len(prizes))
	for i, p := range prizes {
		result[i] = ToPrizeResponse(p)
	}
	return result
}
