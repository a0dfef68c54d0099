package event

import "time"

type CreateEventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateEventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

type EventResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type AddPrizeRequest struct {
	Name    string `json:"name"`
	Value   int64  `json:"value"`    // Кредиты, >= 0
	IsBlank bool   `json:"is_blank"` // Пустышка (value = 0)
}

type PrizeResponse struct {
	ID      int64  `json:"id"`
	EventID int64  `json:"event_id"`
	Name    string `json:"name"`
	Value   int64  `json:"value"`
	IsBlank bool   `json:"is_blank"`
}
