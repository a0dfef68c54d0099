package model

import "time"

type Event struct {
	ID          int64
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
}

// Prize - приз из пула ивента. Value в кредитах, IsBlank - "пустышка" (Value = 0)
type Prize struct {
	ID      int64
	EventID int64
	Name    string
	Value   int64
	IsBlank bool
}
