package model

import "time"

type Session struct {
	ID           string
	UserID       int64
	RefreshToken string
	ExpiresAt    time.Time
}
