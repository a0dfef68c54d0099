package service

import (
	"context"

	"puzzle_place/internal/model"
)

type GameService interface {
	StartGame(ctx context.Context, eventID int64) (*model.Game, error)
	OpenCase(ctx context.Context, gameID string, caseNumber int) (*model.OpenCaseResult, error)
	BankerOffer(ctx context.Context, gameID string) (int64, error)
	AcceptOffer(ctx context.Context, gameID string, offerAmount int64) (int64, error)
	FinishGame(ctx context.Context, gameID string, finalCase int) (*model.FinishResult, error)
}

type EventService interface {
	CreateEvent(ctx context.Context, event *model.Event) (int64, error)
	GetEvent(ctx context.Context, id int64) (*model.Event, error)
	ListEvents(ctx context.Context) ([]model.Event, error)
	UpdateEvent(ctx context.Context, event *model.Event) error
	DeleteEvent(ctx context.Context, id int64) error

	AddPrize(ctx context.Context, prize *model.Prize) (int64, error)
	ListPrizes(ctx context.Context, eventID int64) ([]model.Prize, error)
	DeletePrize(ctx context.Context, eventID, prizeID int64) error
}

type AuthService interface {
	Register(ctx context.Context, user *model.User) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

type HistoryService interface {
	Recent(ctx context.Context, limit int) ([]model.HistoryEntry, error)
	Leaderboard(ctx context.Context, eventID int64, n int64) ([]model.LeaderboardRow, error)
}
