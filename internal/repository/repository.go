package repository

import (
	"context"
	"errors"
	"time"

	"puzzle_place/internal/model"
)

// ErrNotFound возвращается репозиториями, когда записи нет.
// Сервисы переводят её в свои типизированные ошибки
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists возвращается при нарушении уникальности (дубликат логина)
var ErrAlreadyExists = errors.New("record already exists")

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int64, err error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
}

type EventRepository interface {
	CreateEvent(ctx context.Context, event *model.Event) (id int64, err error)
	GetEvent(ctx context.Context, id int64) (*model.Event, error)
	ListActiveEvents(ctx context.Context) ([]model.Event, error)
	UpdateEvent(ctx context.Context, event *model.Event) error
	DeactivateEvent(ctx context.Context, id int64) error

	AddPrize(ctx context.Context, prize *model.Prize) (id int64, err error)
	GetPrizes(ctx context.Context, eventID int64) ([]model.Prize, error)
	DeletePrize(ctx context.Context, eventID, prizeID int64) error
}

type GameRepository interface {
	CreateGame(ctx context.Context, game *model.Game) error

	// GetActiveGame и GetActiveGameForUpdate ищут только незавершенные игры:
	// фильтр is_finished = false и есть механизм терминальности
	GetActiveGame(ctx context.Context, gameID string, playerID int64) (*model.Game, error)
	GetActiveGameForUpdate(ctx context.Context, gameID string, playerID int64) (*model.Game, error)
	GetActiveGameByEvent(ctx context.Context, playerID, eventID int64) (*model.Game, error)

	UpdateOpenedCases(ctx context.Context, gameID string, opened []int) error
	UpdateBankerOffers(ctx context.Context, gameID string, offers []model.BankerOffer) error
	FinishGame(ctx context.Context, gameID string, finalPrizeID *int64, wonAmount int64, finishedAt time.Time) error

	HasUnfinishedGames(ctx context.Context, eventID int64) (bool, error)
}

type HistoryRepository interface {
	AddEntry(ctx context.Context, entry *model.HistoryEntry) error
	ListRecent(ctx context.Context, limit int) ([]model.HistoryEntry, error)
}

type LeaderboardRepository interface {
	AddWin(ctx context.Context, eventID, playerID, amount int64) error
	Top(ctx context.Context, eventID int64, n int64) ([]model.LeaderboardRow, error)
}
