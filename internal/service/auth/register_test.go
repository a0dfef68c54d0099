package auth

import (
	"context"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puzzle_place/internal/model"
	"puzzle_place/internal/repository"
)

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type jwtStub struct{}

func (jwtStub) AccessTokenSecretKey() []byte       { return []byte("test-secret") }
func (jwtStub) AccessTokenDuration() time.Duration { return time.Minute }
func (jwtStub) RefreshTokenDuration() time.Duration {
	return time.Hour
}

type fakeUserRepo struct {
	logins map[string]bool
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *model.User) (int64, error) {
	if r.logins[user.Login] {
		return 0, repository.ErrAlreadyExists
	}
	r.logins[user.Login] = true
	return int64(len(r.logins)), nil
}

func (r *fakeUserRepo) GetUserByLogin(_ context.Context, login string) (*model.User, error) {
	if !r.logins[login] {
		return nil, repository.ErrNotFound
	}
	return &model.User{ID: 1, Login: login}, nil
}

type fakeAuthRepo struct {
	sessions map[string]*model.Session
}

func (r *fakeAuthRepo) CreateSession(_ context.Context, session *model.Session) error {
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeAuthRepo) GetRefreshTokenBySessionID(_ context.Context, sessionID string) (string, error) {
	s, ok := r.sessions[sessionID]
	if !ok {
		return "", repository.ErrNotFound
	}
	return s.RefreshToken, nil
}

func (r *fakeAuthRepo) DeleteSession(_ context.Context, sessionID string) error {
	delete(r.sessions, sessionID)
	return nil
}

func (r *fakeAuthRepo) GetUserBySessionID(_ context.Context, sessionID string) (*model.User, error) {
	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &model.User{ID: s.UserID}, nil
}

func newTestService() (*fakeUserRepo, *fakeAuthRepo, *serv) {
	userRepo := &fakeUserRepo{logins: map[string]bool{}}
	authRepo := &fakeAuthRepo{sessions: map[string]*model.Session{}}
	s := NewAuthService(userRepo, authRepo, jwtStub{}, fakeTxManager{}).(*serv)
	return userRepo, authRepo, s
}

func TestRegisterCreatesSession(t *testing.T) {
	_, authRepo, s := newTestService()

	data, err := s.Register(context.Background(), &model.User{
		Name:     "Игрок",
		Login:    "player",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, data.AccessToken)
	assert.NotEmpty(t, data.RefreshToken)
	require.NotEmpty(t, data.SessionID)
	assert.Contains(t, authRepo.sessions, data.SessionID)
}

func TestRegisterDuplicateLogin(t *testing.T) {
	_, _, s := newTestService()

	_, err := s.Register(context.Background(), &model.User{Login: "player", Password: "secret"})
	require.NoError(t, err)

	_, err = s.Register(context.Background(), &model.User{Login: "player", Password: "secret"})
	assert.ErrorIs(t, err, ErrLoginTaken)
}
