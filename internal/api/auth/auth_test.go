package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puzzle_place/internal/model"
	authsrv "puzzle_place/internal/service/auth"
)

type stubAuthService struct {
	registerErr error
}

func (s *stubAuthService) Register(_ context.Context, _ *model.User) (*model.AuthData, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &model.AuthData{
		AccessToken:  "access",
		RefreshToken: "refresh",
		SessionID:    "session",
	}, nil
}

func (s *stubAuthService) Login(context.Context, string, string) (*model.AuthData, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) Refresh(context.Context, string, string) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubAuthService) Logout(context.Context, string) error {
	return errors.New("not implemented")
}

func registerRequest() *http.Request {
	body := `{"name": "Игрок", "login": "player", "password": "secret"}`
	return httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
}

func TestRegisterSuccess(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &stubAuthService{}})

	rec := httptest.NewRecorder()
	h.Register(rec, registerRequest())

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "access")

	cookies := rec.Result().Cookies()
	names := make(map[string]bool, len(cookies))
	for _, c := range cookies {
		names[c.Name] = true
	}
	assert.True(t, names["session_id"])
	assert.True(t, names["refresh_token"])
}

func TestRegisterDuplicateLoginIsConflict(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &stubAuthService{registerErr: authsrv.ErrLoginTaken}})

	rec := httptest.NewRecorder()
	h.Register(rec, registerRequest())

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterInfraErrorIsInternal(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &stubAuthService{registerErr: errors.New("db is down")}})

	rec := httptest.NewRecorder()
	h.Register(rec, registerRequest())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
