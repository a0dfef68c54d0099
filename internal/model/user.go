package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID       int64
	Name     string
	Login    string
	Password string
}

type UserClaims struct {
	jwt.RegisteredClaims
}

// AuthData - результат регистрации/логина
type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
