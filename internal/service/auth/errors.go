package auth

// AuthError - типизированная ошибка сервиса аутентификации
type AuthError string

func (e AuthError) Error() string {
	return string(e)
}

const (
	ErrLoginTaken AuthError = "login already taken"
)
