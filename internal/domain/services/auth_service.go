package services

import (
	"errors"
	"time"
)

// Ошибки процесса аутентификации.
var (
	ErrEmailAlreadyExists    = errors.New("user with this email already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrTokenGenerationFailed = errors.New("failed to generate token")
)

// AuthToken представляет выданный токен идентичности.
type AuthToken struct {
	UserID    string
	Token     string
	ExpiresAt time.Time
}
