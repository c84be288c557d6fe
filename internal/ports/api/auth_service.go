// Package api определяет основные порты бизнес-логики приложения.
package api

import (
	"context"

	"devconnect/internal/domain/entities"
	"devconnect/internal/domain/services"
)

// AuthUseCase определяет основной порт для операций аутентификации.
type AuthUseCase interface {
	Register(ctx context.Context, name, email, password string) (*services.AuthToken, error)

	Login(ctx context.Context, email, password string) (*services.AuthToken, error)

	CurrentUser(ctx context.Context, userID string) (*entities.User, error)
}
