// Package services предоставляет реализации и фабрику вспомогательных сервисов:
// хэширование паролей, токены идентичности и аватары.
package services

import (
	"time"

	"devconnect/internal/ports/services"
)

// ServiceFactory создает все необходимые сервисы для аутентификации.
type ServiceFactory struct {
	passwordService services.PasswordService
	tokenService    services.TokenService
	avatarService   services.AvatarService
}

// NewServiceFactory создает новую фабрику сервисов.
func NewServiceFactory(jwtSecretKey string, tokenTTL time.Duration, bcryptCost int) *ServiceFactory {
	return &ServiceFactory{
		passwordService: NewBcrypt(bcryptCost),
		tokenService:    NewJWT(jwtSecretKey, tokenTTL),
		avatarService:   NewGravatar(),
	}
}

// PasswordService возвращает сервис для работы с паролями.
func (f *ServiceFactory) PasswordService() services.PasswordService {
	return f.passwordService
}

// TokenService возвращает сервис для работы с токенами.
func (f *ServiceFactory) TokenService() services.TokenService {
	return f.tokenService
}

// AvatarService возвращает сервис аватаров.
func (f *ServiceFactory) AvatarService() services.AvatarService {
	return f.avatarService
}
