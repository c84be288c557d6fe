// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"devconnect/internal/ports/services"
	"devconnect/pkg/logger"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoToken      = "No token, authorization denied"
	ErrorInvalidToken = "Token is not valid"
)

// TokenHeader задает имя заголовка с токеном идентичности.
const TokenHeader = "x-auth-token"

// userIDKey задает ключ идентификатора пользователя в локальных данных запроса.
const userIDKey = "userID"

// NewAuthMiddleware создает промежуточное ПО для проверки аутентификации.
// Запрос без валидного токена завершается ровно одним ответом 401,
// обработчики маршрута при этом не вызываются.
func NewAuthMiddleware(tokenService services.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		token := ctx.Get(TokenHeader)
		if token == "" {
			log.Debug(requestCtx, "no token provided")
			if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"msg": ErrorNoToken,
			}); err != nil {
				return fmt.Errorf("error sending unauthorized response: %w", err)
			}
			return nil
		}

		userID, err := tokenService.ValidateToken(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, "token validation failed", zap.Error(err))
			if sendErr := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"msg": ErrorInvalidToken,
			}); sendErr != nil {
				return fmt.Errorf("error sending unauthorized response: %w", sendErr)
			}
			return nil
		}

		ctx.Locals(userIDKey, userID)

		return ctx.Next()
	}
}

// UserID возвращает идентификатор аутентифицированного пользователя из запроса.
func UserID(ctx fiber.Ctx) (string, bool) {
	userID, ok := ctx.Locals(userIDKey).(string)
	return userID, ok && userID != ""
}
