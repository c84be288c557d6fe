// Package auth содержит HTTP обработчики регистрации и входа.
package auth

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"devconnect/internal/adapters/http/dto"
	"devconnect/internal/adapters/http/httperr"
	"devconnect/internal/adapters/http/middleware"
	"devconnect/internal/ports/api"
	"devconnect/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister    = "auth handler: register"
	LogHandlerLogin       = "auth handler: login"
	LogHandlerCurrentUser = "auth handler: current user"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
	ErrorUnauthorized         = "unauthorized"
)

// Handler содержит HTTP обработчики аутентификации.
type Handler struct {
	authUseCase api.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(authUseCase api.AuthUseCase) *Handler {
	return &Handler{
		authUseCase: authUseCase,
	}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		if sendErr := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		}); sendErr != nil {
			return fmt.Errorf("error sending bad request response: %w", sendErr)
		}
		return nil
	}

	authToken, err := h.authUseCase.Register(requestCtx, req.Name, req.Email, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.TokenResponse{Token: authToken.Token}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		if sendErr := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		}); sendErr != nil {
			return fmt.Errorf("error sending bad request response: %w", sendErr)
		}
		return nil
	}

	authToken, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.TokenResponse{Token: authToken.Token}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// CurrentUser обрабатывает запрос на получение аутентифицированного пользователя.
func (h *Handler) CurrentUser(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCurrentUser)

	userID, ok := middleware.UserID(ctx)
	if !ok {
		if err := ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"msg": ErrorUnauthorized,
		}); err != nil {
			return fmt.Errorf("error sending unauthorized response: %w", err)
		}
		return nil
	}

	user, err := h.authUseCase.CurrentUser(requestCtx, userID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(user); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
