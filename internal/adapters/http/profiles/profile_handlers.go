// Package profiles содержит HTTP обработчики для работы с профилями.
package profiles

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
	LogHandlerUpsert           = "profile handler: upsert"
	LogHandlerGetMe            = "profile handler: get me"
	LogHandlerGetByUser        = "profile handler: get by user"
	LogHandlerListAll          = "profile handler: list all"
	LogHandlerAddExperience    = "profile handler: add experience"
	LogHandlerRemoveExperience = "profile handler: remove experience"
	LogHandlerAddEducation     = "profile handler: add education"
	LogHandlerRemoveEducation  = "profile handler: remove education"
	LogHandlerDeleteAccount    = "profile handler: delete account"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
	ErrorUnauthorized         = "unauthorized"

	MsgUserDeleted = "User deleted"
)

// Handler содержит HTTP обработчики профилей.
type Handler struct {
	profileUseCase api.ProfileUseCase
}

// NewHandler создает новый экземпляр обработчика профилей.
func NewHandler(profileUseCase api.ProfileUseCase) *Handler {
	return &Handler{
		profileUseCase: profileUseCase,
	}
}

// Вспомогательная функция для ответа 401 при отсутствии идентификатора пользователя.
func sendUnauthorized(ctx fiber.Ctx) error {
	if err := ctx.Status(http.StatusUnauthorized).JSON(fiber.Map{
		"msg": ErrorUnauthorized,
	}); err != nil {
		return fmt.Errorf("error sending unauthorized response: %w", err)
	}
	return nil
}

// Вспомогательная функция для ответа 400 при нечитаемом теле запроса.
func sendBadRequest(ctx fiber.Ctx) error {
	if err := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
		"error": ErrorInvalidRequest,
	}); err != nil {
		return fmt.Errorf("error sending bad request response: %w", err)
	}
	return nil
}

// Upsert обрабатывает запрос на создание или частичное обновление профиля.
func (h *Handler) Upsert(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpsert)

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return sendUnauthorized(ctx)
	}

	var req dto.ProfileRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendBadRequest(ctx)
	}

	profile, err := h.profileUseCase.Upsert(requestCtx, userID, req.ToPatch())
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(profile); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetMe обрабатывает запрос на получение собственного профиля.
func (h *Handler) GetMe(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetMe)

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return sendUnauthorized(ctx)
	}

	profile, err := h.profileUseCase.GetMe(requestCtx, userID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(profile); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetByUser обрабатывает запрос на получение профиля произвольного пользователя.
func (h *Handler) GetByUser(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetByUser)

	profile, err := h.profileUseCase.GetByUser(requestCtx, ctx.Params("user_id"))
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(profile); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ListAll обрабатывает запрос на получение всех профилей.
func (h *Handler) ListAll(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerListAll)

	profiles, err := h.profileUseCase.ListAll(requestCtx)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(profiles); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// AddExperience обрабатывает запрос на добавление записи об опыте работы.
func (h *Handler) AddExperience(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerAddExperience)

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return sendUnauthorized(ctx)
	}

	var req dto.ExperienceRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendBadRequest(ctx)
	}

	profile, err := h.profileUseCase.AddExperience(requestCtx, userID, req.ToInput())
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(profile); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// RemoveExperience обрабатывает запрос на удаление записи об опыте работы.
func (h *Handler) RemoveExperience(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRemoveExperience)

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return sendUnauthorized(ctx)
	}

	profile, err := h.profileUseCase.RemoveExperience(requestCtx, userID, ctx.Params("exp_id"))
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(profile); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// AddEducation обрабатывает запрос на добавление записи об образовании.
func (h *Handler) AddEducation(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerAddEducation)

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return sendUnauthorized(ctx)
	}

	var req dto.EducationRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendBadRequest(ctx)
	}

	profile, err := h.profileUseCase.AddEducation(requestCtx, userID, req.ToInput())
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(profile); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// RemoveEducation обрабатывает запрос на удаление записи об образовании.
func (h *Handler) RemoveEducation(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRemoveEducation)

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return sendUnauthorized(ctx)
	}

	profile, err := h.profileUseCase.RemoveEducation(requestCtx, userID, ctx.Params("edu_id"))
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(profile); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// DeleteAccount обрабатывает запрос на удаление профиля вместе с пользователем.
func (h *Handler) DeleteAccount(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDeleteAccount)

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return sendUnauthorized(ctx)
	}

	if err := h.profileUseCase.DeleteAccount(requestCtx, userID); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.MessageResponse{Msg: MsgUserDeleted}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
