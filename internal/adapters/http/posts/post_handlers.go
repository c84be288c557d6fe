// Package posts содержит HTTP обработчики для работы с постами.
package posts

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
	LogHandlerCreate        = "post handler: create"
	LogHandlerList          = "post handler: list"
	LogHandlerGetByID       = "post handler: get by id"
	LogHandlerDelete        = "post handler: delete"
	LogHandlerLike          = "post handler: like"
	LogHandlerUnlike        = "post handler: unlike"
	LogHandlerAddComment    = "post handler: add comment"
	LogHandlerRemoveComment = "post handler: remove comment"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
	ErrorUnauthorized         = "unauthorized"

	MsgPostRemoved = "Post removed"
)

// Handler содержит HTTP обработчики постов.
type Handler struct {
	postUseCase api.PostUseCase
}

// NewHandler создает новый экземпляр обработчика постов.
func NewHandler(postUseCase api.PostUseCase) *Handler {
	return &Handler{
		postUseCase: postUseCase,
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

// Create обрабатывает запрос на создание поста.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return sendUnauthorized(ctx)
	}

	var req dto.PostRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		if sendErr := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		}); sendErr != nil {
			return fmt.Errorf("error sending bad request response: %w", sendErr)
		}
		return nil
	}

	post, err := h.postUseCase.Create(requestCtx, userID, req.Text)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(post); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// List обрабатывает запрос на получение всех постов от новых к старым.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerList)

	posts, err := h.postUseCase.List(requestCtx)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(posts); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetByID обрабатывает запрос на получение одного поста.
func (h *Handler) GetByID(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetByID)

	post, err := h.postUseCase.GetByID(requestCtx, ctx.Params("id"))
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(post); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Delete обрабатывает запрос на удаление поста его автором.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDelete)

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return sendUnauthorized(ctx)
	}

	if err := h.postUseCase.Delete(requestCtx, ctx.Params("id"), userID); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.MessageResponse{Msg: MsgPostRemoved}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Like обрабатывает запрос на отметку поста и возвращает обновленный список лайков.
func (h *Handler) Like(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLike)

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return sendUnauthorized(ctx)
	}

	likes, err := h.postUseCase.Like(requestCtx, ctx.Params("id"), userID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(likes); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Unlike обрабатывает запрос на снятие отметки и возвращает обновленный список лайков.
func (h *Handler) Unlike(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUnlike)

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return sendUnauthorized(ctx)
	}

	likes, err := h.postUseCase.Unlike(requestCtx, ctx.Params("id"), userID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(likes); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// AddComment обрабатывает запрос на добавление комментария и возвращает
// обновленный список комментариев.
func (h *Handler) AddComment(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerAddComment)

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return sendUnauthorized(ctx)
	}

	var req dto.CommentRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		if sendErr := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		}); sendErr != nil {
			return fmt.Errorf("error sending bad request response: %w", sendErr)
		}
		return nil
	}

	comments, err := h.postUseCase.AddComment(requestCtx, ctx.Params("id"), userID, req.Text)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(comments); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// RemoveComment обрабатывает запрос на удаление комментария его автором
// и возвращает обновленный список комментариев.
func (h *Handler) RemoveComment(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRemoveComment)

	userID, ok := middleware.UserID(ctx)
	if !ok {
		return sendUnauthorized(ctx)
	}

	comments, err := h.postUseCase.RemoveComment(requestCtx, ctx.Params("id"), ctx.Params("comment_id"), userID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return httperr.Respond(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(comments); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
