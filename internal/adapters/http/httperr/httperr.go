// Package httperr отображает доменные ошибки в HTTP ответы.
package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"devconnect/internal/domain/entities"
	"devconnect/internal/domain/services"
)

// Сообщения клиентских ошибок (как в наблюдаемом API).
const (
	MsgUserAlreadyExists   = "User already exists"
	MsgInvalidCredentials  = "Invalid credentials"
	MsgUserNotFound        = "User not found"
	MsgProfileNotFound     = "Profile not found"
	MsgPostNotFound        = "Post not found"
	MsgCommentNotFound     = "Comment does not exist"
	MsgExperienceNotFound  = "Experience entry not found"
	MsgEducationNotFound   = "Education entry not found"
	MsgPostAlreadyLiked    = "Post already liked"
	MsgPostNotYetLiked     = "Post has not yet been liked"
	MsgUserNotAuthorized   = "User not authorized"
	MsgTokenInvalid        = "Token is not valid"
	MsgInternalServerError = "internal server error"
)

// FieldError описывает одну ошибку валидации в ответе API.
type FieldError struct {
	Msg string `json:"msg"`
}

// Respond отправляет HTTP ответ, соответствующий доменной ошибке.
// Неузнанные ошибки превращаются в 500 без деталей для клиента.
func Respond(ctx fiber.Ctx, err error) error {
	status, body := classify(err)
	if sendErr := ctx.Status(status).JSON(body); sendErr != nil {
		return fmt.Errorf("error sending error response: %w", sendErr)
	}
	return nil
}

//nolint:cyclop // плоская таблица соответствия ошибок и статусов
func classify(err error) (int, any) {
	var validationErr *entities.ValidationError
	if errors.As(err, &validationErr) {
		fieldErrors := make([]FieldError, 0, len(validationErr.Messages))
		for _, msg := range validationErr.Messages {
			fieldErrors = append(fieldErrors, FieldError{Msg: msg})
		}
		return http.StatusBadRequest, fiber.Map{"errors": fieldErrors}
	}

	switch {
	case errors.Is(err, services.ErrEmailAlreadyExists):
		return http.StatusBadRequest, fiber.Map{"errors": []FieldError{{Msg: MsgUserAlreadyExists}}}
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusBadRequest, fiber.Map{"errors": []FieldError{{Msg: MsgInvalidCredentials}}}
	case errors.Is(err, entities.ErrAlreadyLiked):
		return http.StatusBadRequest, fiber.Map{"msg": MsgPostAlreadyLiked}
	case errors.Is(err, entities.ErrNotLiked):
		return http.StatusBadRequest, fiber.Map{"msg": MsgPostNotYetLiked}
	case errors.Is(err, entities.ErrUserNotFound):
		return http.StatusNotFound, fiber.Map{"msg": MsgUserNotFound}
	case errors.Is(err, entities.ErrProfileNotFound):
		return http.StatusNotFound, fiber.Map{"msg": MsgProfileNotFound}
	case errors.Is(err, entities.ErrPostNotFound):
		return http.StatusNotFound, fiber.Map{"msg": MsgPostNotFound}
	case errors.Is(err, entities.ErrCommentNotFound):
		return http.StatusNotFound, fiber.Map{"msg": MsgCommentNotFound}
	case errors.Is(err, entities.ErrExperienceNotFound):
		return http.StatusNotFound, fiber.Map{"msg": MsgExperienceNotFound}
	case errors.Is(err, entities.ErrEducationNotFound):
		return http.StatusNotFound, fiber.Map{"msg": MsgEducationNotFound}
	case errors.Is(err, entities.ErrNotPostAuthor), errors.Is(err, entities.ErrNotCommentAuthor):
		return http.StatusForbidden, fiber.Map{"msg": MsgUserNotAuthorized}
	case errors.Is(err, services.ErrInvalidJWTToken), errors.Is(err, services.ErrExpiredJWTToken):
		return http.StatusUnauthorized, fiber.Map{"msg": MsgTokenInvalid}
	default:
		return http.StatusInternalServerError, fiber.Map{"error": MsgInternalServerError}
	}
}
