package entities

import (
	"strings"
)

// ValidationError перечисляет все сообщения о невалидных полях запроса.
type ValidationError struct {
	Messages []string
}

// NewValidationError создает ошибку валидации из списка сообщений.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// Error возвращает все сообщения одной строкой.
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
