// Package dto содержит объекты передачи данных для HTTP API.
package dto

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse содержит токен идентичности.
type TokenResponse struct {
	Token string `json:"token"`
}
