package entities

import (
	"errors"
	"time"
)

// Ошибки домена профиля.
var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrExperienceNotFound = errors.New("experience entry not found")
	ErrEducationNotFound  = errors.New("education entry not found")
)

// ProfileOwner содержит денормализованные данные владельца профиля,
// подставляемые из коллекции пользователей при чтении.
type ProfileOwner struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Profile представляет профиль пользователя. У пользователя не более одного профиля.
type Profile struct {
	User           ProfileOwner      `json:"user"`
	Company        string            `json:"company"`
	Website        string            `json:"website"`
	Location       string            `json:"location"`
	Status         string            `json:"status"`
	Skills         []string          `json:"skills"`
	Bio            string            `json:"bio"`
	GithubUsername string            `json:"github_username"`
	Social         map[string]string `json:"social"`
	Experience     []Experience      `json:"experience"`
	Education      []Education       `json:"education"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// ProfilePatch описывает частичное обновление профиля. Nil-поля
// отсутствуют в запросе и не затрагивают сохраненные значения.
type ProfilePatch struct {
	Company        *string
	Website        *string
	Location       *string
	Status         *string
	Skills         []string
	Bio            *string
	GithubUsername *string
	Social         map[string]string
}

// Experience представляет запись об опыте работы в профиле.
type Experience struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Current     bool      `json:"current"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Education представляет запись об образовании в профиле.
type Education struct {
	ID           string    `json:"id"`
	School       string    `json:"school"`
	Degree       string    `json:"degree"`
	FieldOfStudy string    `json:"field_of_study"`
	From         string    `json:"from"`
	To           string    `json:"to"`
	Current      bool      `json:"current"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}
