package api

import (
	"context"

	"devconnect/internal/domain/entities"
)

// ExperienceInput содержит данные для добавления записи об опыте работы.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        string
	To          string
	Current     bool
	Description string
}

// EducationInput содержит данные для добавления записи об образовании.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         string
	To           string
	Current      bool
	Description  string
}

// ProfileUseCase определяет основной порт для операций с профилями.
type ProfileUseCase interface {
	Upsert(ctx context.Context, userID string, patch *entities.ProfilePatch) (*entities.Profile, error)

	GetMe(ctx context.Context, userID string) (*entities.Profile, error)

	GetByUser(ctx context.Context, userID string) (*entities.Profile, error)

	ListAll(ctx context.Context) ([]*entities.Profile, error)

	AddExperience(ctx context.Context, userID string, input *ExperienceInput) (*entities.Profile, error)

	RemoveExperience(ctx context.Context, userID, experienceID string) (*entities.Profile, error)

	AddEducation(ctx context.Context, userID string, input *EducationInput) (*entities.Profile, error)

	RemoveEducation(ctx context.Context, userID, educationID string) (*entities.Profile, error)

	DeleteAccount(ctx context.Context, userID string) error
}
