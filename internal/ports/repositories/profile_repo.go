package repositories

import (
	"context"

	"devconnect/internal/domain/entities"
)

// ProfileRepository определяет интерфейс для операций с профилями
// и их вложенными коллекциями (опыт работы, образование).
type ProfileRepository interface {
	// Upsert атомарно создает или частично обновляет профиль пользователя.
	Upsert(ctx context.Context, userID string, patch *entities.ProfilePatch) (*entities.Profile, error)

	FindByUserID(ctx context.Context, userID string) (*entities.Profile, error)

	FindAll(ctx context.Context) ([]*entities.Profile, error)

	AddExperience(ctx context.Context, userID string, exp *entities.Experience) error

	RemoveExperience(ctx context.Context, userID, experienceID string) error

	AddEducation(ctx context.Context, userID string, edu *entities.Education) error

	RemoveEducation(ctx context.Context, userID, educationID string) error

	// DeleteWithUser удаляет профиль и самого пользователя в одной транзакции.
	DeleteWithUser(ctx context.Context, userID string) error
}
