package api

import (
	"context"

	"devconnect/internal/domain/entities"
)

// PostUseCase определяет основной порт для операций с постами.
type PostUseCase interface {
	Create(ctx context.Context, userID, text string) (*entities.Post, error)

	List(ctx context.Context) ([]*entities.Post, error)

	GetByID(ctx context.Context, id string) (*entities.Post, error)

	Delete(ctx context.Context, id, userID string) error

	Like(ctx context.Context, id, userID string) ([]entities.Like, error)

	Unlike(ctx context.Context, id, userID string) ([]entities.Like, error)

	AddComment(ctx context.Context, id, userID, text string) ([]entities.Comment, error)

	RemoveComment(ctx context.Context, postID, commentID, userID string) ([]entities.Comment, error)
}
