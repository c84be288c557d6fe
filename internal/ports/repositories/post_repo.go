package repositories

import (
	"context"

	"devconnect/internal/domain/entities"
)

// PostRepository определяет интерфейс для операций с постами
// и их вложенными коллекциями (лайки, комментарии).
type PostRepository interface {
	Create(ctx context.Context, post *entities.Post) (*entities.Post, error)

	FindByID(ctx context.Context, id string) (*entities.Post, error)

	FindAll(ctx context.Context) ([]*entities.Post, error)

	Delete(ctx context.Context, id string) error

	// AddLike атомарно добавляет лайк; возвращает entities.ErrAlreadyLiked,
	// если пользователь уже отметил этот пост.
	AddLike(ctx context.Context, postID, userID string) error

	// RemoveLike атомарно удаляет лайк; возвращает entities.ErrNotLiked,
	// если пользователь не отмечал этот пост.
	RemoveLike(ctx context.Context, postID, userID string) error

	ListLikes(ctx context.Context, postID string) ([]entities.Like, error)

	AddComment(ctx context.Context, postID string, comment *entities.Comment) error

	FindComment(ctx context.Context, postID, commentID string) (*entities.Comment, error)

	RemoveComment(ctx context.Context, postID, commentID string) error

	ListComments(ctx context.Context, postID string) ([]entities.Comment, error)
}
