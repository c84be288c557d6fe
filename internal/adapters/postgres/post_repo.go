package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"devconnect/internal/domain/entities"
	"devconnect/internal/ports/repositories"
	"devconnect/pkg/logger"
)

// PostRepository реализует интерфейс repositories.PostRepository для работы с Postgres.
type PostRepository struct {
	pool PgxPoolInterface
}

// NewPostRepository создает новый экземпляр репозитория постов.
func NewPostRepository(pool PgxPoolInterface) repositories.PostRepository {
	return &PostRepository{pool: pool}
}

// Create создает новый пост со снимком имени и аватара автора.
func (r *PostRepository) Create(ctx context.Context, post *entities.Post) (*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "Create"))

	query := `
        INSERT INTO posts (user_id, text, author_name, author_avatar)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `

	created := *post
	err := r.pool.QueryRow(ctx, query,
		post.UserID,
		post.Text,
		post.AuthorName,
		post.AuthorAvatar,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		log.Error(ctx, "error creating post", zap.Error(err))
		return nil, fmt.Errorf("error creating post: %w", err)
	}

	created.Likes = make([]entities.Like, 0)
	created.Comments = make([]entities.Comment, 0)

	return &created, nil
}

// FindByID находит пост вместе с лайками и комментариями.
func (r *PostRepository) FindByID(ctx context.Context, id string) (*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "FindByID"))

	query := `
        SELECT id, user_id, text, author_name, author_avatar, created_at
        FROM posts
        WHERE id = $1
    `

	var post entities.Post
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.UserID,
		&post.Text,
		&post.AuthorName,
		&post.AuthorAvatar,
		&post.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "post not found", zap.String("id", id))
			return nil, entities.ErrPostNotFound
		}
		log.Error(ctx, "error finding post", zap.Error(err))
		return nil, fmt.Errorf("error querying post: %w", err)
	}

	if post.Likes, err = r.ListLikes(ctx, id); err != nil {
		return nil, err
	}
	if post.Comments, err = r.ListComments(ctx, id); err != nil {
		return nil, err
	}

	return &post, nil
}

// FindAll возвращает все посты от новых к старым вместе с их вложенными коллекциями.
func (r *PostRepository) FindAll(ctx context.Context) ([]*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "FindAll"))

	query := `
        SELECT id, user_id, text, author_name, author_avatar, created_at
        FROM posts
        ORDER BY created_at DESC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		log.Error(ctx, "error listing posts", zap.Error(err))
		return nil, fmt.Errorf("error querying posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*entities.Post, 0)
	for rows.Next() {
		var post entities.Post
		if err = rows.Scan(
			&post.ID,
			&post.UserID,
			&post.Text,
			&post.AuthorName,
			&post.AuthorAvatar,
			&post.CreatedAt,
		); err != nil {
			log.Error(ctx, "error scanning post row", zap.Error(err))
			return nil, fmt.Errorf("error scanning post row: %w", err)
		}
		posts = append(posts, &post)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	for _, post := range posts {
		if post.Likes, err = r.ListLikes(ctx, post.ID); err != nil {
			return nil, err
		}
		if post.Comments, err = r.ListComments(ctx, post.ID); err != nil {
			return nil, err
		}
	}

	return posts, nil
}

// Delete удаляет пост вместе с лайками и комментариями (каскадно).
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "Delete"))

	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		log.Error(ctx, "error deleting post", zap.Error(err))
		return fmt.Errorf("error deleting post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Debug(ctx, "post not found", zap.String("id", id))
		return entities.ErrPostNotFound
	}

	return nil
}

// AddLike атомарно добавляет лайк. Повторный лайк того же пользователя
// дает entities.ErrAlreadyLiked.
func (r *PostRepository) AddLike(ctx context.Context, postID, userID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "AddLike"))

	query := `
        INSERT INTO post_likes (post_id, user_id)
        VALUES ($1, $2)
        ON CONFLICT (post_id, user_id) DO NOTHING
    `

	tag, err := r.pool.Exec(ctx, query, postID, userID)
	if err != nil {
		log.Error(ctx, "error adding like", zap.Error(err))
		return fmt.Errorf("error adding like: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Debug(ctx, "post already liked", zap.String("postID", postID), zap.String("userID", userID))
		return entities.ErrAlreadyLiked
	}

	return nil
}

// RemoveLike атомарно удаляет лайк. Отсутствие лайка дает entities.ErrNotLiked.
func (r *PostRepository) RemoveLike(ctx context.Context, postID, userID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "RemoveLike"))

	query := `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, query, postID, userID)
	if err != nil {
		log.Error(ctx, "error removing like", zap.Error(err))
		return fmt.Errorf("error removing like: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Debug(ctx, "like not found", zap.String("postID", postID), zap.String("userID", userID))
		return entities.ErrNotLiked
	}

	return nil
}

// ListLikes возвращает лайки поста от новых к старым.
func (r *PostRepository) ListLikes(ctx context.Context, postID string) ([]entities.Like, error) {
	query := `
        SELECT user_id, created_at
        FROM post_likes
        WHERE post_id = $1
        ORDER BY created_at DESC, user_id
    `

	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("error querying likes: %w", err)
	}
	defer rows.Close()

	likes := make([]entities.Like, 0)
	for rows.Next() {
		var like entities.Like
		if err = rows.Scan(&like.UserID, &like.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning like row: %w", err)
		}
		likes = append(likes, like)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating likes: %w", err)
	}

	return likes, nil
}

// AddComment добавляет комментарий к посту.
func (r *PostRepository) AddComment(ctx context.Context, postID string, comment *entities.Comment) error {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "AddComment"))

	query := `
        INSERT INTO post_comments (id, post_id, user_id, text, author_name, author_avatar)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at
    `

	err := r.pool.QueryRow(ctx, query,
		comment.ID,
		postID,
		comment.UserID,
		comment.Text,
		comment.AuthorName,
		comment.AuthorAvatar,
	).Scan(&comment.CreatedAt)
	if err != nil {
		log.Error(ctx, "error adding comment", zap.Error(err))
		return fmt.Errorf("error adding comment: %w", err)
	}

	return nil
}

// FindComment находит комментарий в пределах поста.
func (r *PostRepository) FindComment(ctx context.Context, postID, commentID string) (*entities.Comment, error) {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "FindComment"))

	query := `
        SELECT id, user_id, text, author_name, author_avatar, created_at
        FROM post_comments
        WHERE id = $1 AND post_id = $2
    `

	var comment entities.Comment
	err := r.pool.QueryRow(ctx, query, commentID, postID).Scan(
		&comment.ID,
		&comment.UserID,
		&comment.Text,
		&comment.AuthorName,
		&comment.AuthorAvatar,
		&comment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "comment not found", zap.String("commentID", commentID))
			return nil, entities.ErrCommentNotFound
		}
		log.Error(ctx, "error finding comment", zap.Error(err))
		return nil, fmt.Errorf("error querying comment: %w", err)
	}

	return &comment, nil
}

// RemoveComment удаляет комментарий в пределах поста.
func (r *PostRepository) RemoveComment(ctx context.Context, postID, commentID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "post"), zap.String("method", "RemoveComment"))

	query := `DELETE FROM post_comments WHERE id = $1 AND post_id = $2`

	tag, err := r.pool.Exec(ctx, query, commentID, postID)
	if err != nil {
		log.Error(ctx, "error removing comment", zap.Error(err))
		return fmt.Errorf("error removing comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		log.Debug(ctx, "comment not found", zap.String("commentID", commentID))
		return entities.ErrCommentNotFound
	}

	return nil
}

// ListComments возвращает комментарии поста от новых к старым.
func (r *PostRepository) ListComments(ctx context.Context, postID string) ([]entities.Comment, error) {
	query := `
        SELECT id, user_id, text, author_name, author_avatar, created_at
        FROM post_comments
        WHERE post_id = $1
        ORDER BY created_at DESC, id
    `

	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("error querying comments: %w", err)
	}
	defer rows.Close()

	comments := make([]entities.Comment, 0)
	for rows.Next() {
		var comment entities.Comment
		if err = rows.Scan(
			&comment.ID,
			&comment.UserID,
			&comment.Text,
			&comment.AuthorName,
			&comment.AuthorAvatar,
			&comment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}
		comments = append(comments, comment)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}
