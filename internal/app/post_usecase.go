package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"devconnect/internal/domain/entities"
	"devconnect/internal/ports/api"
	"devconnect/internal/ports/repositories"
	"devconnect/pkg/logger"
)

const (
	methodCreatePost    = "Create"
	methodListPosts     = "List"
	methodGetPost       = "GetByID"
	methodDeletePost    = "Delete"
	methodLikePost      = "Like"
	methodUnlikePost    = "Unlike"
	methodAddComment    = "AddComment"
	methodRemoveComment = "RemoveComment"

	msgCreatingPost    = "creating post"
	msgPostCreated     = "post created"
	msgListingPosts    = "listing posts"
	msgFetchingPost    = "fetching post"
	msgDeletingPost    = "deleting post"
	msgPostDeleted     = "post deleted"
	msgLikingPost      = "liking post"
	msgUnlikingPost    = "unliking post"
	msgAddingComment   = "adding comment"
	msgRemovingComment = "removing comment"
	msgNotAuthor       = "ownership check failed"
	msgEmptyText       = "empty text provided"

	msgErrFindAuthor    = "failed to find post author"
	msgErrCreatePost    = "failed to create post"
	msgErrListPosts     = "failed to list posts"
	msgErrFindPost      = "failed to find post"
	msgErrDeletePost    = "failed to delete post"
	msgErrMutateLike    = "failed to mutate likes"
	msgErrListLikes     = "failed to list likes"
	msgErrMutateComment = "failed to mutate comments"
	msgErrListComments  = "failed to list comments"
	msgErrFindComment   = "failed to find comment"

	errCtxFindingAuthor   = "finding post author"
	errCtxCreatingPost    = "creating post"
	errCtxListingPosts    = "listing posts"
	errCtxFetchingPost    = "fetching post"
	errCtxDeletingPost    = "deleting post"
	errCtxCheckingOwner   = "checking ownership"
	errCtxLikingPost      = "liking post"
	errCtxUnlikingPost    = "unliking post"
	errCtxListingLikes    = "listing likes"
	errCtxAddingComment   = "adding comment"
	errCtxRemovingComment = "removing comment"
	errCtxListingComments = "listing comments"
	errCtxFindingComment  = "finding comment"
)

// Сообщения валидации постов и комментариев.
const (
	ValidationPostTextRequired    = "Please enter the text for the post"
	ValidationCommentTextRequired = "Please enter the text for the comment"
)

// PostUseCaseImpl реализует интерфейс PostUseCase.
type PostUseCaseImpl struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
}

// NewPostUseCase создает новый экземпляр сервиса постов.
func NewPostUseCase(postRepo repositories.PostRepository, userRepo repositories.UserRepository) api.PostUseCase {
	return &PostUseCaseImpl{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// Create создает пост, снимая мгновенную копию имени и аватара автора.
func (p *PostUseCaseImpl) Create(ctx context.Context, userID, text string) (*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreatePost), zap.String("userID", userID))
	log.Debug(ctx, msgCreatingPost)

	if text == "" {
		log.Debug(ctx, msgEmptyText)
		return nil, entities.NewValidationError(ValidationPostTextRequired)
	}

	author, err := p.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrFindAuthor, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingAuthor, err)
	}

	post := &entities.Post{
		UserID:       author.ID,
		Text:         text,
		AuthorName:   author.Name,
		AuthorAvatar: author.Avatar,
	}

	created, err := p.postRepo.Create(ctx, post)
	if err != nil {
		log.Error(ctx, msgErrCreatePost, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingPost, err)
	}

	log.Info(ctx, msgPostCreated, zap.String("postID", created.ID))
	return created, nil
}

// List возвращает все посты, новые впереди.
func (p *PostUseCaseImpl) List(ctx context.Context) ([]*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListPosts))
	log.Debug(ctx, msgListingPosts)

	posts, err := p.postRepo.FindAll(ctx)
	if err != nil {
		log.Error(ctx, msgErrListPosts, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingPosts, err)
	}

	return posts, nil
}

// GetByID возвращает пост со всеми лайками и комментариями.
func (p *PostUseCaseImpl) GetByID(ctx context.Context, id string) (*entities.Post, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetPost), zap.String("postID", id))
	log.Debug(ctx, msgFetchingPost)

	post, err := p.postRepo.FindByID(ctx, id)
	if err != nil {
		log.Debug(ctx, msgErrFindPost, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingPost, err)
	}

	return post, nil
}

// Delete удаляет пост. Удаление разрешено только автору.
func (p *PostUseCaseImpl) Delete(ctx context.Context, id, userID string) error {
	log := logger.Log(ctx).With(
		zap.String("method", methodDeletePost),
		zap.String("postID", id),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgDeletingPost)

	post, err := p.postRepo.FindByID(ctx, id)
	if err != nil {
		log.Debug(ctx, msgErrFindPost, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxFetchingPost, err)
	}

	if post.UserID != userID {
		log.Debug(ctx, msgNotAuthor)
		return fmt.Errorf("%s: %w", errCtxCheckingOwner, entities.ErrNotPostAuthor)
	}

	if err := p.postRepo.Delete(ctx, id); err != nil {
		log.Error(ctx, msgErrDeletePost, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeletingPost, err)
	}

	log.Info(ctx, msgPostDeleted)
	return nil
}

// Like добавляет лайк пользователя и возвращает обновленный список лайков.
// Повторный лайк того же пользователя отклоняется.
func (p *PostUseCaseImpl) Like(ctx context.Context, id, userID string) ([]entities.Like, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodLikePost),
		zap.String("postID", id),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgLikingPost)

	if _, err := p.postRepo.FindByID(ctx, id); err != nil {
		log.Debug(ctx, msgErrFindPost, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingPost, err)
	}

	if err := p.postRepo.AddLike(ctx, id, userID); err != nil {
		log.Debug(ctx, msgErrMutateLike, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxLikingPost, err)
	}

	return p.listLikes(ctx, log, id)
}

// Unlike удаляет лайк пользователя и возвращает обновленный список лайков.
func (p *PostUseCaseImpl) Unlike(ctx context.Context, id, userID string) ([]entities.Like, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodUnlikePost),
		zap.String("postID", id),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgUnlikingPost)

	if _, err := p.postRepo.FindByID(ctx, id); err != nil {
		log.Debug(ctx, msgErrFindPost, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingPost, err)
	}

	if err := p.postRepo.RemoveLike(ctx, id, userID); err != nil {
		log.Debug(ctx, msgErrMutateLike, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUnlikingPost, err)
	}

	return p.listLikes(ctx, log, id)
}

// AddComment добавляет комментарий со снимком имени и аватара автора
// и возвращает обновленный список комментариев, новые впереди.
func (p *PostUseCaseImpl) AddComment(ctx context.Context, id, userID, text string) ([]entities.Comment, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodAddComment),
		zap.String("postID", id),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgAddingComment)

	if text == "" {
		log.Debug(ctx, msgEmptyText)
		return nil, entities.NewValidationError(ValidationCommentTextRequired)
	}

	if _, err := p.postRepo.FindByID(ctx, id); err != nil {
		log.Debug(ctx, msgErrFindPost, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingPost, err)
	}

	author, err := p.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Error(ctx, msgErrFindAuthor, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingAuthor, err)
	}

	comment := &entities.Comment{
		ID:           uuid.New().String(),
		UserID:       author.ID,
		Text:         text,
		AuthorName:   author.Name,
		AuthorAvatar: author.Avatar,
	}

	if err := p.postRepo.AddComment(ctx, id, comment); err != nil {
		log.Error(ctx, msgErrMutateComment, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxAddingComment, err)
	}

	return p.listComments(ctx, log, id)
}

// RemoveComment удаляет комментарий. Удаление разрешено только автору
// комментария; порядок остальных комментариев сохраняется.
func (p *PostUseCaseImpl) RemoveComment(ctx context.Context, postID, commentID, userID string) ([]entities.Comment, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodRemoveComment),
		zap.String("postID", postID),
		zap.String("commentID", commentID),
		zap.String("userID", userID),
	)
	log.Debug(ctx, msgRemovingComment)

	if _, err := p.postRepo.FindByID(ctx, postID); err != nil {
		log.Debug(ctx, msgErrFindPost, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingPost, err)
	}

	comment, err := p.postRepo.FindComment(ctx, postID, commentID)
	if err != nil {
		log.Debug(ctx, msgErrFindComment, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingComment, err)
	}

	if comment.UserID != userID {
		log.Debug(ctx, msgNotAuthor)
		return nil, fmt.Errorf("%s: %w", errCtxCheckingOwner, entities.ErrNotCommentAuthor)
	}

	if err := p.postRepo.RemoveComment(ctx, postID, commentID); err != nil {
		log.Error(ctx, msgErrMutateComment, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxRemovingComment, err)
	}

	return p.listComments(ctx, log, postID)
}

func (p *PostUseCaseImpl) listLikes(ctx context.Context, log *logger.Logger, postID string) ([]entities.Like, error) {
	likes, err := p.postRepo.ListLikes(ctx, postID)
	if err != nil {
		log.Error(ctx, msgErrListLikes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingLikes, err)
	}
	return likes, nil
}

func (p *PostUseCaseImpl) listComments(ctx context.Context, log *logger.Logger, postID string) ([]entities.Comment, error) {
	comments, err := p.postRepo.ListComments(ctx, postID)
	if err != nil {
		log.Error(ctx, msgErrListComments, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingComments, err)
	}
	return comments, nil
}
