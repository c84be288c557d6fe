package postusecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"devconnect/internal/app"
	"devconnect/internal/domain/entities"
)

func TestLike(t *testing.T) {
	ctx := context.Background()

	postID := "post-1"
	userID := "liker-id"

	storedPost := &entities.Post{ID: postID, UserID: "author-id", Text: "hello"}

	t.Run("Успешный лайк возвращает обновленный список", func(t *testing.T) {
		mockPostRepo := new(mockPostRepository)
		mockUserRepo := new(mockUserRepository)

		likes := []entities.Like{{UserID: userID}}

		mockPostRepo.On("FindByID", mock.Anything, postID).Return(storedPost, nil).Once()
		mockPostRepo.On("AddLike", mock.Anything, postID, userID).Return(nil).Once()
		mockPostRepo.On("ListLikes", mock.Anything, postID).Return(likes, nil).Once()

		useCase := app.NewPostUseCase(mockPostRepo, mockUserRepo)
		result, err := useCase.Like(ctx, postID, userID)

		require.NoError(t, err)
		assert.Equal(t, likes, result)

		mockPostRepo.AssertExpectations(t)
	})

	t.Run("Повторный лайк дает ErrAlreadyLiked", func(t *testing.T) {
		mockPostRepo := new(mockPostRepository)
		mockUserRepo := new(mockUserRepository)

		mockPostRepo.On("FindByID", mock.Anything, postID).Return(storedPost, nil).Once()
		mockPostRepo.On("AddLike", mock.Anything, postID, userID).
			Return(entities.ErrAlreadyLiked).Once()

		useCase := app.NewPostUseCase(mockPostRepo, mockUserRepo)
		result, err := useCase.Like(ctx, postID, userID)

		assert.Nil(t, result)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrAlreadyLiked)

		mockPostRepo.AssertNotCalled(t, "ListLikes", mock.Anything, mock.Anything)
	})

	t.Run("Лайк несуществующего поста дает ErrPostNotFound", func(t *testing.T) {
		mockPostRepo := new(mockPostRepository)
		mockUserRepo := new(mockUserRepository)

		mockPostRepo.On("FindByID", mock.Anything, "missing-post").
			Return(nil, entities.ErrPostNotFound).Once()

		useCase := app.NewPostUseCase(mockPostRepo, mockUserRepo)
		result, err := useCase.Like(ctx, "missing-post", userID)

		assert.Nil(t, result)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrPostNotFound)

		mockPostRepo.AssertNotCalled(t, "AddLike", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUnlike(t *testing.T) {
	ctx := context.Background()

	postID := "post-1"
	userID := "liker-id"

	storedPost := &entities.Post{ID: postID, UserID: "author-id", Text: "hello"}

	t.Run("Успешное снятие лайка возвращает обновленный список", func(t *testing.T) {
		mockPostRepo := new(mockPostRepository)
		mockUserRepo := new(mockUserRepository)

		mockPostRepo.On("FindByID", mock.Anything, postID).Return(storedPost, nil).Once()
		mockPostRepo.On("RemoveLike", mock.Anything, postID, userID).Return(nil).Once()
		mockPostRepo.On("ListLikes", mock.Anything, postID).Return([]entities.Like{}, nil).Once()

		useCase := app.NewPostUseCase(mockPostRepo, mockUserRepo)
		result, err := useCase.Unlike(ctx, postID, userID)

		require.NoError(t, err)
		assert.Empty(t, result)

		mockPostRepo.AssertExpectations(t)
	})

	t.Run("Снятие отсутствующего лайка дает ErrNotLiked", func(t *testing.T) {
		mockPostRepo := new(mockPostRepository)
		mockUserRepo := new(mockUserRepository)

		mockPostRepo.On("FindByID", mock.Anything, postID).Return(storedPost, nil).Once()
		mockPostRepo.On("RemoveLike", mock.Anything, postID, userID).
			Return(entities.ErrNotLiked).Once()

		useCase := app.NewPostUseCase(mockPostRepo, mockUserRepo)
		result, err := useCase.Unlike(ctx, postID, userID)

		assert.Nil(t, result)
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrNotLiked)
	})
}
