package postusecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"devconnect/internal/domain/entities"
)

type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) Create(ctx context.Context, post *entities.Post) (*entities.Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Post), args.Error(1)
}

func (m *mockPostRepository) FindByID(ctx context.Context, id string) (*entities.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Post), args.Error(1)
}

func (m *mockPostRepository) FindAll(ctx context.Context) ([]*entities.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Post), args.Error(1)
}

func (m *mockPostRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPostRepository) AddLike(ctx context.Context, postID, userID string) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *mockPostRepository) RemoveLike(ctx context.Context, postID, userID string) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *mockPostRepository) ListLikes(ctx context.Context, postID string) ([]entities.Like, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Like), args.Error(1)
}

func (m *mockPostRepository) AddComment(ctx context.Context, postID string, comment *entities.Comment) error {
	args := m.Called(ctx, postID, comment)
	return args.Error(0)
}

func (m *mockPostRepository) FindComment(ctx context.Context, postID, commentID string) (*entities.Comment, error) {
	args := m.Called(ctx, postID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Comment), args.Error(1)
}

func (m *mockPostRepository) RemoveComment(ctx context.Context, postID, commentID string) error {
	args := m.Called(ctx, postID, commentID)
	return args.Error(0)
}

func (m *mockPostRepository) ListComments(ctx context.Context, postID string) ([]entities.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Comment), args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}
