package profileusecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"devconnect/internal/domain/entities"
)

type mockProfileRepository struct {
	mock.Mock
}

func (m *mockProfileRepository) Upsert(ctx context.Context, userID string, patch *entities.ProfilePatch) (*entities.Profile, error) {
	args := m.Called(ctx, userID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *mockProfileRepository) FindByUserID(ctx context.Context, userID string) (*entities.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *mockProfileRepository) FindAll(ctx context.Context) ([]*entities.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Profile), args.Error(1)
}

func (m *mockProfileRepository) AddExperience(ctx context.Context, userID string, exp *entities.Experience) error {
	args := m.Called(ctx, userID, exp)
	return args.Error(0)
}

func (m *mockProfileRepository) RemoveExperience(ctx context.Context, userID, experienceID string) error {
	args := m.Called(ctx, userID, experienceID)
	return args.Error(0)
}

func (m *mockProfileRepository) AddEducation(ctx context.Context, userID string, edu *entities.Education) error {
	args := m.Called(ctx, userID, edu)
	return args.Error(0)
}

func (m *mockProfileRepository) RemoveEducation(ctx context.Context, userID, educationID string) error {
	args := m.Called(ctx, userID, educationID)
	return args.Error(0)
}

func (m *mockProfileRepository) DeleteWithUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
