package postgres

import (
	"devconnect/internal/ports/repositories"
)

// RepositoryFactory создает все репозитории поверх одного пула соединений.
type RepositoryFactory struct {
	userRepository    repositories.UserRepository
	profileRepository repositories.ProfileRepository
	postRepository    repositories.PostRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{
		userRepository:    NewUserRepository(pool),
		profileRepository: NewProfileRepository(pool),
		postRepository:    NewPostRepository(pool),
	}
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepository
}

// ProfileRepository возвращает репозиторий профилей.
func (f *RepositoryFactory) ProfileRepository() repositories.ProfileRepository {
	return f.profileRepository
}

// PostRepository возвращает репозиторий постов.
func (f *RepositoryFactory) PostRepository() repositories.PostRepository {
	return f.postRepository
}
