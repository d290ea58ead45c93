package postgres

import (
	"plazausers/internal/users/ports/repositories"
)

// RepositoryFactory создает репозитории поверх общего пула.
type RepositoryFactory struct {
	userRepo repositories.UserRepository
}

func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo: NewUserRepository(pool),
	}
}

func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}
