package sqlite_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plazausers/internal/users/adapters/sqlite"
	"plazausers/internal/users/domain/entities"
	"plazausers/internal/users/ports/repositories"
	"plazausers/pkg/identity"
)

func newRepo(t *testing.T) repositories.UserRepository {
	t.Helper()
	ctx := context.Background()
	store, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(ctx) })
	return sqlite.NewUserRepository(store)
}

func int64Ptr(v int64) *int64 {
	return &v
}

func newUser(email, document string) *entities.User {
	return &entities.User{
		FirstName:    "Ana",
		LastName:     "Diaz",
		Document:     document,
		Phone:        "+573001112233",
		BirthDate:    time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
		Email:        email,
		Password:     "$2a$10$hash",
		Role:         identity.RoleEmployee,
		Active:       true,
		RestaurantID: int64Ptr(7),
	}
}

func TestSaveAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	saved, err := repo.Save(ctx, newUser("a@b.com", "1002003004"))
	require.NoError(t, err)
	assert.Positive(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	byEmail, err := repo.FindByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, byEmail.ID)
	assert.Equal(t, identity.RoleEmployee, byEmail.Role)
	assert.True(t, byEmail.Active)
	require.NotNil(t, byEmail.RestaurantID)
	assert.Equal(t, int64(7), *byEmail.RestaurantID)
	assert.Equal(t, time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC), byEmail.BirthDate)
	assert.Equal(t, "$2a$10$hash", byEmail.Password)

	byID, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", byID.Email)

	customer := newUser("c@b.com", "555")
	customer.Role = identity.RoleCustomer
	customer.RestaurantID = nil
	savedCustomer, err := repo.Save(ctx, customer)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, savedCustomer.ID)
	require.NoError(t, err)
	assert.Nil(t, found.RestaurantID)
}

func TestExists(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	ok, err := repo.ExistsByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = repo.Save(ctx, newUser("a@b.com", "1002003004"))
	require.NoError(t, err)

	ok, err = repo.ExistsByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsByDocument(ctx, "1002003004")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsByDocument(ctx, "999")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNotFound(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, entities.ErrUserNotFound)

	_, err = repo.FindByEmail(context.Background(), "ghost@b.com")
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestUniqueConstraintsMapToConflict(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	_, err := repo.Save(ctx, newUser("a@b.com", "1002003004"))
	require.NoError(t, err)

	_, err = repo.Save(ctx, newUser("a@b.com", "777"))
	require.ErrorIs(t, err, entities.ErrEmailAlreadyRegistered)
	assert.ErrorIs(t, err, entities.ErrConflict)

	_, err = repo.Save(ctx, newUser("other@b.com", "1002003004"))
	require.ErrorIs(t, err, entities.ErrDocumentAlreadyExists)
}

func TestConcurrentSavesSameEmail(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	const writers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := newUser("race@b.com", string(rune('1'+i)))
			_, err := repo.Save(ctx, u)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, entities.ErrConflict):
				conflicts++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, writers-1, conflicts)
}

func TestOpenFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "users.db")

	store, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.Ping(ctx))

	_, err = sqlite.NewUserRepository(store).Save(ctx, newUser("a@b.com", "1"))
	require.NoError(t, err)
	require.NoError(t, store.Close(ctx))

	reopened, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close(ctx) }()

	ok, err := sqlite.NewUserRepository(reopened).ExistsByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.True(t, ok)
}
