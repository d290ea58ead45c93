package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"plazausers/internal/users/domain/entities"
	"plazausers/internal/users/ports/repositories"
	"plazausers/pkg/identity"
	"plazausers/pkg/logger"
)

const (
	dateLayout = "2006-01-02"

	msgUserNotFound      = "user not found"
	msgUniqueViolation   = "unique constraint violated"
	msgErrQueryUser      = "error querying user"
	msgErrCheckExistence = "error checking user existence"
	msgErrInsertUser     = "error inserting user"
	errCtxQueryUser      = "error querying user"
	errCtxCheckExistence = "error checking user existence"
	errCtxInsertUser     = "error inserting user"
	errCtxDecodeUser     = "error decoding user"
)

const selectUser = `SELECT id, first_name, last_name, document, phone, birth_date, email,
        password_hash, role, active, restaurant_id, created_at FROM users`

// UserRepository реализует repositories.UserRepository поверх database/sql.
type UserRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewUserRepository(store *Store) repositories.UserRepository {
	return &UserRepository{db: store.DB(), now: time.Now}
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "ExistsByEmail", `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`, email)
}

func (r *UserRepository) ExistsByDocument(ctx context.Context, document string) (bool, error) {
	return r.exists(ctx, "ExistsByDocument", `SELECT EXISTS(SELECT 1 FROM users WHERE document = ?)`, document)
}

func (r *UserRepository) exists(ctx context.Context, method, query, arg string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", method))

	var found bool
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&found); err != nil {
		log.Error(ctx, msgErrCheckExistence, zap.Error(err))
		return false, fmt.Errorf("%s: %w", errCtxCheckExistence, err)
	}
	return found, nil
}

// Save вставляет пользователя. Нарушение UNIQUE возвращается как ошибка конфликта.
func (r *UserRepository) Save(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Save"))

	saved := *user
	saved.CreatedAt = r.now().UTC()

	res, err := r.db.ExecContext(ctx, `
        INSERT INTO users (first_name, last_name, document, phone, birth_date, email,
                           password_hash, role, active, restaurant_id, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.FirstName,
		user.LastName,
		user.Document,
		user.Phone,
		user.BirthDate.Format(dateLayout),
		user.Email,
		user.Password,
		user.Role.String(),
		user.Active,
		nullableInt64(user.RestaurantID),
		saved.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		if conflict := uniqueConflict(err); conflict != nil {
			log.Debug(ctx, msgUniqueViolation, zap.Error(err))
			return nil, conflict
		}
		log.Error(ctx, msgErrInsertUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxInsertUser, err)
	}

	saved.ID, err = res.LastInsertId()
	if err != nil {
		log.Error(ctx, msgErrInsertUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxInsertUser, err)
	}
	return &saved, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "FindByEmail", selectUser+` WHERE email = ?`, email)
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	return r.findOne(ctx, "FindByID", selectUser+` WHERE id = ?`, id)
}

func (r *UserRepository) findOne(ctx context.Context, method, query string, arg any) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", method))

	var (
		user       entities.User
		birthDate  string
		role       string
		restaurant sql.NullInt64
		createdAt  string
	)
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Document,
		&user.Phone,
		&birthDate,
		&user.Email,
		&user.Password,
		&role,
		&user.Active,
		&restaurant,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug(ctx, msgUserNotFound, zap.Any("key", arg))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, msgErrQueryUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxQueryUser, err)
	}

	if user.BirthDate, err = time.Parse(dateLayout, birthDate); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxDecodeUser, err)
	}
	if user.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxDecodeUser, err)
	}
	if user.Role, err = identity.ParseRole(role); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxDecodeUser, err)
	}
	if restaurant.Valid {
		id := restaurant.Int64
		user.RestaurantID = &id
	}
	return &user, nil
}

func nullableInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

// uniqueConflict распознает SQLITE_CONSTRAINT_UNIQUE и определяет столбец по тексту ошибки.
func uniqueConflict(err error) error {
	var sqErr *sqlite.Error
	if !errors.As(err, &sqErr) || sqErr.Code() != sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return nil
	}
	if strings.Contains(sqErr.Error(), "users.document") {
		return entities.ErrDocumentAlreadyExists
	}
	return entities.ErrEmailAlreadyRegistered
}
