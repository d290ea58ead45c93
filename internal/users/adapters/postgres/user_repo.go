// Package postgres реализует хранилище пользователей в PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"plazausers/internal/users/domain/entities"
	"plazausers/internal/users/ports/repositories"
	"plazausers/pkg/identity"
	"plazausers/pkg/logger"
)

// Имена уникальных ограничений из миграций.
const (
	ConstraintUniqueEmail    = "uq_users_email"
	ConstraintUniqueDocument = "uq_users_document"

	uniqueViolationCode    = "23505"
	stringTooLongErrorCode = "22001"
)

const (
	msgUserNotFound      = "user not found"
	msgUniqueViolation   = "unique constraint violated"
	msgValueTooLong      = "value exceeds column length"
	msgErrQueryUser      = "error querying user"
	msgErrCheckExistence = "error checking user existence"
	msgErrInsertUser     = "error inserting user"
	msgUserSaved         = "user saved"
	errCtxQueryUser      = "error querying user"
	errCtxCheckExistence = "error checking user existence"
	errCtxInsertUser     = "error inserting user"
	errCtxDecodeUserRole = "error decoding user role"
)

const userColumns = `id, first_name, last_name, document, phone, birth_date, email,
        password_hash, role, active, restaurant_id, created_at`

type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// UserRepository реализует repositories.UserRepository.
type UserRepository struct {
	pool PgxPoolInterface
}

func NewUserRepository(pool PgxPoolInterface) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "ExistsByEmail", `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
}

func (r *UserRepository) ExistsByDocument(ctx context.Context, document string) (bool, error) {
	return r.exists(ctx, "ExistsByDocument", `SELECT EXISTS(SELECT 1 FROM users WHERE document = $1)`, document)
}

func (r *UserRepository) exists(ctx context.Context, method, query string, arg string) (bool, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", method))

	var found bool
	if err := r.pool.QueryRow(ctx, query, arg).Scan(&found); err != nil {
		log.Error(ctx, msgErrCheckExistence, zap.Error(err))
		return false, fmt.Errorf("%s: %w", errCtxCheckExistence, err)
	}
	return found, nil
}

// Save вставляет пользователя. Нарушение уникальности email или документа
// возвращается как соответствующая ошибка конфликта.
func (r *UserRepository) Save(ctx context.Context, user *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Save"))

	query := `
        INSERT INTO users (first_name, last_name, document, phone, birth_date, email,
                           password_hash, role, active, restaurant_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at
    `

	saved := *user
	err := r.pool.QueryRow(ctx, query,
		user.FirstName,
		user.LastName,
		user.Document,
		user.Phone,
		user.BirthDate,
		user.Email,
		user.Password,
		user.Role.String(),
		user.Active,
		user.RestaurantID,
	).Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		if conflict := uniqueConflict(err); conflict != nil {
			log.Debug(ctx, msgUniqueViolation, zap.Error(err))
			return nil, conflict
		}
		if isStringTooLong(err) {
			log.Debug(ctx, msgValueTooLong, zap.Error(err))
			return nil, entities.ErrValueTooLong
		}
		log.Error(ctx, msgErrInsertUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxInsertUser, err)
	}

	log.Debug(ctx, msgUserSaved, zap.Int64("userID", saved.ID))
	return &saved, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "FindByEmail", `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	return r.findOne(ctx, "FindByID", `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) findOne(ctx context.Context, method, query string, arg any) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", method))

	var (
		user entities.User
		role string
	)
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Document,
		&user.Phone,
		&user.BirthDate,
		&user.Email,
		&user.Password,
		&role,
		&user.Active,
		&user.RestaurantID,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, msgUserNotFound, zap.Any("key", arg))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, msgErrQueryUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxQueryUser, err)
	}

	user.Role, err = identity.ParseRole(role)
	if err != nil {
		log.Error(ctx, msgErrQueryUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxDecodeUserRole, err)
	}
	return &user, nil
}

// uniqueConflict сопоставляет нарушение уникальности с доменной ошибкой.
func uniqueConflict(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return nil
	}
	switch pgErr.ConstraintName {
	case ConstraintUniqueDocument:
		return entities.ErrDocumentAlreadyExists
	default:
		return entities.ErrEmailAlreadyRegistered
	}
}

func isStringTooLong(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == stringTooLongErrorCode
}
