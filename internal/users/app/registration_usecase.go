package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"plazausers/internal/users/domain/entities"
	"plazausers/internal/users/domain/validation"
	"plazausers/internal/users/ports/api"
	"plazausers/internal/users/ports/repositories"
	svc "plazausers/internal/users/ports/services"
	"plazausers/pkg/identity"
	"plazausers/pkg/logger"
)

const (
	methodCreateOwner    = "CreateOwner"
	methodCreateEmployee = "CreateEmployee"
	methodCreateCustomer = "CreateCustomer"
	methodEnsureAdmin    = "EnsureAdmin"

	msgStartRegistration  = "starting user registration"
	msgValidationFailed   = "user data validation failed"
	msgMissingRestaurant  = "employee without restaurant"
	msgEmailExists        = "email already registered"
	msgDocumentExists     = "document already registered"
	msgUserRegistered     = "user registered successfully"
	msgAdminAlreadyExists = "admin account already present"
	msgAdminEmailNotAdmin = "admin email belongs to a non-admin user"
	msgAdminCreated       = "admin account created"

	msgErrCheckEmail    = "failed to check email uniqueness"
	msgErrCheckDocument = "failed to check document uniqueness"
	msgErrHashPassword  = "failed to hash password"
	msgErrSaveUser      = "failed to save user"
	msgErrFindAdmin     = "failed to load existing admin"

	errCtxValidatingUser   = "validating user"
	errCtxCheckingEmail    = "checking email"
	errCtxCheckingDocument = "checking document"
	errCtxHashingPassword  = "hashing password"
	errCtxSavingUser       = "saving user"
	errCtxLoadingAdmin     = "loading admin"
)

// RegistrationUseCaseImpl реализует api.RegistrationUseCase.
type RegistrationUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	clock       svc.Clock
}

func NewRegistrationUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	clock svc.Clock,
) api.RegistrationUseCase {
	return &RegistrationUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		clock:       clock,
	}
}

// CreateOwner регистрирует владельца ресторана.
func (r *RegistrationUseCaseImpl) CreateOwner(ctx context.Context, user *entities.User) (*entities.User, error) {
	return r.register(ctx, methodCreateOwner, user, identity.RoleOwner)
}

// CreateEmployee регистрирует сотрудника. Ресторан обязателен.
func (r *RegistrationUseCaseImpl) CreateEmployee(ctx context.Context, user *entities.User) (*entities.User, error) {
	return r.register(ctx, methodCreateEmployee, user, identity.RoleEmployee)
}

// CreateCustomer регистрирует клиента.
func (r *RegistrationUseCaseImpl) CreateCustomer(ctx context.Context, user *entities.User) (*entities.User, error) {
	return r.register(ctx, methodCreateCustomer, user, identity.RoleCustomer)
}

// EnsureAdmin создает администратора, если email еще не зарегистрирован.
// Существующая запись возвращается, только если это администратор.
func (r *RegistrationUseCaseImpl) EnsureAdmin(ctx context.Context, admin *entities.User) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodEnsureAdmin), zap.String("email", admin.Email))

	exists, err := r.userRepo.ExistsByEmail(ctx, admin.Email)
	if err != nil {
		log.Error(ctx, msgErrCheckEmail, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingEmail, err)
	}
	if exists {
		existing, err := r.userRepo.FindByEmail(ctx, admin.Email)
		if err != nil {
			log.Error(ctx, msgErrFindAdmin, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxLoadingAdmin, err)
		}
		if existing.Role != identity.RoleAdmin {
			log.Error(ctx, msgAdminEmailNotAdmin,
				zap.Int64("userID", existing.ID),
				zap.String("role", existing.Role.String()))
			return nil, fmt.Errorf("%s: %w", errCtxLoadingAdmin, entities.ErrEmailOwnedByNonAdmin)
		}
		log.Info(ctx, msgAdminAlreadyExists, zap.Int64("userID", existing.ID))
		return existing, nil
	}

	created, err := r.register(ctx, methodEnsureAdmin, admin, identity.RoleAdmin)
	if err != nil {
		return nil, err
	}
	log.Info(ctx, msgAdminCreated, zap.Int64("userID", created.ID))
	return created, nil
}

// register выполняет общий сценарий регистрации. Роль назначается здесь,
// значение из запроса игнорируется. При ошибке ничего не сохраняется.
func (r *RegistrationUseCaseImpl) register(
	ctx context.Context,
	method string,
	input *entities.User,
	role identity.Role,
) (*entities.User, error) {
	log := logger.Log(ctx).With(
		zap.String("method", method),
		zap.String("email", input.Email),
		zap.String("role", role.String()),
	)
	log.Debug(ctx, msgStartRegistration)

	if err := validation.ValidateCommonFields(input, r.clock.Today()); err != nil {
		log.Debug(ctx, msgValidationFailed, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUser, err)
	}
	if role == identity.RoleEmployee && input.RestaurantID == nil {
		log.Debug(ctx, msgMissingRestaurant)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUser, entities.ErrRestaurantRequired)
	}
	if strings.TrimSpace(input.Password) == "" {
		log.Debug(ctx, msgValidationFailed, zap.Error(entities.ErrPasswordRequired))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingUser, entities.ErrPasswordRequired)
	}

	emailTaken, err := r.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		log.Error(ctx, msgErrCheckEmail, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingEmail, err)
	}
	if emailTaken {
		log.Debug(ctx, msgEmailExists)
		return nil, fmt.Errorf("%s: %w", errCtxCheckingEmail, entities.ErrEmailAlreadyRegistered)
	}

	documentTaken, err := r.userRepo.ExistsByDocument(ctx, input.Document)
	if err != nil {
		log.Error(ctx, msgErrCheckDocument, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingDocument, err)
	}
	if documentTaken {
		log.Debug(ctx, msgDocumentExists)
		return nil, fmt.Errorf("%s: %w", errCtxCheckingDocument, entities.ErrDocumentAlreadyExists)
	}

	hash, err := r.passwordSvc.Hash(ctx, input.Password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	user := *input
	user.ID = 0
	user.Password = hash
	user.Role = role
	user.Active = true
	if role != identity.RoleEmployee && role != identity.RoleOwner {
		user.RestaurantID = nil
	}

	saved, err := r.userRepo.Save(ctx, &user)
	if err != nil {
		var de *entities.DomainError
		if errors.As(err, &de) {
			log.Debug(ctx, msgErrSaveUser, zap.Error(err))
		} else {
			log.Error(ctx, msgErrSaveUser, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxSavingUser, err)
	}

	log.Info(ctx, msgUserRegistered, zap.Int64("userID", saved.ID))
	return saved, nil
}
