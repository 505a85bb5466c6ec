// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "veraz/internal/delivery/context"
	"veraz/internal/domain/entity"
	domainerrors "veraz/internal/domain/errors"
	"veraz/internal/domain/repository"
	"veraz/internal/domain/service"
	"veraz/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every account ordered by id.
func (srv *userService) ListUsers(ctx context.Context, identity *entity.Identity) ([]*entity.User, error) {
	if err := identity.RequireAdmin(); err != nil {
		return nil, err
	}

	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser returns a single account.
func (srv *userService) GetUser(ctx context.Context, identity *entity.Identity, id uint) (*entity.User, error) {
	if err := identity.RequireAdmin(); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapUserLookupError(err)
	}

	return user, nil
}

// CreateUser registers a new account with a hashed password.
func (srv *userService) CreateUser(ctx context.Context, identity *entity.Identity, input *usecase.CreateUserInput) (*entity.User, error) {
	if err := identity.RequireAdmin(); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(input.Email)
	name := strings.TrimSpace(input.Name)
	if email == "" || name == "" || input.Password == "" || input.Role == "" {
		return nil, domainerrors.ErrValidationFailed
	}
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Rol no válido")
	}
	if err := checkPasswordLength(input.Password); err != nil {
		return nil, err
	}
	cuit := normalizeOptional(input.Cuit)

	if err := srv.ensureEmailAvailable(ctx, srv.userRepo, email, 0); err != nil {
		return nil, err
	}
	if err := srv.ensureCuitAvailable(ctx, srv.userRepo, cuit, 0); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Cuit:         cuit,
		Role:         input.Role,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created",
		slog.Uint64("user_id", uint64(user.ID)),
		slog.String("role", user.Role.String()),
		slog.Uint64("created_by", uint64(identity.UserID)),
	)

	return user, nil
}

// UpdateUser applies the supplied fields to an account. A supplied password is re-hashed.
func (srv *userService) UpdateUser(ctx context.Context, identity *entity.Identity, id uint, update entity.UserUpdate) (*entity.User, error) {
	if err := identity.RequireAdmin(); err != nil {
		return nil, err
	}
	if err := validateUserUpdate(update); err != nil {
		return nil, err
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			return mapUserLookupError(err)
		}

		if update.Email != nil {
			email := strings.TrimSpace(*update.Email)
			if email != user.Email {
				if err := srv.ensureEmailAvailable(ctx, userRepo, email, user.ID); err != nil {
					return err
				}
			}
			user.Email = email
		}
		if update.Name != nil {
			user.Name = strings.TrimSpace(*update.Name)
		}
		if update.Role != nil {
			user.Role = *update.Role
		}
		if update.Cuit != nil {
			cuit := normalizeOptional(update.Cuit)
			if err := srv.ensureCuitAvailable(ctx, userRepo, cuit, user.ID); err != nil {
				return err
			}
			user.Cuit = cuit
		}
		if update.Password != nil && *update.Password != "" {
			hash, err := srv.hasher.Hash(*update.Password)
			if err != nil {
				return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
			}
			user.PasswordHash = hash
		}

		if err := userRepo.Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to update user")
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User updated", slog.Uint64("user_id", uint64(id)))

	return updated, nil
}

// DeleteUser removes an account. Commerces that still own debts are kept.
func (srv *userService) DeleteUser(ctx context.Context, identity *entity.Identity, id uint) error {
	if err := identity.RequireAdmin(); err != nil {
		return err
	}

	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Uint64("user_id", uint64(id)))

	return nil
}

// BootstrapAdmin creates the first administrator. Running it again is a no-op.
func (srv *userService) BootstrapAdmin(ctx context.Context, input *usecase.BootstrapAdminInput) (*usecase.BootstrapAdminOutput, error) {
	email := strings.TrimSpace(input.Email)
	name := strings.TrimSpace(input.Name)
	if email == "" || name == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Email, nombre y contraseña del administrador son requeridos")
	}
	if err := checkPasswordLength(input.Password); err != nil {
		return nil, err
	}

	existing, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		srv.log(ctx).Info("Administrator already exists", slog.String("email", email))

		return &usecase.BootstrapAdminOutput{User: existing, Created: false}, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up administrator")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	admin := &entity.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
	}
	if err := srv.userRepo.Create(ctx, admin); err != nil {
		return nil, errors.Wrap(err, "failed to create administrator")
	}

	srv.log(ctx).Info("Administrator created", slog.String("email", admin.Email))

	return &usecase.BootstrapAdminOutput{User: admin, Created: true}, nil
}

// ensureEmailAvailable fails when another account than selfID owns the email.
func (srv *userService) ensureEmailAvailable(ctx context.Context, userRepo repository.UserRepository, email string, selfID uint) error {
	existing, err := userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to check email availability")
	}
	if existing.ID != selfID {
		return domainerrors.ErrUserAlreadyExists
	}

	return nil
}

// ensureCuitAvailable fails when another account than selfID owns the tax id.
func (srv *userService) ensureCuitAvailable(ctx context.Context, userRepo repository.UserRepository, cuit *string, selfID uint) error {
	if cuit == nil {
		return nil
	}

	existing, err := userRepo.FindByCuit(ctx, *cuit)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to check cuit availability")
	}
	if existing.ID != selfID {
		return domainerrors.ErrCuitAlreadyExists
	}

	return nil
}

func validateUserUpdate(update entity.UserUpdate) error {
	if update.Email != nil && strings.TrimSpace(*update.Email) == "" {
		return domainerrors.ErrValidationFailed.WithMessage("El email no puede estar vacío")
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return domainerrors.ErrValidationFailed.WithMessage("El nombre no puede estar vacío")
	}
	if update.Role != nil && !update.Role.IsValid() {
		return domainerrors.ErrValidationFailed.WithMessage("Rol no válido")
	}
	if update.Password != nil {
		return checkPasswordLength(*update.Password)
	}

	return nil
}

// checkPasswordLength rejects passwords too long for the hasher.
func checkPasswordLength(password string) error {
	if len(password) > entity.MaxPasswordBytes {
		return domainerrors.ErrValidationFailed.WithMessage("La contraseña no puede superar 72 bytes")
	}

	return nil
}

func mapUserLookupError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}

	return errors.Wrap(err, "failed to find user")
}

// normalizeOptional maps blank optional strings to nil.
func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
