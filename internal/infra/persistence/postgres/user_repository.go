package postgres

import (
	"context"

	"veraz/internal/domain/entity"
	domainerrors "veraz/internal/domain/errors"
	"veraz/internal/domain/repository"
	"veraz/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail reads from the primary so a login right after sign-up sees the new account.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOneBy(ctx, "email = ?", email)
}

// FindByCuit retrieves a single user by their tax id.
func (repo *userRepository) FindByCuit(ctx context.Context, cuit string) (*entity.User, error) {
	return repo.findOneBy(ctx, "cuit = ?", cuit)
}

func (repo *userRepository) findOneBy(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where(query, arg).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrapf(err, "failed to find user by %s", query)
	}

	return toUserDomain(&userM), nil
}

// List returns every user ordered by id.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&userModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return translateWriteError(err, writeErrorMapping{
			unique:    domainerrors.ErrUserAlreadyExists,
			operation: "failed to create user",
		})
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update saves every column of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = repo.db.NowFunc()
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{ID: user.ID}).
		Select("email", "name", "password", "cuit", "role", "updated_at").
		Updates(userM)
	if result.Error != nil {
		return translateWriteError(result.Error, writeErrorMapping{
			unique:    domainerrors.ErrConflict,
			operation: "failed to update user",
		})
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes a user. A commerce that still owns debts is kept.
func (repo *userRepository) Delete(ctx context.Context, id uint) error {
	var debts int64
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.DebtModel{}).
		Where("comercio_id = ?", id).
		Count(&debts).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to count user debts")
	}
	if debts > 0 {
		return domainerrors.ErrUserHasDebts
	}

	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, id)
	if result.Error != nil {
		return translateWriteError(result.Error, writeErrorMapping{
			foreignKey: domainerrors.ErrUserHasDebts,
			operation:  "failed to delete user",
		})
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
