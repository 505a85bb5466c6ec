package postgres

import (
	"context"

	"veraz/internal/domain/entity"
	domainerrors "veraz/internal/domain/errors"
	"veraz/internal/domain/repository"
	"veraz/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type debtRepository struct {
	db *gorm.DB
}

// NewDebtRepository is the constructor for debtRepository.
func NewDebtRepository(db *gorm.DB) repository.DebtRepository {
	return &debtRepository{db: db}
}

// Create persists a new debt.
func (repo *debtRepository) Create(ctx context.Context, debt *entity.Debt) error {
	debtM := fromDebtDomain(debt)

	if err := repo.db.WithContext(ctx).Create(debtM).Error; err != nil {
		return translateWriteError(err, writeErrorMapping{
			foreignKey: domainerrors.ErrValidationFailed,
			operation:  "failed to create debt",
		})
	}

	debt.ID = debtM.ID
	debt.Status = entity.DebtStatus(debtM.Status)
	debt.CreatedAt = debtM.CreatedAt
	debt.UpdatedAt = debtM.UpdatedAt

	return nil
}

// FindByIDForUpdate loads a debt with a row lock held until the transaction ends.
func (repo *debtRepository) FindByIDForUpdate(ctx context.Context, id uint) (*entity.Debt, error) {
	var debtM model.DebtModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&debtM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDebtNotFound
		}

		return nil, errors.Wrap(err, "failed to find debt by id")
	}

	return toDebtDomain(&debtM), nil
}

// UpdateStatus sets the status of a debt and refreshes its timestamps.
func (repo *debtRepository) UpdateStatus(ctx context.Context, debt *entity.Debt, status entity.DebtStatus) error {
	now := repo.db.NowFunc()

	result := repo.db.WithContext(ctx).
		Model(&model.DebtModel{}).
		Where("id = ?", debt.ID).
		Updates(map[string]any{
			"status":     status.String(),
			"updated_at": now,
		})
	if result.Error != nil {
		return translateWriteError(result.Error, writeErrorMapping{
			operation: "failed to update debt status",
		})
	}
	if result.RowsAffected == 0 {
		return repository.ErrDebtNotFound
	}

	debt.Status = status
	debt.UpdatedAt = now

	return nil
}
