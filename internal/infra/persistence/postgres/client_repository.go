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
	"gorm.io/plugin/dbresolver"
)

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository is the constructor for clientRepository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

// FindOrCreate inserts the client unless the DNI is taken, then reads the stored row.
// Concurrent callers with the same DNI converge on a single row through the unique index.
func (repo *clientRepository) FindOrCreate(ctx context.Context, input entity.ClientInput) (*entity.Client, error) {
	clientM := &model.ClientModel{
		DNI:       input.DNI,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "dni"}},
			DoNothing: true,
		}).
		Create(clientM).Error
	if err != nil {
		return nil, translateWriteError(err, writeErrorMapping{
			unique:    domainerrors.ErrClientAlreadyExists,
			operation: "failed to register client",
		})
	}

	var stored model.ClientModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("dni = ?", input.DNI).
		First(&stored).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to read registered client")
	}

	return toClientDomain(&stored), nil
}

// FindByDNIWithDebts loads the cross-commerce history of a client.
func (repo *clientRepository) FindByDNIWithDebts(ctx context.Context, dni string) (*entity.Client, error) {
	var clientM model.ClientModel
	err := repo.db.WithContext(ctx).
		Preload("Debts", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Order("id DESC")
		}).
		Preload("Debts.Comercio", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Where("dni = ?", dni).
		First(&clientM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by dni")
	}

	return toClientDomain(&clientM), nil
}

// ListWithActiveDebtsByCommerce returns the debtors of a commerce with its debts only.
func (repo *clientRepository) ListWithActiveDebtsByCommerce(ctx context.Context, commerceID uint) ([]*entity.Client, error) {
	activeStatuses := []string{
		entity.DebtStatusPending.String(),
		entity.DebtStatusPartial.String(),
	}

	var clientModels []*model.ClientModel
	err := repo.db.WithContext(ctx).
		Where(
			"EXISTS (SELECT 1 FROM debts WHERE debts.client_id = clients.id AND debts.comercio_id = ? AND debts.status IN ?)",
			commerceID, activeStatuses,
		).
		Preload("Debts", func(db *gorm.DB) *gorm.DB {
			return db.Where("comercio_id = ?", commerceID).Order("created_at DESC").Order("id DESC")
		}).
		Order("clients.id ASC").
		Find(&clientModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list clients")
	}

	clients := make([]*entity.Client, 0, len(clientModels))
	for _, clientM := range clientModels {
		clients = append(clients, toClientDomain(clientM))
	}

	return clients, nil
}
