package repository

import (
	"context"
	"errors"

	"veraz/internal/domain/entity"
)

// ErrClientNotFound is returned when no client matches the lookup.
var ErrClientNotFound = errors.New("client not found")

// ClientRepository defines the persistence operations on debtors.
type ClientRepository interface {
	// FindOrCreate returns the client with the given DNI, inserting it first
	// when absent. An existing client is never overwritten.
	FindOrCreate(ctx context.Context, input entity.ClientInput) (*entity.Client, error)

	// FindByDNIWithDebts returns a client with its whole debt history, newest
	// first, each debt carrying the name of its commerce.
	FindByDNIWithDebts(ctx context.Context, dni string) (*entity.Client, error)

	// ListWithActiveDebtsByCommerce returns the clients holding at least one
	// active debt owned by the commerce. Only that commerce's debts are loaded.
	ListWithActiveDebtsByCommerce(ctx context.Context, commerceID uint) ([]*entity.Client, error)
}
