package usecase

import (
	"context"

	"veraz/internal/domain/entity"
)

// CreateClientInput defines a standalone client registration.
type CreateClientInput struct {
	DNI       string
	FirstName string
	LastName  string
	Email     *string
	Phone     *string
}

// ClientUsecase defines the debtor lookups.
type ClientUsecase interface {
	// ListClients returns the debtors of the calling commerce.
	ListClients(ctx context.Context, identity *entity.Identity) ([]*entity.Client, error)

	// GetClientByDNI returns the full cross-commerce history of a debtor.
	GetClientByDNI(ctx context.Context, identity *entity.Identity, dni string) (*entity.Client, error)

	// CreateClient validates the input and always refuses: clients only come
	// into existence through debt registration.
	CreateClient(ctx context.Context, identity *entity.Identity, input *CreateClientInput) error
}
