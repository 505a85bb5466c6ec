package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "veraz/internal/delivery/context"
	"veraz/internal/domain/entity"
	domainerrors "veraz/internal/domain/errors"
	"veraz/internal/domain/repository"
	"veraz/internal/usecase"

	"github.com/pkg/errors"
)

// clientService implements the ClientUsecase interface.
type clientService struct {
	clientRepo repository.ClientRepository
	logger     *slog.Logger
}

// NewClientService is the constructor for clientService.
func NewClientService(clientRepo repository.ClientRepository, logger *slog.Logger) usecase.ClientUsecase {
	return &clientService{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (srv *clientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListClients returns the clients with active debts at the calling commerce,
// totals computed over that commerce's debts only.
func (srv *clientService) ListClients(ctx context.Context, identity *entity.Identity) ([]*entity.Client, error) {
	commerceID, err := identity.RequireCommerce()
	if err != nil {
		return nil, err
	}

	clients, err := srv.clientRepo.ListWithActiveDebtsByCommerce(ctx, commerceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clients")
	}

	for _, client := range clients {
		client.Summarize()
	}

	srv.log(ctx).Debug("Listed clients", slog.Uint64("commerce_id", uint64(commerceID)), slog.Int("count", len(clients)))

	return clients, nil
}

// GetClientByDNI returns the cross-commerce history of a client. Any signed-in role may look it up.
func (srv *clientService) GetClientByDNI(ctx context.Context, identity *entity.Identity, dni string) (*entity.Client, error) {
	if !identity.IsAuthenticated() {
		return nil, domainerrors.ErrUnauthenticated
	}

	dni = strings.TrimSpace(dni)
	if dni == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("El DNI es requerido")
	}

	client, err := srv.clientRepo.FindByDNIWithDebts(ctx, dni)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return nil, domainerrors.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client")
	}

	client.Summarize()

	return client, nil
}

// CreateClient validates the input, then refuses the operation.
func (srv *clientService) CreateClient(ctx context.Context, identity *entity.Identity, input *usecase.CreateClientInput) error {
	if _, err := identity.RequireCommerce(); err != nil {
		return err
	}

	if strings.TrimSpace(input.DNI) == "" ||
		strings.TrimSpace(input.FirstName) == "" ||
		strings.TrimSpace(input.LastName) == "" {
		return domainerrors.ErrValidationFailed.WithMessage("DNI, nombre y apellido son requeridos")
	}

	return domainerrors.ErrClientCreationNotAllowed
}
