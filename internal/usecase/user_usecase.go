// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"veraz/internal/domain/entity"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to create an account.
type CreateUserInput struct {
	Email    string
	Name     string
	Password string
	Role     entity.Role
	Cuit     *string
}

// BootstrapAdminInput defines the first administrator account.
type BootstrapAdminInput struct {
	Email    string
	Name     string
	Password string
}

// --- Output DTOs ---

// BootstrapAdminOutput reports the administrator account and whether it was just created.
type BootstrapAdminOutput struct {
	User    *entity.User
	Created bool
}

// UserUsecase defines the administrator operations on accounts.
// Every method except BootstrapAdmin requires an ADMIN identity.
type UserUsecase interface {
	ListUsers(ctx context.Context, identity *entity.Identity) ([]*entity.User, error)
	GetUser(ctx context.Context, identity *entity.Identity, id uint) (*entity.User, error)
	CreateUser(ctx context.Context, identity *entity.Identity, input *CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, identity *entity.Identity, id uint, update entity.UserUpdate) (*entity.User, error)
	DeleteUser(ctx context.Context, identity *entity.Identity, id uint) error

	// BootstrapAdmin creates the administrator unless the email is already registered.
	BootstrapAdmin(ctx context.Context, input *BootstrapAdminInput) (*BootstrapAdminOutput, error)
}
