// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"veraz/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByCuit retrieves a single user by their tax id.
	FindByCuit(ctx context.Context, cuit string) (*entity.User, error)

	// List returns every user ordered by id.
	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user. ID and timestamps are written back.
	Create(ctx context.Context, user *entity.User) error

	// Update saves every column of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user. Commerces that still own debts cannot be removed.
	Delete(ctx context.Context, id uint) error
}
