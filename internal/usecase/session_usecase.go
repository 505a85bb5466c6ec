package usecase

import (
	"context"
	"time"

	"veraz/internal/domain/entity"
)

// LoginInput defines the credentials of a login attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput carries the signed session token and the signed-in user.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// SessionUsecase defines credential verification and session lookups.
type SessionUsecase interface {
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	CurrentUser(ctx context.Context, identity *entity.Identity) (*entity.User, error)
}
