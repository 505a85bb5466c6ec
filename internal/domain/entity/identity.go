package entity

import domainerrors "veraz/internal/domain/errors"

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID uint
	Role   Role
}

// IsAuthenticated reports whether the identity refers to a signed-in user.
func (i *Identity) IsAuthenticated() bool {
	return i != nil && i.UserID != 0 && i.Role.IsValid()
}

// RequireAdmin fails unless the caller is an administrator.
func (i *Identity) RequireAdmin() error {
	if !i.IsAuthenticated() {
		return domainerrors.ErrUnauthenticated
	}
	if i.Role != RoleAdmin {
		return domainerrors.ErrForbidden
	}

	return nil
}

// RequireCommerce returns the commerce id of the caller, or fails unless the
// caller is a commerce.
func (i *Identity) RequireCommerce() (uint, error) {
	if !i.IsAuthenticated() {
		return 0, domainerrors.ErrUnauthenticated
	}
	if i.Role != RoleCommerce {
		return 0, domainerrors.ErrForbidden
	}

	return i.UserID, nil
}
