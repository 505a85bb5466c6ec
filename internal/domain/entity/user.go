// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// MaxPasswordBytes is the longest password bcrypt can hash. The limit is in bytes, not characters.
const MaxPasswordBytes = 72

// User is an account that can sign in: an administrator or a commerce.
type User struct {
	ID           uint      `json:"id"`             // Auto-incremented identifier.
	Email        string    `json:"email"`          // Login identifier, unique across users.
	Name         string    `json:"name"`           // Display name (the commerce name for commerces).
	PasswordHash string    `json:"-"`              // bcrypt hash. Never serialized.
	Cuit         *string   `json:"cuit,omitempty"` // Argentine tax id of a commerce. Unique when present.
	Role         Role      `json:"role"`           // ADMIN or COMERCIO.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsCommerce reports whether the user operates as a commerce.
func (u *User) IsCommerce() bool {
	return u != nil && u.Role == RoleCommerce
}

// Identity returns the authorization identity of the user.
func (u *User) Identity() *Identity {
	if u == nil {
		return nil
	}

	return &Identity{UserID: u.ID, Role: u.Role}
}

// UserUpdate carries the optional fields of a user update.
// A nil field is left untouched.
type UserUpdate struct {
	Email    *string
	Name     *string
	Password *string
	Role     *Role
	Cuit     *string
}

// IsEmpty reports whether the update carries no field at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.Name == nil && u.Password == nil && u.Role == nil && u.Cuit == nil
}
