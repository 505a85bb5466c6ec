package entity

import (
	"testing"

	domainerrors "veraz/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity_RequireAdmin(t *testing.T) {
	tests := []struct {
		name     string
		identity *Identity
		wantErr  error
	}{
		{name: "nil identity", identity: nil, wantErr: domainerrors.ErrUnauthenticated},
		{name: "zero identity", identity: &Identity{}, wantErr: domainerrors.ErrUnauthenticated},
		{name: "unknown role", identity: &Identity{UserID: 1, Role: Role("GUEST")}, wantErr: domainerrors.ErrUnauthenticated},
		{name: "commerce", identity: &Identity{UserID: 2, Role: RoleCommerce}, wantErr: domainerrors.ErrForbidden},
		{name: "admin", identity: &Identity{UserID: 1, Role: RoleAdmin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.identity.RequireAdmin()
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIdentity_RequireCommerce(t *testing.T) {
	id, err := (&Identity{UserID: 7, Role: RoleCommerce}).RequireCommerce()
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)

	_, err = (&Identity{UserID: 1, Role: RoleAdmin}).RequireCommerce()
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	var nilIdentity *Identity
	_, err = nilIdentity.RequireCommerce()
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestUser_Identity(t *testing.T) {
	user := &User{ID: 3, Role: RoleCommerce}
	assert.Equal(t, &Identity{UserID: 3, Role: RoleCommerce}, user.Identity())
	assert.True(t, user.IsCommerce())

	var nilUser *User
	assert.Nil(t, nilUser.Identity())
	assert.False(t, nilUser.IsCommerce())
}

func TestUserUpdate_IsEmpty(t *testing.T) {
	assert.True(t, UserUpdate{}.IsEmpty())

	name := "Nuevo"
	assert.False(t, UserUpdate{Name: &name}.IsEmpty())
}
