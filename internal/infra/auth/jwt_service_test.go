package auth

import (
	"testing"
	"time"

	"veraz/config"
	"veraz/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{SessionTTL: ttl}}
	cfg.SecretKey.Session = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_session_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, err := svc.GenerateToken(42, entity.RoleCommerce)
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)

	identity, err := svc.ValidateToken(token.Token)
	require.NoError(t, err)
	assert.Equal(t, &entity.Identity{UserID: 42, Role: entity.RoleCommerce}, identity)
	assert.Equal(t, time.Hour, svc.TokenTTL())
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", time.Hour))
	assert.Error(t, err)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret", 0))
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, svc.TokenTTL())
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret-a", time.Hour))
	require.NoError(t, err)

	_, err = svc.ValidateToken("invalid.token.string")
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("secret-a", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret-b", time.Hour))
	require.NoError(t, err)

	token, err := issuer.GenerateToken(1, entity.RoleAdmin)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token.Token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret", time.Minute))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := impl.GenerateToken(1, entity.RoleAdmin)
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateToken(token.Token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsUnknownRole(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret", time.Hour))
	require.NoError(t, err)

	token, err := svc.GenerateToken(1, entity.Role("SUPERUSER"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token.Token)
	assert.Error(t, err)
}

func TestJWTService_RejectsOtherSigningMethod(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret", time.Hour))
	require.NoError(t, err)

	claims := jwt.MapClaims{"sub": "1", "role": "ADMIN", "iss": tokenIssuer, "exp": time.Now().Add(time.Hour).Unix()}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(unsigned)
	assert.Error(t, err)
}
