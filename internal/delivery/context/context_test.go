package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"veraz/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestIdentity_RoundTrip(t *testing.T) {
	c := newEchoContext()
	assert.Nil(t, GetIdentity(c))

	identity := &entity.Identity{UserID: 9, Role: entity.RoleCommerce}
	SetIdentity(c, identity)

	assert.Equal(t, identity, GetIdentity(c))
	assert.Equal(t, identity, IdentityFromContext(c.Request().Context()))
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()
	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", c.Get(string(KeyRequestID)))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := slog.New(slog.DiscardHandler)
	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}
