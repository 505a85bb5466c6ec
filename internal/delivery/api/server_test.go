package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"veraz/config"
	apimiddleware "veraz/internal/delivery/api/middleware"
	"veraz/internal/delivery/api/router"
	"veraz/internal/delivery/api/router/handler"
	deliverycontext "veraz/internal/delivery/context"
	"veraz/internal/delivery/middleware"
	"veraz/internal/infra/auth"
	"veraz/internal/infra/persistence/postgres"
	"veraz/internal/testutil"
	"veraz/internal/usecase"
	"veraz/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminEmail    = "admin@veraz.com"
	adminPassword = "admin-secret"
)

type testServer struct {
	echo *echo.Echo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4, SessionTTL: time.Hour},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Session = "test-session-secret"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db := testutil.NewSQLiteDB(t)

	userRepo := postgres.NewUserRepository(db)
	txManager := postgres.NewTransactionManager(db)
	hasher := auth.NewBcryptHasher(cfg)
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userUC := impl.NewUserService(txManager, userRepo, hasher, logger)
	sessionUC := impl.NewSessionService(userRepo, hasher, tokenService, logger)
	clientUC := impl.NewClientService(postgres.NewClientRepository(db), logger)
	debtUC := impl.NewDebtService(txManager, logger)

	_, err = userUC.BootstrapAdmin(context.Background(), &usecase.BootstrapAdminInput{
		Email:    adminEmail,
		Name:     "Administrador",
		Password: adminPassword,
	})
	require.NoError(t, err)

	metrics := middleware.NewMetricsMiddleware(cfg)
	routes := router.NewRouter(router.RouterParams{
		SessionHandler:    handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: sessionUC, Config: cfg, Logger: logger}),
		UserHandler:       handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, Logger: logger}),
		ClientHandler:     handler.NewClientHandler(handler.ClientHandlerParams{ClientUC: clientUC, Logger: logger}),
		DebtHandler:       handler.NewDebtHandler(handler.DebtHandlerParams{DebtUC: debtUC, Logger: logger}),
		HealthHandler:     handler.NewHealthHandler(db),
		AuthMiddleware:    apimiddleware.NewAuthMiddleware(tokenService),
		MetricsMiddleware: metrics,
	})

	return &testServer{echo: NewEcho(cfg, logger, metrics, routes)}
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func (s *testServer) login(t *testing.T, email, password string) string {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/auth/login", map[string]string{"email": email, "password": password}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		Token string `json:"token"`
	}
	decode(t, rec, &out)
	require.NotEmpty(t, out.Token)

	return out.Token
}

func (s *testServer) createCommerce(t *testing.T, adminToken, email, password string) uint {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/users", map[string]any{
		"email":    email,
		"name":     "Comercio " + email,
		"password": password,
		"role":     "COMERCIO",
	}, adminToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out struct {
		ID uint `json:"id"`
	}
	decode(t, rec, &out)

	return out.ID
}

func (s *testServer) createDebt(t *testing.T, token, dni, amount string) map[string]any {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/debts", map[string]any{
		"dni":         dni,
		"firstName":   "Ana",
		"lastName":    "Gómez",
		"amount":      amount,
		"description": "Compra de mercadería",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out map[string]any
	decode(t, rec, &out)

	return out
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var out struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	decode(t, rec, &out)
	assert.NotEmpty(t, out.Error)

	return out.Code
}

func TestAPI_HealthAndRequestID(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/health", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestAPI_Metrics(t *testing.T) {
	srv := newTestServer(t)

	srv.do(t, http.MethodGet, "/api/users", nil, "")
	rec := srv.do(t, http.MethodGet, "/metrics", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `veraz_http_requests_total{method="GET",route="/api/users",status="401"} 1`)
}

func TestAPI_UnauthenticatedUsersList(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/api/users", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", errorCode(t, rec))

	rec = srv.do(t, http.MethodGet, "/api/users", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPI_LoginAndSessionCookie(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/auth/login", map[string]string{"email": adminEmail, "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, rec))

	rec = srv.do(t, http.MethodPost, "/api/auth/login", map[string]string{"email": adminEmail}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/auth/login", map[string]string{"email": adminEmail, "password": adminPassword}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, apimiddleware.SessionCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(cookies[0])
	me := httptest.NewRecorder()
	srv.echo.ServeHTTP(me, req)

	require.Equal(t, http.StatusOK, me.Code, me.Body.String())
	var user map[string]any
	decode(t, me, &user)
	assert.Equal(t, adminEmail, user["email"])
	assert.Equal(t, "ADMIN", user["role"])

	rec = srv.do(t, http.MethodPost, "/api/auth/logout", nil, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), apimiddleware.SessionCookieName+"=;")
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
}

func TestAPI_UserManagement(t *testing.T) {
	srv := newTestServer(t)
	adminToken := srv.login(t, adminEmail, adminPassword)

	commerceID := srv.createCommerce(t, adminToken, "c1@veraz.com", "c1-secret")

	// The new account can sign in with its password and no other.
	commerceToken := srv.login(t, "c1@veraz.com", "c1-secret")
	rec := srv.do(t, http.MethodPost, "/api/auth/login", map[string]string{"email": "c1@veraz.com", "password": "other"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/users", map[string]any{
		"email": "c1@veraz.com", "name": "Otro", "password": "x", "role": "COMERCIO",
	}, adminToken)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", errorCode(t, rec))

	rec = srv.do(t, http.MethodPost, "/api/users", map[string]any{
		"email": "c2@veraz.com", "name": "Otro", "password": "x", "role": "SUPER",
	}, adminToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/users", map[string]any{
		"email": "c3@veraz.com", "name": "Otro", "password": strings.Repeat("ñ", 72), "role": "COMERCIO",
	}, adminToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))

	rec = srv.do(t, http.MethodGet, "/api/users", nil, commerceToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/users", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	var users []map[string]any
	decode(t, rec, &users)
	require.Len(t, users, 2)
	assert.NotContains(t, rec.Body.String(), "password")

	path := fmt.Sprintf("/api/users/%d", commerceID)
	rec = srv.do(t, http.MethodPut, path, map[string]any{"name": "Comercio Renombrado", "password": "new-secret"}, adminToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated map[string]any
	decode(t, rec, &updated)
	assert.Equal(t, "Comercio Renombrado", updated["name"])
	srv.login(t, "c1@veraz.com", "new-secret")

	rec = srv.do(t, http.MethodGet, "/api/users/abc", nil, adminToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/users/9999", nil, adminToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, http.MethodDelete, path, nil, adminToken)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = srv.do(t, http.MethodDelete, path, nil, adminToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_DeleteCommerceWithDebts(t *testing.T) {
	srv := newTestServer(t)
	adminToken := srv.login(t, adminEmail, adminPassword)

	commerceID := srv.createCommerce(t, adminToken, "c1@veraz.com", "c1-secret")
	srv.createDebt(t, srv.login(t, "c1@veraz.com", "c1-secret"), "30111222", "10")

	rec := srv.do(t, http.MethodDelete, fmt.Sprintf("/api/users/%d", commerceID), nil, adminToken)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_HAS_DEBTS", errorCode(t, rec))
}

func TestAPI_DebtLifecycle(t *testing.T) {
	srv := newTestServer(t)
	adminToken := srv.login(t, adminEmail, adminPassword)
	srv.createCommerce(t, adminToken, "c1@veraz.com", "c1-secret")
	token := srv.login(t, "c1@veraz.com", "c1-secret")

	debt := srv.createDebt(t, token, "30111222", "1500.50")
	assert.Equal(t, "PENDING", debt["status"])
	assert.InDelta(t, 1500.50, debt["amount"], 0.001)

	rec := srv.do(t, http.MethodPut, fmt.Sprintf("/api/debts/%v", debt["id"]), map[string]string{"status": "PAID"}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var paid map[string]any
	decode(t, rec, &paid)
	assert.Equal(t, "PAID", paid["status"])

	// Only PAID debts left: the client drops out of the list.
	rec = srv.do(t, http.MethodGet, "/api/clients", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	srv.createDebt(t, token, "30111222", "200")

	rec = srv.do(t, http.MethodGet, "/api/clients", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	var clients []map[string]any
	decode(t, rec, &clients)
	require.Len(t, clients, 1)
	assert.Equal(t, "30111222", clients[0]["dni"])
	assert.InDelta(t, 200, clients[0]["totalDebt"], 0.001)
	assert.InDelta(t, 1, clients[0]["activeDebts"], 0)
	assert.Len(t, clients[0]["debts"], 2)

	rec = srv.do(t, http.MethodPut, fmt.Sprintf("/api/debts/%v", debt["id"]), map[string]string{"status": "CANCELLED"}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_DEBT_STATUS", errorCode(t, rec))

	rec = srv.do(t, http.MethodPut, "/api/debts/abc", map[string]string{"status": "PAID"}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPut, "/api/debts/424242", map[string]string{"status": "PAID"}, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_DebtValidation(t *testing.T) {
	srv := newTestServer(t)
	adminToken := srv.login(t, adminEmail, adminPassword)
	srv.createCommerce(t, adminToken, "c1@veraz.com", "c1-secret")
	token := srv.login(t, "c1@veraz.com", "c1-secret")

	rec := srv.do(t, http.MethodPost, "/api/debts", map[string]any{
		"dni": "1", "firstName": "Ana", "lastName": "Gómez", "amount": -5, "description": "x",
	}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_AMOUNT", errorCode(t, rec))

	rec = srv.do(t, http.MethodPost, "/api/debts", map[string]any{
		"dni": "1", "firstName": "Ana", "lastName": "Gómez", "amount": "1000000000000", "description": "x",
	}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_AMOUNT", errorCode(t, rec))

	rec = srv.do(t, http.MethodPost, "/api/debts", map[string]any{
		"dni": "1", "firstName": "Ana", "amount": 5, "description": "x",
	}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))

	rec = srv.do(t, http.MethodPost, "/api/debts", map[string]any{
		"dni": "1", "firstName": "Ana", "lastName": "Gómez", "amount": "mucho", "description": "x",
	}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/debts", map[string]any{
		"dni": "1", "firstName": "Ana", "lastName": "Gómez", "amount": 5, "description": "x",
	}, adminToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAPI_DebtOwnership(t *testing.T) {
	srv := newTestServer(t)
	adminToken := srv.login(t, adminEmail, adminPassword)
	srv.createCommerce(t, adminToken, "c1@veraz.com", "c1-secret")
	srv.createCommerce(t, adminToken, "c2@veraz.com", "c2-secret")
	c1 := srv.login(t, "c1@veraz.com", "c1-secret")
	c2 := srv.login(t, "c2@veraz.com", "c2-secret")

	debt := srv.createDebt(t, c1, "30111222", "100")

	rec := srv.do(t, http.MethodPut, fmt.Sprintf("/api/debts/%v", debt["id"]), map[string]string{"status": "PAID"}, c2)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "DEBT_OWNERSHIP_VIOLATION", errorCode(t, rec))

	// C2 does not see C1's debtor.
	rec = srv.do(t, http.MethodGet, "/api/clients", nil, c2)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	// The history lookup is shared and still shows the debt as PENDING.
	rec = srv.do(t, http.MethodGet, "/api/clients/30111222", nil, c2)
	require.Equal(t, http.StatusOK, rec.Code)
	var client struct {
		ActiveDebts int `json:"activeDebts"`
		Debts       []struct {
			Status   string `json:"status"`
			Comercio struct {
				Name string `json:"name"`
			} `json:"comercio"`
		} `json:"debts"`
	}
	decode(t, rec, &client)
	require.Len(t, client.Debts, 1)
	assert.Equal(t, "PENDING", client.Debts[0].Status)
	assert.Equal(t, "Comercio c1@veraz.com", client.Debts[0].Comercio.Name)
	assert.Equal(t, 1, client.ActiveDebts)
}

func TestAPI_ClientLookups(t *testing.T) {
	srv := newTestServer(t)
	adminToken := srv.login(t, adminEmail, adminPassword)
	srv.createCommerce(t, adminToken, "c1@veraz.com", "c1-secret")
	token := srv.login(t, "c1@veraz.com", "c1-secret")

	rec := srv.do(t, http.MethodGet, "/api/clients/999999999", nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CLIENT_NOT_FOUND", errorCode(t, rec))

	rec = srv.do(t, http.MethodGet, "/api/clients/999999999", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/clients", nil, adminToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/clients", map[string]string{"dni": "1"}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/clients", map[string]string{"dni": "1", "firstName": "Ana", "lastName": "Gómez"}, token)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "CLIENT_CREATION_NOT_ALLOWED", errorCode(t, rec))
}
