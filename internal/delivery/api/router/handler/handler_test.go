package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"veraz/config"
	"veraz/internal/delivery/api/validator"
	deliverycontext "veraz/internal/delivery/context"
	"veraz/internal/domain/entity"
	domainerrors "veraz/internal/domain/errors"
	mockUC "veraz/internal/mocks/usecase"
	"veraz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testAdmin    = &entity.Identity{UserID: 1, Role: entity.RoleAdmin}
	testCommerce = &entity.Identity{UserID: 2, Role: entity.RoleCommerce}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newContext builds a request context as the router would after authentication.
func newContext(method, body string, caller *entity.Identity, params map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/", reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for name, value := range params {
		c.SetParamNames(append(c.ParamNames(), name)...)
		c.SetParamValues(append(c.ParamValues(), value)...)
	}
	if caller != nil {
		deliverycontext.SetIdentity(c, caller)
	}

	return c, rec
}

func TestDebtHandler_CreateDebt(t *testing.T) {
	t.Run("maps the body", func(t *testing.T) {
		debtUC := mockUC.NewMockDebtUsecase(t)
		h := NewDebtHandler(DebtHandlerParams{DebtUC: debtUC, Logger: discardLogger()})

		created := &entity.Debt{ID: 5, Amount: decimal.RequireFromString("99.90"), Status: entity.DebtStatusPending}
		debtUC.EXPECT().
			CreateDebt(mock.Anything, testCommerce, mock.MatchedBy(func(in *usecase.CreateDebtInput) bool {
				return in.DNI == "30111222" && in.LastName == "Gómez" &&
					in.Amount != nil && in.Amount.Equal(decimal.RequireFromString("99.9")) &&
					in.Email == nil && in.Phone != nil && *in.Phone == "1155550000"
			})).
			Return(created, nil).Once()

		c, rec := newContext(http.MethodPost,
			`{"dni":"30111222","firstName":"Ana","lastName":"Gómez","phone":"1155550000","amount":"99.9","description":"Fiado"}`,
			testCommerce, nil)

		require.NoError(t, h.CreateDebt(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "PENDING", body["status"])
	})

	t.Run("malformed body", func(t *testing.T) {
		debtUC := mockUC.NewMockDebtUsecase(t)
		h := NewDebtHandler(DebtHandlerParams{DebtUC: debtUC, Logger: discardLogger()})

		c, _ := newContext(http.MethodPost, `{"amount":`, testCommerce, nil)

		err := h.CreateDebt(c)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("too long dni", func(t *testing.T) {
		debtUC := mockUC.NewMockDebtUsecase(t)
		h := NewDebtHandler(DebtHandlerParams{DebtUC: debtUC, Logger: discardLogger()})

		c, _ := newContext(http.MethodPost, `{"dni":"`+strings.Repeat("9", 21)+`","amount":1}`, testCommerce, nil)

		err := h.CreateDebt(c)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestDebtHandler_UpdateDebtStatus(t *testing.T) {
	debtUC := mockUC.NewMockDebtUsecase(t)
	h := NewDebtHandler(DebtHandlerParams{DebtUC: debtUC, Logger: discardLogger()})

	debtUC.EXPECT().
		UpdateDebtStatus(mock.Anything, testCommerce, &usecase.UpdateDebtStatusInput{DebtID: "abc", Status: "PAID"}).
		Return(nil, domainerrors.ErrInvalidID).Once()

	c, _ := newContext(http.MethodPut, `{"status":"PAID"}`, testCommerce, map[string]string{"id": "abc"})

	err := h.UpdateDebtStatus(c)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidID))
}

func TestUserHandler_UpdateUser(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: discardLogger()})

	role := entity.RoleCommerce
	name := "Kiosco Centro"
	userUC.EXPECT().
		UpdateUser(mock.Anything, testAdmin, uint(4), entity.UserUpdate{Name: &name, Role: &role}).
		Return(&entity.User{ID: 4, Name: name, Role: role}, nil).Once()

	c, rec := newContext(http.MethodPut, `{"name":"Kiosco Centro","role":"COMERCIO"}`, testAdmin, map[string]string{"id": "4"})

	require.NoError(t, h.UpdateUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Kiosco Centro"`)
}

func TestUserHandler_InvalidPathID(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: discardLogger()})

	for _, id := range []string{"abc", "0", "-1"} {
		c, _ := newContext(http.MethodGet, "", testAdmin, map[string]string{"id": id})

		err := h.GetUser(c)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidID), id)
	}
}

func TestUserHandler_CreateUser_InvalidEmail(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: discardLogger()})

	c, _ := newContext(http.MethodPost, `{"email":"nope","name":"X","password":"x","role":"ADMIN"}`, testAdmin, nil)

	err := h.CreateUser(c)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "email (email)", appErr.Details())
}

func TestClientHandler_GetClientByDNI(t *testing.T) {
	clientUC := mockUC.NewMockClientUsecase(t)
	h := NewClientHandler(ClientHandlerParams{ClientUC: clientUC, Logger: discardLogger()})

	clientUC.EXPECT().
		GetClientByDNI(mock.Anything, testAdmin, "30111222").
		Return(&entity.Client{ID: 1, DNI: "30111222", Debts: []*entity.Debt{}}, nil).Once()

	c, rec := newContext(http.MethodGet, "", testAdmin, map[string]string{"dni": "30111222"})

	require.NoError(t, h.GetClientByDNI(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dni":"30111222"`)
}

func TestClientHandler_CreateClient(t *testing.T) {
	clientUC := mockUC.NewMockClientUsecase(t)
	h := NewClientHandler(ClientHandlerParams{ClientUC: clientUC, Logger: discardLogger()})

	clientUC.EXPECT().
		CreateClient(mock.Anything, testCommerce, &usecase.CreateClientInput{DNI: "1", FirstName: "Ana", LastName: "Gómez"}).
		Return(domainerrors.ErrClientCreationNotAllowed).Once()

	c, _ := newContext(http.MethodPost, `{"dni":"1","firstName":"Ana","lastName":"Gómez"}`, testCommerce, nil)

	err := h.CreateClient(c)
	assert.True(t, errors.Is(err, domainerrors.ErrClientCreationNotAllowed))
}

func TestSessionHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		env        string
		wantSecure bool
	}{
		{name: "development", env: "development"},
		{name: "production", env: "production", wantSecure: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionUC := mockUC.NewMockSessionUsecase(t)
			cfg := &config.Config{}
			cfg.Env.Env = tt.env
			h := NewSessionHandler(SessionHandlerParams{SessionUC: sessionUC, Config: cfg, Logger: discardLogger()})

			expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
			sessionUC.EXPECT().
				Login(mock.Anything, &usecase.LoginInput{Email: "c1@veraz.com", Password: "secret"}).
				Return(&usecase.LoginOutput{
					Token:     "signed",
					ExpiresAt: expiresAt,
					User:      &entity.User{ID: 2, Email: "c1@veraz.com", PasswordHash: "hash", Role: entity.RoleCommerce},
				}, nil).Once()

			c, rec := newContext(http.MethodPost, `{"email":"c1@veraz.com","password":"secret"}`, nil, nil)

			require.NoError(t, h.Login(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.NotContains(t, rec.Body.String(), "hash")

			cookies := rec.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, "signed", cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)
			assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
			assert.Equal(t, tt.wantSecure, cookies[0].Secure)
		})
	}
}

func TestSessionHandler_Me_Unauthenticated(t *testing.T) {
	sessionUC := mockUC.NewMockSessionUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{SessionUC: sessionUC, Config: &config.Config{}, Logger: discardLogger()})

	sessionUC.EXPECT().CurrentUser(mock.Anything, (*entity.Identity)(nil)).Return(nil, domainerrors.ErrUnauthenticated).Once()

	c, _ := newContext(http.MethodGet, "", nil, nil)

	err := h.Me(c)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}
