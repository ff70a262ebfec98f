package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"staplewise/config"
	"staplewise/internal/delivery/http/middleware"
	"staplewise/internal/delivery/http/validator"
	"staplewise/internal/infra/auth"
	"staplewise/internal/infra/persistence/localstore"
	"staplewise/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer wires the full auth stack against a throwaway file store.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Token: "test_token_secret"},
		Auth:      &config.AuthConfig{BcryptCost: 4},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	accounts, err := localstore.NewAccountRepository(t.TempDir())
	require.NoError(t, err)

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	authUsecase := impl.NewAuthService(impl.AuthServiceParams{
		AccountRepo:  accounts,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenSvc,
		Logger:       logger,
	})

	authHandler := NewAuthHandler(authUsecase, logger)
	authMiddleware := middleware.NewAuthMiddleware(tokenSvc)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authMiddleware.Authenticate)

	return e
}

func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

const registerBody = `{
	"email": "buyer@example.com",
	"password": "password123",
	"name": "John Buyer",
	"phone": "+91 9876543212",
	"role": "BUYER",
	"companyName": "ABC Foods"
}`

func TestAuthHandler_Register(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/auth/register", registerBody, "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"token"`)
	assert.Contains(t, body, "buyer@example.com")
	// The credential never leaves the server in any form.
	assert.NotContains(t, body, "password123")
	assert.NotContains(t, body, "passwordHash")
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/auth/register", registerBody, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/auth/register", registerBody, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "DUPLICATE_ACCOUNT")
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/auth/register", `{"email":"x","password":"short"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAuthHandler_Login(t *testing.T) {
	e := newTestServer(t)
	require.Equal(t, http.StatusCreated, doJSON(e, http.MethodPost, "/auth/register", registerBody, "").Code)

	rec := doJSON(e, http.MethodPost, "/auth/login", `{"email":"buyer@example.com","password":"password123"}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token"`)
	assert.Contains(t, rec.Body.String(), `"BUYER"`)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	e := newTestServer(t)
	require.Equal(t, http.StatusCreated, doJSON(e, http.MethodPost, "/auth/register", registerBody, "").Code)

	// Wrong password and unknown email produce identical responses.
	wrongPassword := doJSON(e, http.MethodPost, "/auth/login", `{"email":"buyer@example.com","password":"nope-nope"}`, "")
	unknownEmail := doJSON(e, http.MethodPost, "/auth/login", `{"email":"ghost@example.com","password":"password123"}`, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Contains(t, wrongPassword.Body.String(), "INVALID_CREDENTIALS")
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestAuthHandler_Me(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/auth/register", registerBody, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.Token)

	rec = doJSON(e, http.MethodGet, "/auth/me", "", envelope.Data.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "buyer@example.com")
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestAuthHandler_Me_RequiresToken(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodGet, "/auth/me", "", "garbage.token.value")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}
