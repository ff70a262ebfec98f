package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"staplewise/config"
	"staplewise/internal/domain/entity"
	"staplewise/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestServer(t *testing.T, role entity.Role) (*echo.Echo, string) {
	t.Helper()

	tokenSvc, err := auth.NewJWTService(&config.Config{
		SecretKey: config.SecretKeyConfig{Token: "test_token_secret"},
	})
	require.NoError(t, err)

	token, err := tokenSvc.Generate(uuid.Must(uuid.NewV7()), "sales@staplewise.com", role)
	require.NoError(t, err)

	authMiddleware := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	ok := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	e.GET("/any", ok, authMiddleware.Authenticate)
	e.GET("/staff", ok,
		authMiddleware.Authenticate,
		authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleSales),
	)

	return e, token
}

func get(e *echo.Echo, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	e, token := newAuthTestServer(t, entity.RoleBuyer)

	assert.Equal(t, http.StatusOK, get(e, "/any", "Bearer "+token).Code)
	assert.Equal(t, http.StatusUnauthorized, get(e, "/any", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(e, "/any", token).Code) // missing Bearer prefix
	assert.Equal(t, http.StatusUnauthorized, get(e, "/any", "Bearer not.a.token").Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name string
		role entity.Role
		want int
	}{
		{name: "sales allowed", role: entity.RoleSales, want: http.StatusOK},
		{name: "admin allowed", role: entity.RoleAdmin, want: http.StatusOK},
		{name: "buyer denied", role: entity.RoleBuyer, want: http.StatusForbidden},
		{name: "seller denied", role: entity.RoleSeller, want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, token := newAuthTestServer(t, tt.role)
			assert.Equal(t, tt.want, get(e, "/staff", "Bearer "+token).Code)
		})
	}
}
