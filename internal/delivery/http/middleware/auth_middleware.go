package middleware

import (
	"strings"

	"staplewise/internal/delivery/http/response"
	"staplewise/internal/domain/entity"
	"staplewise/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	KeyAccountID = "accountID"
	KeyEmail     = "email"
	KeyRole      = "role"
)

// AuthMiddleware provides middleware for session token authentication and
// role-based authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired session token")
		}

		// Set account info on the context for handlers to use
		c.Set(KeyAccountID, claims.AccountID)
		c.Set(KeyEmail, claims.Email)
		c.Set(KeyRole, claims.Role)

		return next(c)
	}
}

// RequireRole is a middleware factory that allows only the listed roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(allowed ...entity.Role) echo.MiddlewareFunc {
	allowedRoles := entity.Roles(allowed)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(KeyRole).(entity.Role)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !allowedRoles.Contains(role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role '"+role.String()+"' not allowed")
			}

			return next(c)
		}
	}
}
