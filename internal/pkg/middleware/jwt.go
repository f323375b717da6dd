package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/flashfood/internal/pkg/jwt"
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/internal/utils"
)

const (
	// ContextUserID is the echo context key holding the authenticated user id
	ContextUserID = "user_id"
	// ContextUserRole is the echo context key holding the authenticated role
	ContextUserRole = "user_role"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				// Browsers cannot set headers on a websocket handshake
				if token := c.QueryParam("token"); token != "" {
					authHeader = "Bearer " + token
				} else {
					return utils.UnauthorizedResponse(c, "Authorization header is required")
				}
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextUserRole, claims.Role)

			return next(c)
		}
	}
}

// RequireRole rejects requests whose token role is not one of roles
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextUserRole).(string)
			for _, r := range roles {
				if r == role {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Insufficient role")
		}
	}
}

// UserIDFromContext returns the authenticated user id, or "" if none
func UserIDFromContext(c echo.Context) string {
	userID, _ := c.Get(ContextUserID).(string)
	return userID
}

// RoleFromContext returns the authenticated role, or "" if none
func RoleFromContext(c echo.Context) string {
	role, _ := c.Get(ContextUserRole).(string)
	return role
}
