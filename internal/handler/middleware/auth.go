package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"guri24/internal/domain/user"
	"guri24/internal/handler/httperr"
	"guri24/internal/pkg/cookie"
	"guri24/internal/usecase"
	"guri24/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	errMissingContext  = errors.New("role checked before authentication")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	users          queries.UserQueries
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, users queries.UserQueries) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		users:          users,
	}
}

// RequireAuth accepts the access_token cookie or a Bearer header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, ErrUnauthenticated, "Access token required", nil)
			return
		}

		principal, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

// RequireActiveUser must run after RequireAuth. It reloads the account so
// suspensions and pending verifications apply before the token expires.
func (m *AuthMiddleware) RequireActiveUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errMissingContext, "Internal server error", nil)
			return
		}

		_, err := m.users.RequireBookableUser(c.Request.Context(), userID)
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Account no longer exists", nil)
		case errors.Is(err, queries.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is not active", nil)
		case errors.Is(err, queries.ErrUnverified):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Email address is not verified", nil)
		default:
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
		}
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			// should be used after RequireAuth()
			httperr.AbortWithError(c, http.StatusInternalServerError, errMissingContext, "Internal server error", nil)
			return
		}

		if !role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, ErrForbidden, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not abort on failure.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		principal, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setPrincipal(c *gin.Context, p *usecase.Principal) {
	c.Set(ctxUserIDKey, p.UserID)
	c.Set(ctxUserRoleKey, p.Role)
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}

// OptionalRole is the caller's role, or nil for anonymous requests.
func OptionalRole(c *gin.Context) *user.Role {
	role, ok := GetUserRole(c)
	if !ok {
		return nil
	}
	return &role
}
