package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/jwt"
)

// Context keys set by the auth middlewares.
const (
	CtxUserID      = "user_id"
	CtxEmail       = "email"
	CtxDisplayName = "display_name"
	CtxRole        = "role"
)

// AuthMiddleware validates the Bearer token and injects the identity
// into the gin context. Requests without a valid token are rejected.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromHeader(c, manager)
		if !ok {
			response.Unauthorized(c, "missing or invalid access token")
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware injects the identity when a valid token is
// present but lets anonymous requests through. Used on public guestbook
// reads so the response can include the viewer's liked entries.
func OptionalAuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := claimsFromHeader(c, manager); ok {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

func claimsFromHeader(c *gin.Context, manager *jwt.Manager) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	// Expect "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := manager.ValidateAccessToken(parts[1])
	if err != nil {
		return nil, false
	}

	return claims, true
}

// Identity is the authenticated actor as seen by handlers.
type Identity struct {
	UserID      uuid.UUID
	Email       string
	DisplayName string
	Role        string
}

func (i Identity) IsAdmin() bool {
	return i.Role == "admin"
}

// GetIdentity reads the identity injected by the auth middlewares.
// Returns false for anonymous requests.
func GetIdentity(c *gin.Context) (Identity, bool) {
	raw, exists := c.Get(CtxUserID)
	if !exists {
		return Identity{}, false
	}

	idStr, ok := raw.(string)
	if !ok {
		return Identity{}, false
	}

	userID, err := uuid.Parse(idStr)
	if err != nil {
		return Identity{}, false
	}

	return Identity{
		UserID:      userID,
		Email:       c.GetString(CtxEmail),
		DisplayName: c.GetString(CtxDisplayName),
		Role:        c.GetString(CtxRole),
	}, true
}

func setIdentity(c *gin.Context, claims *jwt.Claims) {
	c.Set(CtxUserID, claims.UserID)
	c.Set(CtxEmail, claims.Email)
	c.Set(CtxDisplayName, claims.DisplayName)
	c.Set(CtxRole, claims.Role)
}
