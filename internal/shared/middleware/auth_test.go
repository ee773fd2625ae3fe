package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(manager *jwt.Manager) *gin.Engine {
	r := gin.New()

	r.GET("/protected", AuthMiddleware(manager), func(c *gin.Context) {
		identity, _ := GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"user_id": identity.UserID})
	})

	r.GET("/optional", OptionalAuthMiddleware(manager), func(c *gin.Context) {
		_, ok := GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})

	r.GET("/admin", AuthMiddleware(manager), AdminMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r
}

func issueToken(t *testing.T, manager *jwt.Manager, role string) string {
	t.Helper()
	token, err := manager.GenerateAccessToken(uuid.NewString(), "user@example.com", "User", role)
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	manager := jwt.NewManager("secret", 15*time.Minute, time.Hour)
	r := newAuthRouter(manager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	manager := jwt.NewManager("secret", 15*time.Minute, time.Hour)
	r := newAuthRouter(manager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	manager := jwt.NewManager("secret", 15*time.Minute, time.Hour)
	r := newAuthRouter(manager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, manager, "user"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuthAllowsAnonymous(t *testing.T) {
	manager := jwt.NewManager("secret", 15*time.Minute, time.Hour)
	r := newAuthRouter(manager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/optional", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
}

func TestOptionalAuthRecognizesViewer(t *testing.T) {
	manager := jwt.NewManager("secret", 15*time.Minute, time.Hour)
	r := newAuthRouter(manager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/optional", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, manager, "user"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
}

func TestAdminMiddlewareRejectsOrdinaryUser(t *testing.T) {
	manager := jwt.NewManager("secret", 15*time.Minute, time.Hour)
	r := newAuthRouter(manager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, manager, "user"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminMiddlewareAcceptsAdmin(t *testing.T) {
	manager := jwt.NewManager("secret", 15*time.Minute, time.Hour)
	r := newAuthRouter(manager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, manager, "admin"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
