package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/david-vardanov/teambie/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func setupAuthTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", testSecret)

	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	r.GET("/admin", middleware.AuthMiddleware(), middleware.RoleMiddleware("ADMIN"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func signedToken(t *testing.T, role string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u-1",
		"email":   "jane@example.com",
		"role":    role,
		"exp":     expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return signed
}

func errorMessage(t *testing.T, body []byte) string {
	t.Helper()
	var res map[string]any
	assert.NoError(t, json.Unmarshal(body, &res))
	errObj, _ := res["error"].(map[string]any)
	msg, _ := errObj["message"].(string)
	return msg
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := setupAuthTest(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "USER", time.Now().Add(time.Hour)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u-1")
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	r := setupAuthTest(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token not found", errorMessage(t, w.Body.Bytes()))
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	r := setupAuthTest(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "USER", time.Now().Add(-time.Hour)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token has expired", errorMessage(t, w.Body.Bytes()))
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	r := setupAuthTest(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", errorMessage(t, w.Body.Bytes()))
}

func TestRoleMiddleware_ForbiddenRole(t *testing.T) {
	r := setupAuthTest(t)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "USER", time.Now().Add(time.Hour)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You do not have permission to perform this action", errorMessage(t, w.Body.Bytes()))
}

func TestRoleMiddleware_AllowedRole(t *testing.T) {
	r := setupAuthTest(t)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "ADMIN", time.Now().Add(time.Hour)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
