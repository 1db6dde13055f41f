package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handyhub/marketplace-api/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret"}
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func protectedRouter(cfg *config.Config, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	chain := append([]gin.HandlerFunc{AuthMiddleware(cfg)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet(ContextUserID).(uint),
			"email":   c.MustGet(ContextUserEmail).(string),
			"role":    c.MustGet(ContextUserRole).(string),
		})
	})

	r.GET("/protected", chain...)
	return r
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	cfg := testConfig()
	r := protectedRouter(cfg)

	token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":   float64(42),
		"email": "dana@example.com",
		"role":  "PROVIDER",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.Contains(t, w.Body.String(), `"role":"PROVIDER"`)
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := protectedRouter(testConfig())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	r := protectedRouter(testConfig())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	cfg := testConfig()
	r := protectedRouter(cfg)

	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": float64(42),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	cfg := testConfig()
	r := protectedRouter(cfg)

	token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub": float64(42),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoles(t *testing.T) {
	cfg := testConfig()
	r := protectedRouter(cfg, RequireRoles("ADMIN"))

	customer := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":  float64(1),
		"role": "CUSTOMER",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	admin := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":  float64(2),
		"role": "ADMIN",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+customer)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
