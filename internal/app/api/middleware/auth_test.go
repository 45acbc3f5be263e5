package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"

	cfgpkg "github.com/foodlytics/foodlytics/pkg/config"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &cfgpkg.Config{Auth: cfgpkg.AuthConfig{JWTSecret: testSecret}}
	r := gin.New()
	r.Use(AuthMiddleware(cfg))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("user_id"))
	})
	return r
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := newAuthRouter()
	token := signToken(t, jwt.MapClaims{"id": "user-42", "exp": time.Now().Add(time.Hour).Unix()}, testSecret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "user-42", w.Body.String())
}

func TestAuthMiddleware_SubClaimFallback(t *testing.T) {
	r := newAuthRouter()
	token := signToken(t, jwt.MapClaims{"sub": "user-7"}, testSecret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "user-7", w.Body.String())
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc"},
		{name: "garbage token", header: "Bearer not.a.token"},
		{name: "wrong secret", header: "Bearer " + func() string {
			token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": "user-1"})
			signed, _ := token.SignedString([]byte("other-secret"))
			return signed
		}()},
	}

	r := newAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)
			require.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	r := newAuthRouter()
	token := signToken(t, jwt.MapClaims{"id": "user-42", "exp": time.Now().Add(-time.Hour).Unix()}, testSecret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
