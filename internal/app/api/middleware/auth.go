package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	cfgpkg "github.com/foodlytics/foodlytics/pkg/config"
	"github.com/foodlytics/foodlytics/pkg/response"
)

// AuthMiddleware validates a Bearer JWT and stores the user id claim in
// gin.Context (key: "user_id") and the request context. Identity itself is
// owned by an external auth service; only the signed id claim is consumed
// here.
func AuthMiddleware(cfg *cfgpkg.Config) gin.HandlerFunc {
	secret := []byte(cfg.Auth.JWTSecret)
	return func(c *gin.Context) {
		userID, err := userIDFromToken(bearerToken(c), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, err.Error()))
			return
		}

		c.Set("user_id", userID)
		ctx := context.WithValue(c.Request.Context(), "user_id", userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

func userIDFromToken(tokenString string, secret []byte) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("not authorized to access this route")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims")
	}

	// Primary claim is "id" (legacy token shape); fall back to "sub".
	for _, key := range []string{"id", "sub"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("token missing user id claim")
}
