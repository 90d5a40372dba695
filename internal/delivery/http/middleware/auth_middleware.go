package middleware

import (
	"context"
	"net/http"
	"strings"

	"recruitpro-backend/internal/delivery/http/response"
	"recruitpro-backend/internal/domain"
	"recruitpro-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the access token on protected routes.
// The token is read from the Authorization header (Bearer scheme)
// with a fallback to the auth_token cookie for browser clients.
// On success the recruiter's identity is placed on both the gin
// context and the request context so downstream layers can attribute
// actions to the actor.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.Subject)
		c.Set(string(domain.KeyUserName), claims.Name)
		c.Set(string(domain.KeyUserRole), claims.Role)

		ctx := c.Request.Context()
		ctx = context.WithValue(ctx, domain.KeyUserID, claims.Subject)
		ctx = context.WithValue(ctx, domain.KeyUserName, claims.Name)
		ctx = context.WithValue(ctx, domain.KeyUserRole, claims.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}
