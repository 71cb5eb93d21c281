// Package middleware provides the cookie-based session middleware for the
// auth feature.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"portal_backend/internal/feature/auth/domain/entity"
	"portal_backend/internal/feature/auth/usecase"
)

// SessionCookie is the name of the cookie carrying the access token.
const SessionCookie = "access_token"

// contextUserKey is where the resolved user is stored in the Gin context.
const contextUserKey = "currentUser"

// Authenticator resolves a token string to the public user it asserts.
// Following Go convention: interfaces are defined by the consumer
// (middleware), not the provider (usecase).
type Authenticator interface {
	Authenticate(ctx context.Context, tokenStr string) (*entity.PublicUser, error)
}

// SessionRequired returns a Gin middleware that restricts access to
// requests carrying a valid session cookie. Exactly one verification and
// one user lookup happen per request; nothing is cached across requests.
func SessionRequired(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie)
		if err != nil || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), tokenStr)
		if err != nil {
			if !errors.Is(err, usecase.ErrUnauthenticated) {
				slog.Error("session validation failed", "error", err, "remote_addr", c.ClientIP())
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user attached to the request by SessionRequired.
func CurrentUser(c *gin.Context) (*entity.PublicUser, bool) {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.PublicUser)
	return user, ok
}
