package middleware

import (
	"context"
	"errors"
	"net/http"

	"content_manager/internal/model"
	"content_manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	// TokenHeader carries the raw token, without any scheme prefix
	TokenHeader  = "x-access-token"
	PrincipalKey = "principal"
)

const (
	msgTokenMissing = "Token is missing!"
	msgTokenInvalid = "Token is invalid!"
)

// Authenticator resolves a token to the user holding it
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

// SessionMiddleware rejects requests that do not present the caller's
// current token. On success the resolved user is stored under PrincipalKey.
func SessionMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgTokenMissing})
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil || user == nil {
			if err != nil && !errors.Is(err, service.ErrTokenInvalid) && !errors.Is(err, service.ErrAuthenticationMissing) {
				logrus.WithError(err).Warn("Unexpected authentication error")
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgTokenInvalid})
			return
		}

		c.Set(PrincipalKey, user)
		c.Next()
	}
}

// CurrentUser returns the principal stored by SessionMiddleware
func CurrentUser(c *gin.Context) (*model.User, bool) {
	val, exists := c.Get(PrincipalKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*model.User)
	return user, ok && user != nil
}
