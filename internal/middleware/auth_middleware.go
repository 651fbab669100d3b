package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CtxSession is the gin context key of the authenticated session
const CtxSession = "session"

// Authenticator resolves a bearer token to a live session
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Session, error)
}

// QueryTokenParam carries the session token for clients that cannot set
// headers, such as a browser EventSource
const QueryTokenParam = "access_token"

// SessionAuthMiddleware requires a valid token backed by a live server-side session
func SessionAuthMiddleware(auth Authenticator, log *zap.Logger) gin.HandlerFunc {
	return sessionAuth(auth, log, BearerToken)
}

// StreamAuthMiddleware is SessionAuthMiddleware that also accepts the token
// in the access_token query parameter. Use it only on event stream routes.
func StreamAuthMiddleware(auth Authenticator, log *zap.Logger) gin.HandlerFunc {
	return sessionAuth(auth, log, func(c *gin.Context) (string, bool) {
		if token, ok := BearerToken(c); ok {
			return token, true
		}
		token := strings.TrimSpace(c.Query(QueryTokenParam))
		return token, token != ""
	})
}

func sessionAuth(auth Authenticator, log *zap.Logger, extract func(c *gin.Context) (string, bool)) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extract(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be Bearer {token}"})
			return
		}

		session, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			log.Debug("session rejected", zap.String("path", c.FullPath()), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or invalid, please log in again"})
			return
		}

		c.Set(CtxSession, session)
		c.Next()
	}
}

// BearerToken extracts the token of an "Authorization: Bearer" header
func BearerToken(c *gin.Context) (string, bool) {
	const bearerSchema = "Bearer "
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, bearerSchema) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerSchema):])
	return token, token != ""
}

// GetSession returns the session set by SessionAuthMiddleware
func GetSession(c *gin.Context) *models.Session {
	session, _ := c.Get(CtxSession)
	s, _ := session.(*models.Session)
	return s
}
