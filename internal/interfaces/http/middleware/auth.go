package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainerrors "fantera.backend/internal/domain/errors"
	"fantera.backend/internal/infrastructure/identity"
	"fantera.backend/internal/interfaces/http/response"
	"fantera.backend/pkg/logger"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// PrivyIDKey is the context key for the authenticated user's privy DID
	PrivyIDKey = "privyId"
)

// AuthMiddleware verifies the identity-provider access token carried in the
// Authorization header and stores the subject DID in the gin context. All
// failure modes collapse to the same 401 envelope.
func AuthMiddleware(verifier identity.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		privyID, err := verifier.VerifyAccessToken(token)
		if err != nil {
			logger.Debug(c.Request.Context(), "token verification failed",
				zap.String("path", c.Request.URL.Path), zap.Error(err))
			abortUnauthorized(c)
			return
		}

		c.Set(PrivyIDKey, privyID)
		c.Next()
	}
}

// GetPrivyID returns the authenticated DID set by AuthMiddleware
func GetPrivyID(c *gin.Context) (string, bool) {
	v, ok := c.Get(PrivyIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader(AuthorizationHeader)
	if len(header) <= len(BearerPrefix) || header[:len(BearerPrefix)] != BearerPrefix {
		return ""
	}
	return header[len(BearerPrefix):]
}

func abortUnauthorized(c *gin.Context) {
	response.Error(c, domainerrors.Unauthorized("Not authenticated"))
	c.Abort()
}
