package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shelter-admin-api/internal/domain/person"
	"shelter-admin-api/internal/infrastructure/jwt"
)

const (
	CtxPersonID   = "personID"
	CtxPersonRole = "personRole"
	CtxIdentity   = "identity"
)

// IdentityLoader resolves a verified subject id into the active
// aggregate. A revoked or soft-deleted identity resolves to nil and is
// rejected the same way a nonexistent one is.
type IdentityLoader interface {
	FindPersonByID(ctx context.Context, id person.ID) (*person.Person, error)
}

// AuthMiddleware is the gate every protected route passes through:
// verify the bearer token, load the subject's active aggregate, attach
// it to the request context or reject.
func AuthMiddleware(jwtService *jwt.Service, loader IdentityLoader, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing Authorization header"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token format"},
			)
			return
		}

		subject, _, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrSecretNotConfigured):
				// Operational fault, not a caller mistake.
				logger.Error("auth gate misconfigured", zap.Error(err))
				c.AbortWithStatusJSON(
					http.StatusInternalServerError,
					gin.H{"error": "authentication unavailable"},
				)
			case errors.Is(err, jwt.ErrTokenExpired):
				c.AbortWithStatusJSON(
					http.StatusUnauthorized,
					gin.H{"error": "token expired"},
				)
			case errors.Is(err, jwt.ErrInvalidPayload):
				c.AbortWithStatusJSON(
					http.StatusUnauthorized,
					gin.H{"error": "invalid token payload"},
				)
			default:
				c.AbortWithStatusJSON(
					http.StatusUnauthorized,
					gin.H{"error": "invalid token"},
				)
			}
			return
		}

		identity, err := loader.FindPersonByID(c.Request.Context(), person.ID(subject))
		if err != nil {
			logger.Error("identity lookup failed", zap.Error(err), zap.Uint64("subject", subject))
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to resolve identity"},
			)
			return
		}
		if identity == nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "unknown subject"},
			)
			return
		}

		c.Set(CtxPersonID, uint64(identity.ID))
		c.Set(CtxPersonRole, string(identity.Credential.Role))
		c.Set(CtxIdentity, identity)

		c.Next()
	}
}

// Identity returns the aggregate the auth gate resolved for this
// request.
func Identity(c *gin.Context) (*person.Person, bool) {
	v, ok := c.Get(CtxIdentity)
	if !ok {
		return nil, false
	}
	p, ok := v.(*person.Person)
	return p, ok
}

// IdentityID returns the acting identity's id; the implicit target for
// requests that carry none of their own.
func IdentityID(c *gin.Context) (person.ID, bool) {
	v, ok := c.Get(CtxPersonID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint64)
	return person.ID(id), ok
}
