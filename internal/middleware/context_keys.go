package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/oclock/event_backend/internal/core/domain"
)

// Principal is the resolved identity attached to a request after the
// authentication gate accepts its access token.
type Principal struct {
	Email string
	Role  domain.Role
}

// principalKey is the key used to store the authenticated principal in
// the request context. Using a custom type prevents collisions.
const principalKey = contextKey("principal")

// WithPrincipal returns a context carrying the principal.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// GetPrincipalFromContext retrieves the authenticated principal from
// the request. It returns the principal and a boolean indicating if it
// was found.
func GetPrincipalFromContext(c *gin.Context) (Principal, bool) {
	val := c.Request.Context().Value(principalKey)
	if val == nil {
		return Principal{}, false
	}
	principal, ok := val.(Principal)
	if !ok {
		return Principal{}, false
	}
	return principal, true
}
