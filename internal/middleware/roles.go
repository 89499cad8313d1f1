package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oclock/event_backend/internal/apperrors"
	"github.com/oclock/event_backend/internal/core/domain"
)

// RequireRoles ensures the request carries an authenticated principal whose
// role is one of the given roles. With no roles listed, any authenticated
// principal is accepted.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipalFromContext(c)
		if !ok {
			abortWithError(c, http.StatusUnauthorized, apperrors.CodeUnauthorized, "authentication is required")
			return
		}
		if len(roles) == 0 {
			c.Next()
			return
		}
		for _, role := range roles {
			if principal.Role == role {
				c.Next()
				return
			}
		}
		abortWithError(c, http.StatusForbidden, apperrors.CodeAccessDenied, "insufficient permissions for this resource")
	}
}
