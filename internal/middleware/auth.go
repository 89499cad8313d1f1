package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/oclock/event_backend/internal/apperrors"
	portssvc "github.com/oclock/event_backend/internal/core/ports/services"
	"github.com/oclock/event_backend/internal/dto"
	"github.com/oclock/event_backend/internal/platform/config"
	"github.com/oclock/event_backend/internal/utils"
)

// AuthMiddleware validates the bearer token on each request and attaches the
// resolved principal to the request context.
//
// Requests without an Authorization header (or with one that does not carry a
// bearer token) pass through unauthenticated; role checks further down the
// chain decide whether that is acceptable for the route.
func AuthMiddleware(cfg *config.Config, authSvc portssvc.AuthSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims, err := utils.ParseAndValidateJWT(tokenString, cfg.JWTSecret)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				logger.Warn("Rejected expired access token")
				abortWithError(c, http.StatusUnauthorized, apperrors.CodeJWTExpired, "access token has expired")
				return
			}
			logger.Warn("Rejected invalid access token", slog.String("error", err.Error()))
			abortWithError(c, http.StatusUnauthorized, apperrors.CodeInvalidToken, fmt.Sprintf("invalid access token: %s", err.Error()))
			return
		}

		user, err := authSvc.ResolveUserByEmail(c.Request.Context(), claims.Subject)
		if err != nil {
			logger.Error("Failed to resolve token subject", slog.String("subject", claims.Subject), slog.String("error", err.Error()))
			abortWithError(c, http.StatusInternalServerError, apperrors.CodeInternalServerError, "An unexpected error occurred")
			return
		}
		if !user.IsActive {
			logger.Warn("Rejected token for disabled user", slog.String("email", user.Email))
			abortWithError(c, http.StatusUnauthorized, apperrors.CodeUserDisabled, "user account is disabled")
			return
		}

		principal := Principal{Email: user.Email, Role: user.Role}
		ctx := WithPrincipal(c.Request.Context(), principal)
		ctx = WithLogger(ctx, logger.With(slog.String("user_email", principal.Email)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{ErrorCode: code, Message: message})
}
