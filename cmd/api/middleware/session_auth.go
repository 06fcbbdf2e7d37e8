package middleware

import (
	"github.com/gin-gonic/gin"

	"blog-nest/cmd/api/auth"
	"blog-nest/cmd/api/trace"
	"blog-nest/internal/logger"
)

// RequireSession rejects requests without a valid session cookie before the
// handler runs, and attaches the verified identity to the gin and request contexts.
func RequireSession(gate auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := gate.Authorize(c)
		if err != nil {
			logger.DebugWithFields("session rejected", logger.Fields{
				"path":       c.Request.URL.Path,
				"reason":     err.Error(),
				"request_id": trace.RequestIDFromContext(c.Request.Context()),
			})
			auth.AbortWithUnauthorized(c)
			return
		}

		c.Set(auth.IdentityKey, identity)
		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), identity))

		c.Next()
	}
}
