package middleware

import (
	"net/http"

	"yourfuture/internal/authz"

	"github.com/gin-gonic/gin"
)

// RequireCapability rejects callers lacking c before the handler runs. It
// must come after RequireAuth. Ownership-based capabilities cannot be
// decided here and are left to the services.
func RequireCapability(c authz.Capability) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := authz.Check(ActorFrom(ctx), c, 0); err != nil {
			status := http.StatusForbidden
			if ActorFrom(ctx) == nil {
				status = http.StatusUnauthorized
			}
			ctx.AbortWithStatusJSON(status, gin.H{"error": "You do not have permission to access this resource"})
			return
		}

		ctx.Next()
	}
}

// AdminMiddleware checks if the user is an admin
func AdminMiddleware() gin.HandlerFunc {
	return RequireCapability(authz.Moderate)
}
