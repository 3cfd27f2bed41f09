package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medsched/hospital-scheduler/internal/config"
)

// CORSMiddleware mirrors the request origin back when it is allowed.
// With no configured origin list every origin is accepted, which suits
// local development; production deployments set CORS_ALLOWED_ORIGINS.
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(cfg.CORSOrigins))
	for _, origin := range cfg.CORSOrigins {
		allowed[origin] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		permitted := origin != ""
		if len(allowed) > 0 {
			_, permitted = allowed[origin]
		}

		if permitted {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Vary", "Origin")
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set(
				"Access-Control-Allow-Headers",
				"Content-Type, Authorization",
			)
			c.Writer.Header().Set(
				"Access-Control-Allow-Methods",
				"GET, POST, PUT, PATCH, DELETE, OPTIONS",
			)
		}

		// pre-flight
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
