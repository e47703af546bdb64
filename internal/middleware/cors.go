package middleware

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// CORSMiddleware echoes the request origin back when it is on the allowlist
// and short-circuits OPTIONS preflight requests
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin") // Origin of the inbound request
		// Only echo origins that are explicitly allowed
		for _, o := range allowedOrigins {
			if o == origin {
				c.Header("Access-Control-Allow-Origin", origin)                        // Allow this origin
				c.Header("Access-Control-Allow-Credentials", "true")                   // Allow cookies/credentials
				c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS") // Allowed methods
				c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
				break
			}
		}
		// Preflight requests carry no body and need no handler
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next() // Continue to the handler
	}
}
