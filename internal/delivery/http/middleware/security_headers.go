package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware adds the standard hardening headers to
// every response.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains; preload")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=(), payment=()")

		// API responses are JSON; avatars come from Supabase storage
		c.Header("Content-Security-Policy",
			"default-src 'self'; "+
				"img-src 'self' data: https://*.supabase.co; "+
				"connect-src 'self' https://*.supabase.co; "+
				"frame-ancestors 'none'; "+
				"base-uri 'self'")

		// Authenticated responses must not end up in shared caches
		if c.GetHeader("Authorization") != "" {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, private")
			c.Header("Pragma", "no-cache")
		}

		c.Next()
	}
}
