package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the configured front-end origins. A "*" entry opens
// the API to every origin.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", RequestIDHeader},
		ExposeHeaders:    []string{RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           24 * time.Hour,
	}

	for _, origin := range allowedOrigins {
		if origin == "*" {
			config.AllowAllOrigins = true
			return cors.New(config)
		}
	}
	if len(allowedOrigins) == 0 {
		config.AllowAllOrigins = true
		return cors.New(config)
	}

	config.AllowOrigins = allowedOrigins
	return cors.New(config)
}
