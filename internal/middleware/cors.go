package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const productionEnv = "production"

type CORSConfig struct {
	AllowedOrigins []string
	// AllowLocalhost also admits http(s)://localhost and 127.0.0.1 on any port.
	AllowLocalhost bool
}

// DefaultCORSConfig admits the configured origins, plus localhost outside production.
func DefaultCORSConfig(environment string, origins []string) CORSConfig {
	return CORSConfig{
		AllowedOrigins: origins,
		AllowLocalhost: environment != productionEnv,
	}
}

// CORS answers preflight requests and sets the CORS headers for allowed origins.
// Credentials are allowed so the session cookie is sent, which rules out "*".
func CORS(cfg CORSConfig) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		allowed[strings.TrimRight(o, "/")] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && originAllowed(origin, allowed, cfg.AllowLocalhost) {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, "+HeaderRequestID)
			h.Set("Access-Control-Expose-Headers", HeaderRequestID)
			h.Add("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func originAllowed(origin string, allowed map[string]struct{}, allowLocalhost bool) bool {
	if _, ok := allowed[origin]; ok {
		return true
	}
	if !allowLocalhost {
		return false
	}
	for _, prefix := range []string{"http://localhost", "https://localhost", "http://127.0.0.1", "https://127.0.0.1"} {
		if origin == prefix || strings.HasPrefix(origin, prefix+":") {
			return true
		}
	}
	return false
}
