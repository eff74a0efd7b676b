package middleware

import (
	"strings"

	"visibility-srv/pkg/response"
	"visibility-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Auth requires a valid session token and stores the caller scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			response.Unauthorized(c)
			return
		}

		payload, err := m.verifier.Verify(tokenString)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: Verify failed: %v", err)
			response.Unauthorized(c)
			return
		}

		m.setScope(c, payload)
		c.Next()
	}
}

// OptionalAuth stores the caller scope when a valid token is present and
// continues as anonymous otherwise.
func (m Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := m.extractToken(c); tokenString != "" {
			if payload, err := m.verifier.Verify(tokenString); err == nil {
				m.setScope(c, payload)
			}
		}
		c.Next()
	}
}

// extractToken reads the Authorization header first ("Bearer <token>" or the
// raw token), then the session cookie.
func (m Middleware) extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		if strings.HasPrefix(authHeader, "Bearer ") {
			return strings.TrimSpace(authHeader[len("Bearer "):])
		}
		return authHeader
	}
	if m.cookieConfig.Name == "" {
		return ""
	}
	tokenString, err := c.Cookie(m.cookieConfig.Name)
	if err != nil {
		return ""
	}
	return tokenString
}

func (m Middleware) setScope(c *gin.Context, payload scope.Payload) {
	ctx := scope.SetScopeToContext(c.Request.Context(), scope.NewScope(payload))
	c.Request = c.Request.WithContext(ctx)
}
