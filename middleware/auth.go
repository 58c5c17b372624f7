package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/keycloak/keycloak"
)

// ClaimsKey is the Gin context key the verified token claims are stored
// under.
const ClaimsKey = "token_claims"

// AuthConfig configures the bearer-token authentication middleware.
type AuthConfig struct {
	// Provider verifies bearer tokens against the realm's configured
	// signature algorithm and key.
	Provider *keycloak.Provider
	// SkipPaths are URL path prefixes that bypass authentication.
	SkipPaths []string
}

// Auth returns a Gin middleware that verifies Bearer tokens with the
// configured provider. Verified claims are stored in the Gin context under
// ClaimsKey.
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range cfg.SkipPaths {
			if strings.HasPrefix(path, skip) {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header required",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization header format",
			})
			return
		}

		claims, err := cfg.Provider.VerifyToken(parts[1])
		if err != nil {
			status := http.StatusUnauthorized
			msg := "Invalid token"
			if keycloak.IsEncryptionConfigurationError(err) {
				status = http.StatusInternalServerError
				msg = "Token verification not configured"
			}
			c.AbortWithStatusJSON(status, gin.H{"error": msg})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// Claims retrieves the verified token claims from the Gin context.
func Claims(c *gin.Context) (map[string]any, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(map[string]any)
	return claims, ok
}
