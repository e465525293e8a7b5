// File: middleware/userAuth.go
package middleware

import (
	"net/http"
	"strings"
	"time"

	"hobyhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthMiddleware validates the bearer token on protected routes and
// installs the subject id in the context. Tokens are issued by the upstream;
// this service only verifies them.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing bearer token")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		// Expired tokens are rejected before signature verification; the
		// expiry claim needs no key to read.
		if expiry, err := utils.TokenExpiry(tokenString); err == nil && time.Now().After(expiry) {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "token expired")
			c.Abort()
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			utils.GetLogger().Warn("Rejected invalid token", zap.Error(err))
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "invalid or expired token")
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Set("authToken", tokenString)
		c.Next()
	}
}
