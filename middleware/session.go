// File: middleware/session.go
package middleware

import (
	"hobyhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionContextKey = "sessionID"

// SessionMiddleware reads the client's session id from the X-Session-ID
// header, issuing a fresh one when absent, and echoes it back so the client
// can persist it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(utils.SessionIDHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		c.Set(sessionContextKey, sessionID)
		c.Header(utils.SessionIDHeader, sessionID)
		c.Next()
	}
}

// SessionID returns the session id installed by SessionMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
