// File: middleware/getClientIP_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func clientIPContext(remoteAddr string, headers map[string]string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestGetClientIPPrefersForwardedFor(t *testing.T) {
	c := clientIPContext("10.0.0.1:443", map[string]string{
		"X-Forwarded-For": "203.0.113.7, 10.0.0.2",
		"X-Real-IP":       "198.51.100.4",
	})
	assert.Equal(t, "203.0.113.7", getClientIP(c))
}

func TestGetClientIPFallsBackToRealIP(t *testing.T) {
	c := clientIPContext("10.0.0.1:443", map[string]string{
		"X-Real-IP": "198.51.100.4",
	})
	assert.Equal(t, "198.51.100.4", getClientIP(c))
}

func TestGetClientIPIgnoresUnparseableHeaders(t *testing.T) {
	c := clientIPContext("192.0.2.9:5000", map[string]string{
		"X-Forwarded-For": "not-an-ip",
		"X-Real-IP":       "also garbage",
	})
	assert.Equal(t, "192.0.2.9", getClientIP(c))
}

func TestGetClientIPStripsPort(t *testing.T) {
	c := clientIPContext("192.0.2.9:5000", nil)
	assert.Equal(t, "192.0.2.9", getClientIP(c))
}
