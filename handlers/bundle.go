// File: handlers/bundle.go
package handlers

import (
	"net/http"

	"hobyhub/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle collects every handler the router needs.
type HandlerBundle struct {
	Discovery  *DiscoveryHandler
	Activities *ActivityHandler
	Categories *CategoryHandler
	Favorites  *FavoritesHandler
	Auth       *AuthHandler
	Vendors    *VendorHandler
}

// HealthHandler handles GET /health.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
