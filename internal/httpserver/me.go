package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// me returns the display name shown in the storefront header. There is no
// authentication behind it.
func (h *handlers) me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"name": h.deps.DisplayName})
}
