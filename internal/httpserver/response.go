package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketflow/internal/domain"
)

func errorJSON(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// repoError maps repository failures: missing records are an empty/404 state,
// everything else is a retryable upstream failure.
func repoError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, domain.ErrNotFound) {
		errorJSON(c, http.StatusNotFound, notFoundMsg)
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "retryable": true})
}
