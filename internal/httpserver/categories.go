package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketflow/internal/domain"
)

func (h *handlers) listCategories(c *gin.Context) {
	categories, err := h.deps.Categories.GetAll(c.Request.Context())
	if err != nil {
		repoError(c, err, "categories unavailable")
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	c.JSON(http.StatusOK, categories)
}

func (h *handlers) getCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid category id")
		return
	}
	category, err := h.deps.Categories.GetByID(c.Request.Context(), id)
	if err != nil {
		repoError(c, err, "category not found")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *handlers) categoriesByLevel(c *gin.Context) {
	level, err := strconv.Atoi(c.Param("level"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid category level")
		return
	}
	categories, err := h.deps.Categories.GetByLevel(c.Request.Context(), level)
	if err != nil {
		repoError(c, err, "categories unavailable")
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	c.JSON(http.StatusOK, categories)
}
