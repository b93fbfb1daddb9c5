package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketflow/internal/domain"
)

func (h *handlers) listProducts(c *gin.Context) {
	var (
		products []domain.Product
		err      error
	)
	if category := c.Query("category"); category != "" {
		products, err = h.deps.Catalog.GetByCategory(c.Request.Context(), category)
	} else {
		products, err = h.deps.Catalog.GetAll(c.Request.Context())
	}
	if err != nil {
		repoError(c, err, "products unavailable")
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (h *handlers) getProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid product id")
		return
	}
	product, err := h.deps.Catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		repoError(c, err, "product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *handlers) searchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		errorJSON(c, http.StatusBadRequest, "query parameter q required")
		return
	}
	products, err := h.deps.Catalog.Search(c.Request.Context(), query)
	if err != nil {
		repoError(c, err, "products unavailable")
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	c.JSON(http.StatusOK, products)
}
