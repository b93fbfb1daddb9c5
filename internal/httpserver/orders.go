package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketflow/internal/domain"
)

func (h *handlers) listOrders(c *gin.Context) {
	orders, err := h.deps.Orders.GetAll(c.Request.Context())
	if err != nil {
		repoError(c, err, "orders unavailable")
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func (h *handlers) getOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid order id")
		return
	}
	order, err := h.deps.Orders.GetByID(c.Request.Context(), id)
	if err != nil {
		repoError(c, err, "order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}
