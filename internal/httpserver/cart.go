package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"marketflow/internal/cart"
	"marketflow/internal/domain"
	"marketflow/internal/pricing"
)

type addItemRequest struct {
	ProductID int `json:"productId" binding:"required"`
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// mutationResponse is the one-notification-per-action contract: every cart
// mutation answers with a message describing what happened.
func mutationResponse(c *gin.Context, outcome cart.Outcome, count int) {
	c.JSON(http.StatusOK, gin.H{
		"outcome": outcome,
		"message": outcome.Message(),
		"count":   count,
	})
}

func (h *handlers) getCart(c *gin.Context) {
	items := h.deps.Cart.Items()
	quote, err := h.resolveQuote(c, items)
	if err != nil {
		repoError(c, err, "products unavailable")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": h.deps.Cart.Count(),
		"quote": quote,
	})
}

func (h *handlers) cartSummary(c *gin.Context) {
	items := h.deps.Cart.Items()
	quote, err := h.resolveQuote(c, items)
	if err != nil {
		repoError(c, err, "products unavailable")
		return
	}

	resp := gin.H{
		"subtotal": quote.Subtotal.StringFixed(2),
		"shipping": quote.Shipping.StringFixed(2),
		"tax":      quote.Tax.StringFixed(2),
		"total":    quote.Total.StringFixed(2),
		"count":    h.deps.Cart.Count(),
	}
	// The gap is shown only while shipping still costs something.
	if quote.Shipping.IsPositive() {
		resp["freeShippingGap"] = quote.FreeShippingGap.StringFixed(2)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handlers) resolveQuote(c *gin.Context, items []domain.LineItem) (pricing.Quote, error) {
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ProductID
	}
	products, err := h.deps.Catalog.Resolve(c.Request.Context(), ids)
	if err != nil {
		return pricing.Quote{}, err
	}
	return pricing.Compute(items, products), nil
}

func (h *handlers) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "productId required")
		return
	}

	// The catalog record must exist; stock is deliberately not re-checked
	// here (disabled-button concern in the UI).
	if _, err := h.deps.Catalog.GetByID(c.Request.Context(), req.ProductID); err != nil {
		repoError(c, err, "product not found")
		return
	}

	outcome := h.deps.Cart.AddToCart(c.Request.Context(), req.ProductID)
	mutationResponse(c, outcome, h.deps.Cart.Count())
}

func (h *handlers) updateCartItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid product id")
		return
	}
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "quantity required")
		return
	}

	outcome := h.deps.Cart.UpdateQuantity(c.Request.Context(), productID, *req.Quantity)
	mutationResponse(c, outcome, h.deps.Cart.Count())
}

func (h *handlers) removeCartItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid product id")
		return
	}
	outcome := h.deps.Cart.RemoveFromCart(c.Request.Context(), productID)
	mutationResponse(c, outcome, h.deps.Cart.Count())
}

func (h *handlers) saveForLater(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid product id")
		return
	}
	outcome := h.deps.Cart.SaveForLater(c.Request.Context(), productID)
	mutationResponse(c, outcome, h.deps.Cart.Count())
}

func (h *handlers) clearCart(c *gin.Context) {
	outcome := h.deps.Cart.ClearCart(c.Request.Context())
	mutationResponse(c, outcome, 0)
}
