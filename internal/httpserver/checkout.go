package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketflow/internal/domain"
	"marketflow/internal/service/checkout"
)

func (h *handlers) beginCheckout(c *gin.Context) {
	if err := h.deps.Checkout.Begin(); err != nil {
		checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": h.deps.Checkout.State()})
}

func (h *handlers) checkoutState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state":           h.deps.Checkout.State(),
		"shippingAddress": h.deps.Checkout.ShippingAddress(),
	})
}

func (h *handlers) submitShipping(c *gin.Context) {
	var addr domain.ShippingAddress
	if err := c.ShouldBindJSON(&addr); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid shipping payload")
		return
	}
	if err := h.deps.Checkout.SubmitShipping(addr); err != nil {
		checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": h.deps.Checkout.State()})
}

func (h *handlers) checkoutBack(c *gin.Context) {
	if err := h.deps.Checkout.Back(); err != nil {
		checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"state":           h.deps.Checkout.State(),
		"shippingAddress": h.deps.Checkout.ShippingAddress(),
	})
}

func (h *handlers) submitPayment(c *gin.Context) {
	var pay domain.PaymentMethod
	if err := c.ShouldBindJSON(&pay); err != nil {
		errorJSON(c, http.StatusBadRequest, "invalid payment payload")
		return
	}
	order, err := h.deps.Checkout.SubmitPayment(c.Request.Context(), pay)
	if err != nil {
		checkoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully!",
		"order":   order,
	})
}

// checkoutError maps flow errors: missing fields are inline validation
// problems, wrong-state calls are conflicts, submission failures are
// retryable upstream errors.
func checkoutError(c *gin.Context, err error) {
	var missing *checkout.MissingFieldsError
	switch {
	case errors.As(err, &missing):
		errorJSON(c, http.StatusBadRequest, missing.Error())
	case errors.Is(err, checkout.ErrCartEmpty), errors.Is(err, checkout.ErrInvalidState):
		errorJSON(c, http.StatusConflict, err.Error())
	case errors.Is(err, checkout.ErrSubmissionFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to place order. Please try again.", "retryable": true})
	default:
		errorJSON(c, http.StatusInternalServerError, err.Error())
	}
}
