package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"marketflow/internal/cart"
	categoryrepo "marketflow/internal/repository/category"
	"marketflow/internal/service/catalog"
	"marketflow/internal/service/checkout"
	"marketflow/internal/service/orders"
)

// Deps carries the storefront collaborators into the handlers.
type Deps struct {
	Catalog     *catalog.Service
	Categories  categoryrepo.Repository
	Cart        *cart.Manager
	Checkout    *checkout.Flow
	Orders      *orders.Service
	DisplayName string
}

// buildRouter wires the storefront routes.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if deps.Catalog == nil || deps.Cart == nil || deps.Checkout == nil || deps.Orders == nil {
		return nil, errors.New("httpserver: missing dependencies")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{deps: deps, logger: logger}

	api := router.Group("/api")
	{
		api.GET("/products", h.listProducts)
		api.GET("/products/search", h.searchProducts)
		api.GET("/products/:id", h.getProduct)

		api.GET("/categories", h.listCategories)
		api.GET("/categories/level/:level", h.categoriesByLevel)
		api.GET("/categories/:id", h.getCategory)

		api.GET("/cart", h.getCart)
		api.GET("/cart/summary", h.cartSummary)
		api.POST("/cart/items", h.addCartItem)
		api.PATCH("/cart/items/:productId", h.updateCartItem)
		api.DELETE("/cart/items/:productId", h.removeCartItem)
		api.POST("/cart/items/:productId/save-for-later", h.saveForLater)
		api.DELETE("/cart", h.clearCart)

		api.POST("/checkout/begin", h.beginCheckout)
		api.GET("/checkout", h.checkoutState)
		api.POST("/checkout/shipping", h.submitShipping)
		api.POST("/checkout/back", h.checkoutBack)
		api.POST("/checkout/payment", h.submitPayment)

		api.GET("/orders", h.listOrders)
		api.GET("/orders/:id", h.getOrder)

		api.GET("/me", h.me)
	}

	return router, nil
}

type handlers struct {
	deps   Deps
	logger *log.Logger
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// readyHandler reports ready when the configured backends are reachable. A
// nil pool means the embedded catalog is in use and there is nothing to ping.
func readyHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ready"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
