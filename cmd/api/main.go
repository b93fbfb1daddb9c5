package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"marketflow/internal/cart"
	"marketflow/internal/catalogdata"
	"marketflow/internal/config"
	"marketflow/internal/db"
	"marketflow/internal/httpserver"
	"marketflow/internal/repository/cartstore"
	categoryrepo "marketflow/internal/repository/category"
	orderrepo "marketflow/internal/repository/order"
	productrepo "marketflow/internal/repository/product"
	catalogsvc "marketflow/internal/service/catalog"
	checkoutsvc "marketflow/internal/service/checkout"
	orderssvc "marketflow/internal/service/orders"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var (
		pool      *pgxpool.Pool
		products  productrepo.Repository
		categorys categoryrepo.Repository
		orders    orderrepo.Repository
	)
	switch cfg.CatalogBackend {
	case config.CatalogPostgres:
		var err error
		pool, err = db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect to db: %v", err)
		}
		defer pool.Close()
		products = productrepo.NewPostgres(pool, logger)
		categorys = categoryrepo.NewPostgres(pool)
		orders = orderrepo.NewPostgres(pool)
	case config.CatalogMemory:
		seedProducts, err := catalogdata.Products()
		if err != nil {
			logger.Fatalf("load embedded products: %v", err)
		}
		seedCategories, err := catalogdata.Categories()
		if err != nil {
			logger.Fatalf("load embedded categories: %v", err)
		}
		products = productrepo.NewMemory(seedProducts)
		categorys = categoryrepo.NewMemory(seedCategories)
		orders = orderrepo.NewMemory()
	default:
		logger.Fatalf("unknown catalog backend %q", cfg.CatalogBackend)
	}

	var store cart.Store
	switch cfg.CartStore {
	case config.CartStoreRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()
		store = cartstore.NewRedisStore(client)
	case config.CartStoreFile:
		store = cartstore.NewFileStore(cfg.CartFile)
	default:
		logger.Fatalf("unknown cart store %q", cfg.CartStore)
	}

	catalogService := catalogsvc.New(products)
	ordersService := orderssvc.New(orders)
	cartManager := cart.NewManager(ctx, store, logger)
	checkoutFlow := checkoutsvc.NewFlow(cartManager, catalogService, ordersService, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, pool, httpserver.Deps{
		Catalog:     catalogService,
		Categories:  categorys,
		Cart:        cartManager,
		Checkout:    checkoutFlow,
		Orders:      ordersService,
		DisplayName: cfg.DisplayName,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (catalog=%s, cart store=%s)", cfg.HTTPAddr, cfg.CatalogBackend, cfg.CartStore)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
