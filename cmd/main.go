package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"tienda/internal/config"
	"tienda/internal/domain"
	httpapi "tienda/internal/http"
	"tienda/internal/repository"
	"tienda/internal/service"
	"tienda/pkg/logger"

	_ "tienda/docs"
)

// @title Tienda API
// @version 1.0
// @description Products and carts over flat JSON file collections
// @BasePath /api
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	var ids repository.IDGenerator = repository.NewTimeIDs()
	if cfg.IDMode == "uuid" {
		ids = repository.UUIDs{}
	}

	products := repository.NewJSONFile[domain.Product](cfg.DataDir, "products")
	carts := repository.NewJSONFile[domain.Cart](cfg.DataDir, "carts")

	catalogSvc := service.NewCatalogService(products, ids, zl)
	cartsSvc := service.NewCartService(carts, ids, zl)

	srv := httpapi.NewServer(catalogSvc, cartsSvc, zl)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Engine(),
	}

	go func() {
		zl.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		zl.Error("shutdown error", zap.Error(err))
	}
}
