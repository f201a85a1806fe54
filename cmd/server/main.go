package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/iStefan20/YumTum/internal/api"
	"github.com/iStefan20/YumTum/internal/catalog"
	"github.com/iStefan20/YumTum/internal/config"
	"github.com/iStefan20/YumTum/internal/discount"
	"github.com/iStefan20/YumTum/internal/order"
	"github.com/iStefan20/YumTum/internal/session"
	"github.com/iStefan20/YumTum/internal/trace"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	logger.Info("Starting YumTum API server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)

	// Tracing is optional; the demo runs fine without a collector
	if cfg.TracingEnabled {
		tp, err := trace.InitTracer(context.Background())
		if err != nil {
			logger.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(ctx); err != nil {
				logger.Warn("Tracer shutdown failed", zap.Error(err))
			}
		}()
	}

	// Wire the catalog, sessions, discounts and order assembly
	cat := catalog.New()
	sessions := session.NewManager(cfg.MinPurchaseAge, logger)
	deps := api.Deps{
		Catalog:   cat,
		Sessions:  sessions,
		Discounts: discount.NewService(cat, logger),
		Assembler: order.NewAssembler(logger),
		Orders:    order.NewRegistry(),
	}

	// Initialize router
	router := api.NewRouter(cfg, deps, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	logger.Info("Server started successfully", zap.String("address", srv.Addr))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
