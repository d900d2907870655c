package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/zakhtar/go-mobility-map/internal/api"
	"github.com/zakhtar/go-mobility-map/internal/config"
	"github.com/zakhtar/go-mobility-map/internal/dashboard"
	"github.com/zakhtar/go-mobility-map/internal/dataset"
	"github.com/zakhtar/go-mobility-map/internal/ingestion"
	"github.com/zakhtar/go-mobility-map/internal/logging"
	"github.com/zakhtar/go-mobility-map/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	slog.Info("Server starting", "host", cfg.Server.Host, "port", cfg.Server.Port)

	ds, err := dataset.Load(cfg.Data.Path)
	if err != nil {
		logging.Fatalf("Failed to load mobility data: %v", err)
	}
	slog.Info("mobility data loaded",
		"path", cfg.Data.Path,
		"routes", len(ds.Records),
		"timestamps", ds.Times.Len(),
	)

	db, err := repository.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		logging.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// One-shot ingest; the route table is immutable once this returns.
	loader := ingestion.NewLoader(cfg, db)
	if err := loader.Run(ctx, ds.Records); err != nil {
		logging.Fatalf("Failed to ingest mobility data: %v", err)
	}

	// Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(api.RequestLogMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false, // Set to false when using wildcard origins
	}))
	router.Use(api.RateLimitMiddleware(cfg.API.RateLimit))

	api.NewHandler(db, ds, cfg).RegisterRoutes(router)
	dashboard.NewPage(ds, cfg).RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
}
