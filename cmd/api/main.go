package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/handlers"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"

	"github.com/jpp0ca/storybook-media/internal/adapters"
	handler "github.com/jpp0ca/storybook-media/internal/adapters/http"
	"github.com/jpp0ca/storybook-media/internal/adapters/storage/local"
	"github.com/jpp0ca/storybook-media/internal/adapters/store"
	"github.com/jpp0ca/storybook-media/internal/app"
	"github.com/jpp0ca/storybook-media/internal/config"
	"github.com/jpp0ca/storybook-media/internal/logger"
	"github.com/jpp0ca/storybook-media/internal/metrics"

	_ "github.com/jpp0ca/storybook-media/docs"
)

// @title			Storybook Media API
// @version		1.0
// @description	Resolves media URLs into embeddable player URLs and materializes uploaded assets.
// @description	Images are inlined as data URIs; other files go to object storage.

// @contact.name	Storybook Media API Support
// @license.name	MIT

// @host		localhost:8080
// @BasePath	/
func main() {
	cfg := config.Load()
	log := logger.Init(cfg.LogLevel, cfg.LogFormat)

	// Register storage backends
	registry, err := adapters.NewDefaultStorageRegistry(cfg, &http.Client{Timeout: 60 * time.Second})
	if err != nil {
		log.Error("failed to prepare storage", "error", err)
		os.Exit(1)
	}

	storage, err := registry.Get(cfg.StorageBackend)
	if err != nil {
		log.Error("invalid storage backend", "backend", cfg.StorageBackend, "available", registry.Available(), "error", err)
		os.Exit(1)
	}

	catalog, closer, err := store.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to open catalog database", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	defer closer.Close()

	// Create application service
	m := metrics.New()
	materializer := app.NewMaterializer(storage, log, app.WithDefaultBucket(cfg.DefaultBucket))
	mediaService := app.NewService(materializer, catalog, app.ServiceConfig{
		Metrics:       m,
		Logger:        log,
		DefaultOrigin: cfg.PublicOrigin,
		ImportWorkers: cfg.ImportWorkers,
	})

	// Setup HTTP server
	r := gin.New()
	r.Use(gin.Recovery())

	var limiter *rate.Limiter
	if cfg.UploadRatePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.UploadRatePerSec), cfg.UploadBurst)
	}
	h := handler.NewHandler(mediaService, handler.Options{
		PublicOrigin:   cfg.PublicOrigin,
		MaxUploadBytes: cfg.MaxUploadBytes,
		UploadLimiter:  limiter,
		Metrics:        m.Handler(),
		Logger:         log,
	})
	h.RegisterRoutes(r)

	if localStorage, ok := storage.(*local.Storage); ok {
		r.Static(local.PathPrefix, localStorage.Dir())
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", handler.RequestIDHeader}),
		handlers.ExposedHeaders([]string{handler.RequestIDHeader}),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           cors(r),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       2 * time.Minute, // large uploads
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("starting storybook media API",
			"addr", srv.Addr,
			"storage", storage.Name(),
			"storage_backends", registry.Available(),
			"db_driver", cfg.DBDriver,
			"swagger", "http://localhost"+srv.Addr+"/swagger/index.html",
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("shutdown signal received, draining requests")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		return
	}
	log.Info("server stopped cleanly", slog.String("addr", srv.Addr))
}
