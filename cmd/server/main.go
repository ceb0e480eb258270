// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/javajoker/launchpad-backend/internal/config"
	"github.com/javajoker/launchpad-backend/internal/database"
	"github.com/javajoker/launchpad-backend/internal/i18n"
	"github.com/javajoker/launchpad-backend/internal/jobs"
	"github.com/javajoker/launchpad-backend/internal/repository"
	"github.com/javajoker/launchpad-backend/internal/router"
	"github.com/javajoker/launchpad-backend/internal/services"
)

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Fatal("Server exited with error")
	}
}

// run returns startup errors instead of exiting so that deferred cleanup of
// already opened stores still happens.
func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	configureLogging(cfg)

	// Open stores
	stores, mongoClient, err := openStores(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize product store: %w", err)
	}
	if mongoClient != nil {
		defer database.DisconnectMongo(mongoClient, cfg.Mongo.ConnectTimeout)
	}

	// Initialize audit trail
	if cfg.Audit.Enabled {
		db, err := database.InitializeAudit(cfg.Audit)
		if err != nil {
			return fmt.Errorf("failed to initialize audit database: %w", err)
		}
		defer database.CloseAudit(db)

		if err := database.RunAuditMigrations(db); err != nil {
			return fmt.Errorf("failed to run audit migrations: %w", err)
		}
		stores.AuditDB = db
	}

	// Initialize i18n
	if err := i18n.Initialize(cfg.I18n.DefaultLocale); err != nil {
		return fmt.Errorf("failed to initialize i18n: %w", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	limiter := router.NewRateLimiter(cfg.RateLimit)
	defer limiter.Stop()
	r := router.Initialize(stores, limiter, cfg)

	// Schedule the moderation digest
	digest := jobs.NewModerationDigest(services.NewProductService(stores.Products, nil), cfg.Mongo.OperationTimeout)
	if err := digest.Start(cfg.Jobs.DigestSchedule); err != nil {
		return fmt.Errorf("failed to schedule moderation digest: %w", err)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	serveErr := make(chan error, 1)
	go func() {
		logrus.WithField("port", cfg.Server.Port).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case <-quit:
		logrus.Info("Shutting down server...")
	case err := <-serveErr:
		runErr = fmt.Errorf("failed to start server: %w", err)
	}

	// Create a deadline for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	digest.Stop(ctx)

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
	}

	logrus.Info("Server exited")
	return runErr
}

func configureLogging(cfg *config.Config) {
	if cfg.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.WithField("log_level", cfg.LogLevel).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// openStores selects the persistence driver. The returned client is nil for
// the memory driver.
func openStores(cfg *config.Config) (router.Stores, *mongo.Client, error) {
	if cfg.Mongo.Driver == config.StoreDriverMemory {
		logrus.Warn("Using in-memory store; data is lost on restart")
		return router.Stores{
			Products: repository.NewMemoryProductStore(),
			Users:    repository.NewMemoryDocumentStore(),
			Reviews:  repository.NewMemoryDocumentStore(),
			Coupons:  repository.NewMemoryDocumentStore(),
		}, nil, nil
	}

	client, err := database.ConnectMongo(context.Background(), cfg.Mongo)
	if err != nil {
		return router.Stores{}, nil, err
	}

	db := client.Database(cfg.Mongo.Database)
	products := db.Collection(cfg.Mongo.ProductCollection)

	indexCtx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()
	database.EnsureProductIndexes(indexCtx, products)

	timeout := cfg.Mongo.OperationTimeout
	return router.Stores{
		Products: repository.NewMongoProductStore(products, timeout),
		Users:    repository.NewMongoDocumentStore(db.Collection(cfg.Mongo.UserCollection), timeout),
		Reviews:  repository.NewMongoDocumentStore(db.Collection(cfg.Mongo.ReviewCollection), timeout),
		Coupons:  repository.NewMongoDocumentStore(db.Collection(cfg.Mongo.CouponCollection), timeout),
	}, client, nil
}
