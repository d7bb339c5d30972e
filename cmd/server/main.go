package main

import (
	"context"   // Startup and shutdown deadlines
	"errors"    // Sentinel comparison
	"net/http"  // HTTP server
	"os"        // Signals
	"os/signal" // Signal notification
	"syscall"   // SIGTERM
	"time"      // Timeouts

	"github.com/Rasel9360/bistro-boss-server/internal/api"              // Custom package for API handlers
	"github.com/Rasel9360/bistro-boss-server/internal/config"           // Custom package for configuration
	"github.com/Rasel9360/bistro-boss-server/internal/db"               // Connection setup
	"github.com/Rasel9360/bistro-boss-server/internal/middleware"       // Custom package for middleware
	"github.com/Rasel9360/bistro-boss-server/internal/payment"          // Stripe gateway
	"github.com/Rasel9360/bistro-boss-server/internal/store"            // Repository bundle
	"github.com/Rasel9360/bistro-boss-server/internal/store/mongostore" // Document store
	"github.com/Rasel9360/bistro-boss-server/internal/store/sqlstore"   // Relational store

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	startCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	// Open the store once and share it with every handler
	var st store.Store
	var closeStore func()
	switch cfg.DBDriver {
	case config.DriverMongo:
		client, err := db.ConnectMongo(startCtx, cfg)
		if err != nil {
			logrus.Fatalf("failed to connect to MongoDB: %v", err)
		}
		database := client.Database(cfg.DBName)
		// Unique email index backs insert-if-absent under concurrent sign-ins
		if err := mongostore.EnsureIndexes(startCtx, database); err != nil {
			logrus.Fatalf("failed to ensure MongoDB indexes: %v", err)
		}
		st = mongostore.New(database)
		closeStore = func() { _ = client.Disconnect(context.Background()) }
		logrus.Info("Pinged your deployment. You successfully connected to MongoDB!")
	default:
		gdb, err := db.OpenSQL(cfg)
		if err != nil {
			logrus.Fatalf("failed to connect to DB: %v", err)
		}
		st = sqlstore.New(gdb)
		closeStore = func() {
			if sqlDB, err := gdb.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
	}
	defer closeStore()

	// Setup Redis client when configured
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(startCtx).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
	}

	if cfg.StripeSecret == "" {
		logrus.Warn("STRIPE_SECRET_KEY is not set, payment intents will fail")
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())
	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}
	api.RegisterRoutes(r, api.Deps{
		Store:     st,
		Gateway:   payment.NewStripeGateway(cfg.StripeSecret, nil),
		Cache:     redisClient,
		JWTSecret: cfg.JWTSecret,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logrus.Infof("Bistro boss is running on port %s", cfg.AppPort) // Log server start
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server error: %v", err)
		}
	}()

	// Wait for an interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down")
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("graceful shutdown failed: %v", err)
	}
}
