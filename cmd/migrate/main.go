package main

import (
	"context" // Migration deadline
	"time"    // Timeout

	"github.com/Rasel9360/bistro-boss-server/internal/config" // Custom import path (Config)
	"github.com/Rasel9360/bistro-boss-server/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logging
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := db.Migrate(ctx, cfg); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
}
