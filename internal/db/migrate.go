package db

import (
	"context" // Context for index creation

	"github.com/Rasel9360/bistro-boss-server/internal/config"           // Configuration
	"github.com/Rasel9360/bistro-boss-server/internal/store/mongostore" // Mongo indexes
	"github.com/Rasel9360/bistro-boss-server/internal/store/sqlstore"   // SQL models

	"github.com/sirupsen/logrus" // Logging
)

// Migrate prepares the configured backend: tables for SQL drivers, the
// unique email index for mongo
func Migrate(ctx context.Context, cfg *config.Config) error {
	if cfg.DBDriver == config.DriverMongo {
		client, err := ConnectMongo(ctx, cfg) // Open a connection to the cluster
		if err != nil {
			return err
		}
		defer client.Disconnect(context.Background())
		if err := mongostore.EnsureIndexes(ctx, client.Database(cfg.DBName)); err != nil {
			return err
		}
		logrus.Info("Mongo indexes ensured.")
		return nil
	}
	gdb, err := OpenSQL(cfg) // Open a connection to the database
	if err != nil {
		return err
	}
	// AutoMigrate will create tables, missing columns and indexes
	if err := gdb.WithContext(ctx).AutoMigrate(sqlstore.Models...); err != nil {
		return err
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}
