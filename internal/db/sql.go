package db

import (
	"fmt" // Error wrapping

	"github.com/Rasel9360/bistro-boss-server/internal/config" // Configuration

	"gorm.io/driver/mysql"    // MySQL driver for GORM
	"gorm.io/driver/postgres" // PostgreSQL driver for GORM
	"gorm.io/gorm"            // GORM ORM library
)

// OpenSQL connects GORM using the dialect named by cfg.DBDriver
func OpenSQL(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverMySQL:
		dialector = mysql.Open(cfg.SQLDSN())
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.SQLDSN())
	default:
		return nil, fmt.Errorf("driver %q is not a SQL driver", cfg.DBDriver)
	}
	gdb, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true, // Every repository call is a single statement
		TranslateError:         true, // Surface duplicate keys as gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}
	return gdb, nil
}
