// Package sqlstore implements the store repositories on GORM, for MySQL or
// PostgreSQL deployments. Ids are UUID strings.
package sqlstore

import (
	"errors" // Sentinel comparison

	"github.com/google/uuid" // Row ids
	"gorm.io/gorm"           // GORM ORM

	"github.com/Rasel9360/bistro-boss-server/internal/domain" // Importing domain models
	"github.com/Rasel9360/bistro-boss-server/internal/store"  // Repository interfaces
)

// Models lists every table for AutoMigrate
var Models = []any{&domain.User{}, &domain.MenuItem{}, &domain.Review{}, &domain.CartEntry{}, &domain.Payment{}}

// New wires every repository to db
func New(db *gorm.DB) store.Store {
	return store.Store{
		Users:    &UserRepository{DB: db},
		Menu:     &MenuRepository{DB: db},
		Reviews:  &ReviewRepository{DB: db},
		Carts:    &CartRepository{DB: db},
		Payments: &PaymentRepository{DB: db},
		Stats:    &StatsRepository{DB: db},
	}
}

func newID() string { return uuid.NewString() } // Random v4 UUID

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound // Callers branch on the domain sentinel
	}
	return err
}

func deleted(tx *gorm.DB) (domain.DeleteResult, error) {
	if tx.Error != nil {
		return domain.DeleteResult{}, tx.Error
	}
	return domain.DeleteResult{Acknowledged: true, DeletedCount: tx.RowsAffected}, nil // Rows removed
}
