package sqlstore

import (
	"context" // Request-scoped deadlines
	"fmt"     // Error wrapping

	"github.com/google/uuid" // Id format
	"gorm.io/gorm"           // GORM ORM

	"github.com/Rasel9360/bistro-boss-server/internal/domain" // Importing domain models
)

// CartRepository is backed by the carts table
type CartRepository struct {
	DB *gorm.DB // Database connection
}

func (r *CartRepository) List(ctx context.Context, email string) ([]domain.CartEntry, error) {
	q := r.DB.WithContext(ctx)
	if email != "" {
		q = q.Where("email = ?", email) // Only the owner's entries
	}
	entries := []domain.CartEntry{} // Encode empty results as []
	if err := q.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list carts: %w", err)
	}
	return entries, nil
}

func (r *CartRepository) Insert(ctx context.Context, entry *domain.CartEntry) (domain.InsertResult, error) {
	row := *entry
	row.ID = newID()                                                 // Assign a UUID
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil { // Insert the entry
		return domain.InsertResult{}, fmt.Errorf("insert cart entry: %w", err)
	}
	return domain.Inserted(row.ID), nil
}

func (r *CartRepository) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	return deleted(r.DB.WithContext(ctx).Where("id = ?", id).Delete(&domain.CartEntry{}))
}

// ValidateIDs rejects any id that is not a UUID
func (r *CartRepository) ValidateIDs(ids []string) error {
	for _, id := range ids {
		if err := uuid.Validate(id); err != nil {
			return fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
		}
	}
	return nil
}

func (r *CartRepository) DeleteMany(ctx context.Context, ids []string) (domain.DeleteResult, error) {
	if len(ids) == 0 {
		return domain.DeleteResult{Acknowledged: true}, nil // Nothing to settle
	}
	return deleted(r.DB.WithContext(ctx).Where("id IN ?", ids).Delete(&domain.CartEntry{}))
}
