package sqlstore

import (
	"context" // Request-scoped deadlines
	"fmt"     // Error wrapping

	"gorm.io/gorm" // GORM ORM

	"github.com/Rasel9360/bistro-boss-server/internal/domain" // Importing domain models
)

// MenuRepository is backed by the menu table
type MenuRepository struct {
	DB *gorm.DB // Database connection
}

func (r *MenuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	items := []domain.MenuItem{} // Encode empty results as []
	// Newest first
	if err := r.DB.WithContext(ctx).Order("created_at desc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	return items, nil
}

func (r *MenuRepository) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	var item domain.MenuItem
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, notFound(err) // Map gorm.ErrRecordNotFound
	}
	return &item, nil
}

func (r *MenuRepository) Insert(ctx context.Context, item *domain.MenuItem) (domain.InsertResult, error) {
	row := *item
	row.ID = newID() // Assign a UUID
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.InsertResult{}, fmt.Errorf("insert menu item: %w", err)
	}
	return domain.Inserted(row.ID), nil
}

func (r *MenuRepository) Upsert(ctx context.Context, id string, item *domain.MenuItem) (domain.UpdateResult, error) {
	var matched int64 // Rows already carrying id
	if err := r.DB.WithContext(ctx).Model(&domain.MenuItem{}).Where("id = ?", id).Count(&matched).Error; err != nil {
		return domain.UpdateResult{}, fmt.Errorf("count menu item: %w", err)
	}
	if matched == 0 {
		row := *item
		row.ID = id // Keep the caller's id
		if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
			return domain.UpdateResult{}, fmt.Errorf("upsert menu item: %w", err)
		}
		return domain.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &row.ID}, nil
	}
	// A map so zero values are written too
	tx := r.DB.WithContext(ctx).Model(&domain.MenuItem{}).Where("id = ?", id).Updates(map[string]any{
		"name":     item.Name,
		"category": item.Category,
		"price":    item.Price,
		"image":    item.Image,
		"recipe":   item.Recipe,
	})
	if tx.Error != nil {
		return domain.UpdateResult{}, fmt.Errorf("update menu item: %w", tx.Error)
	}
	return domain.UpdateResult{Acknowledged: true, MatchedCount: matched, ModifiedCount: tx.RowsAffected}, nil
}

func (r *MenuRepository) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	return deleted(r.DB.WithContext(ctx).Where("id = ?", id).Delete(&domain.MenuItem{}))
}

// ReviewRepository is backed by the reviews table
type ReviewRepository struct {
	DB *gorm.DB // Database connection
}

func (r *ReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	reviews := []domain.Review{} // Encode empty results as []
	if err := r.DB.WithContext(ctx).Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}
