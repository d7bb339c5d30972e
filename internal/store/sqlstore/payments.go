package sqlstore

import (
	"context" // Request-scoped deadlines
	"fmt"     // Error wrapping

	"gorm.io/gorm" // GORM ORM

	"github.com/Rasel9360/bistro-boss-server/internal/domain" // Importing domain models
)

// PaymentRepository is backed by the payments table
type PaymentRepository struct {
	DB *gorm.DB // Database connection
}

func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	payments := []domain.Payment{} // Encode empty results as []
	// Owner's payments, newest first
	if err := r.DB.WithContext(ctx).Where("email = ?", email).Order("created_at desc").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

func (r *PaymentRepository) Insert(ctx context.Context, p *domain.Payment) (domain.InsertResult, error) {
	row := *p
	row.ID = newID() // Assign a UUID
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.InsertResult{}, fmt.Errorf("insert payment: %w", err)
	}
	return domain.Inserted(row.ID), nil
}

// StatsRepository runs the reporting queries
type StatsRepository struct {
	DB *gorm.DB // Database connection
}

func (r *StatsRepository) Summary(ctx context.Context) (domain.PaymentStats, error) {
	var stats domain.PaymentStats
	db := r.DB.WithContext(ctx)
	if err := db.Model(&domain.User{}).Count(&stats.Users).Error; err != nil {
		return stats, fmt.Errorf("count users: %w", err)
	}
	if err := db.Model(&domain.MenuItem{}).Count(&stats.MenuItems).Error; err != nil {
		return stats, fmt.Errorf("count menu: %w", err)
	}
	if err := db.Model(&domain.Payment{}).Count(&stats.Orders).Error; err != nil {
		return stats, fmt.Errorf("count payments: %w", err)
	}
	// No payments sums to 0
	if err := db.Model(&domain.Payment{}).Select("COALESCE(SUM(price), 0)").Scan(&stats.TotalRevenue).Error; err != nil {
		return stats, fmt.Errorf("sum revenue: %w", err)
	}
	return stats, nil
}

// OrderStats resolves menu item ids with one IN query and groups in Go
func (r *StatsRepository) OrderStats(ctx context.Context) ([]domain.CategoryStat, error) {
	db := r.DB.WithContext(ctx)
	var payments []domain.Payment
	if err := db.Select("menu_item_ids").Find(&payments).Error; err != nil { // Only the id lists are needed.
		return nil, fmt.Errorf("load payments: %w", err)
	}
	perPayment := make([][]string, 0, len(payments))
	seen := map[string]struct{}{} // Distinct ids for the IN query
	var ids []string
	for _, p := range payments {
		perPayment = append(perPayment, p.MenuItemIDs)
		for _, id := range p.MenuItemIDs {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		return []domain.CategoryStat{}, nil
	}
	var items []domain.MenuItem
	if err := db.Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("load menu items: %w", err)
	}
	menu := make(map[string]domain.MenuItem, len(items)) // Index by id
	for _, it := range items {
		menu[it.ID] = it
	}
	return domain.BreakdownByCategory(perPayment, menu), nil
}
