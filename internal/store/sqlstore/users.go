package sqlstore

import (
	"context" // Request-scoped deadlines
	"errors"  // Sentinel comparison
	"fmt"     // Error wrapping

	"gorm.io/gorm" // GORM ORM

	"github.com/Rasel9360/bistro-boss-server/internal/domain" // Importing domain models
)

// UserRepository is backed by the users table
type UserRepository struct {
	DB *gorm.DB // Database connection
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{} // Encode empty results as []
	if err := r.DB.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, notFound(err) // Map gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *UserRepository) InsertIfAbsent(ctx context.Context, u *domain.User) (domain.InsertResult, error) {
	_, err := r.FindByEmail(ctx, u.Email)
	if err == nil {
		return domain.AlreadyExists(), nil // Already registered
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.InsertResult{}, fmt.Errorf("find user by email: %w", err)
	}
	row := *u
	row.ID = newID() // Assign a UUID
	err = r.DB.WithContext(ctx).Create(&row).Error
	// Lost a race against a concurrent insert on the unique index
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.AlreadyExists(), nil
	}
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("insert user: %w", err)
	}
	return domain.Inserted(row.ID), nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	return deleted(r.DB.WithContext(ctx).Where("id = ?", id).Delete(&domain.User{}))
}

func (r *UserRepository) MakeAdmin(ctx context.Context, id string) (domain.UpdateResult, error) {
	var current domain.User
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&current).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UpdateResult{Acknowledged: true}, nil // Nothing matched
		}
		return domain.UpdateResult{}, fmt.Errorf("find user: %w", err)
	}
	if current.IsAdmin() {
		return domain.UpdateResult{Acknowledged: true, MatchedCount: 1}, nil // Already admin
	}
	tx := r.DB.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Update("role", domain.RoleAdmin) // Promote
	if tx.Error != nil {
		return domain.UpdateResult{}, fmt.Errorf("promote user: %w", tx.Error)
	}
	return domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: tx.RowsAffected}, nil
}
