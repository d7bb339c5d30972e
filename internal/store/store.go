// Package store declares the repositories the HTTP layer depends on. The
// mongostore and sqlstore packages provide the implementations.
package store

import (
	"context"

	"github.com/Rasel9360/bistro-boss-server/internal/domain"
)

// UserRepository manages the users collection
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	// FindByEmail returns domain.ErrNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// InsertIfAbsent stores u unless its email is taken, in which case it
	// returns domain.AlreadyExists() and no error.
	InsertIfAbsent(ctx context.Context, u *domain.User) (domain.InsertResult, error)
	Delete(ctx context.Context, id string) (domain.DeleteResult, error)
	MakeAdmin(ctx context.Context, id string) (domain.UpdateResult, error)
}

// MenuRepository manages menu items
type MenuRepository interface {
	// List returns items newest first.
	List(ctx context.Context) ([]domain.MenuItem, error)
	// Get returns domain.ErrNotFound when id matches nothing.
	Get(ctx context.Context, id string) (*domain.MenuItem, error)
	Insert(ctx context.Context, item *domain.MenuItem) (domain.InsertResult, error)
	// Upsert sets the item's fields on id, creating the item when absent.
	Upsert(ctx context.Context, id string, item *domain.MenuItem) (domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (domain.DeleteResult, error)
}

// ReviewRepository is read-only
type ReviewRepository interface {
	List(ctx context.Context) ([]domain.Review, error)
}

// CartRepository manages cart entries
type CartRepository interface {
	// List returns the entries owned by email, or every entry when email is empty.
	List(ctx context.Context, email string) ([]domain.CartEntry, error)
	Insert(ctx context.Context, entry *domain.CartEntry) (domain.InsertResult, error)
	Delete(ctx context.Context, id string) (domain.DeleteResult, error)
	DeleteMany(ctx context.Context, ids []string) (domain.DeleteResult, error)
	// ValidateIDs returns domain.ErrInvalidID when any id is malformed for
	// this backend, without touching storage.
	ValidateIDs(ids []string) error
}

// PaymentRepository manages settled payments
type PaymentRepository interface {
	// ListByEmail returns the owner's payments newest first.
	ListByEmail(ctx context.Context, email string) ([]domain.Payment, error)
	Insert(ctx context.Context, p *domain.Payment) (domain.InsertResult, error)
}

// StatsRepository runs the reporting queries
type StatsRepository interface {
	Summary(ctx context.Context) (domain.PaymentStats, error)
	OrderStats(ctx context.Context) ([]domain.CategoryStat, error)
}

// Store bundles every repository behind one backend
type Store struct {
	Users    UserRepository
	Menu     MenuRepository
	Reviews  ReviewRepository
	Carts    CartRepository
	Payments PaymentRepository
	Stats    StatsRepository
}
