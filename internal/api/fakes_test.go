package api

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Rasel9360/bistro-boss-server/internal/domain"
	"github.com/Rasel9360/bistro-boss-server/internal/payment"
	"github.com/Rasel9360/bistro-boss-server/internal/store"
)

// memStore is an in-memory backend for handler tests. Ids starting with
// "bad" are treated as unparseable.
type memStore struct {
	mu       sync.Mutex
	seq      int
	users    []domain.User
	menu     []domain.MenuItem
	reviews  []domain.Review
	carts    []domain.CartEntry
	payments []domain.Payment

	failDeleteMany bool
}

func (m *memStore) store() store.Store {
	return store.Store{
		Users:    memUsers{m},
		Menu:     memMenu{m},
		Reviews:  memReviews{m},
		Carts:    memCarts{m},
		Payments: memPayments{m},
		Stats:    memStats{m},
	}
}

func (m *memStore) nextID() string {
	m.seq++
	return fmt.Sprintf("id%03d", m.seq)
}

func checkID(id string) error {
	if strings.HasPrefix(id, "bad") {
		return domain.ErrInvalidID
	}
	return nil
}

type memUsers struct{ *memStore }

func (m memUsers) List(context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.User{}, m.users...), nil
}

func (m memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m memUsers) InsertIfAbsent(_ context.Context, u *domain.User) (domain.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return domain.AlreadyExists(), nil
		}
	}
	row := *u
	row.ID = m.nextID()
	m.users = append(m.users, row)
	return domain.Inserted(row.ID), nil
}

func (m memUsers) Delete(_ context.Context, id string) (domain.DeleteResult, error) {
	if err := checkID(id); err != nil {
		return domain.DeleteResult{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, u := range m.users {
		if u.ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return domain.DeleteResult{Acknowledged: true}, nil
}

func (m memUsers) MakeAdmin(_ context.Context, id string) (domain.UpdateResult, error) {
	if err := checkID(id); err != nil {
		return domain.UpdateResult{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			m.users[i].Role = domain.RoleAdmin
			return domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return domain.UpdateResult{Acknowledged: true}, nil
}

type memMenu struct{ *memStore }

func (m memMenu) List(context.Context) ([]domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.MenuItem, 0, len(m.menu))
	for i := len(m.menu) - 1; i >= 0; i-- {
		out = append(out, m.menu[i])
	}
	return out, nil
}

func (m memMenu) Get(_ context.Context, id string) (*domain.MenuItem, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.menu {
		if it.ID == id {
			it := it
			return &it, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m memMenu) Insert(_ context.Context, item *domain.MenuItem) (domain.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := *item
	row.ID = m.nextID()
	m.menu = append(m.menu, row)
	return domain.Inserted(row.ID), nil
}

func (m memMenu) Upsert(_ context.Context, id string, item *domain.MenuItem) (domain.UpdateResult, error) {
	if err := checkID(id); err != nil {
		return domain.UpdateResult{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	row := *item
	row.ID = id
	for i := range m.menu {
		if m.menu[i].ID == id {
			m.menu[i] = row
			return domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	m.menu = append(m.menu, row)
	return domain.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &row.ID}, nil
}

func (m memMenu) Delete(_ context.Context, id string) (domain.DeleteResult, error) {
	if err := checkID(id); err != nil {
		return domain.DeleteResult{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.menu {
		if it.ID == id {
			m.menu = append(m.menu[:i], m.menu[i+1:]...)
			return domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return domain.DeleteResult{Acknowledged: true}, nil
}

type memReviews struct{ *memStore }

func (m memReviews) List(context.Context) ([]domain.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Review{}, m.reviews...), nil
}

type memCarts struct{ *memStore }

func (m memCarts) List(_ context.Context, email string) ([]domain.CartEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.CartEntry{}
	for _, e := range m.carts {
		if email == "" || e.Email == email {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m memCarts) Insert(_ context.Context, entry *domain.CartEntry) (domain.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := *entry
	row.ID = m.nextID()
	m.carts = append(m.carts, row)
	return domain.Inserted(row.ID), nil
}

func (m memCarts) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	if err := checkID(id); err != nil {
		return domain.DeleteResult{}, err
	}
	return m.remove([]string{id}), nil
}

func (m memCarts) ValidateIDs(ids []string) error {
	for _, id := range ids {
		if err := checkID(id); err != nil {
			return err
		}
	}
	return nil
}

func (m memCarts) DeleteMany(_ context.Context, ids []string) (domain.DeleteResult, error) {
	if err := m.ValidateIDs(ids); err != nil {
		return domain.DeleteResult{}, err
	}
	if m.failDeleteMany {
		return domain.DeleteResult{}, errors.New("connection reset")
	}
	return m.remove(ids), nil
}

func (m memCarts) remove(ids []string) domain.DeleteResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	drop := map[string]bool{}
	for _, id := range ids {
		drop[id] = true
	}
	kept := m.carts[:0]
	var n int64
	for _, e := range m.carts {
		if drop[e.ID] {
			n++
			continue
		}
		kept = append(kept, e)
	}
	m.carts = kept
	return domain.DeleteResult{Acknowledged: true, DeletedCount: n}
}

type memPayments struct{ *memStore }

func (m memPayments) ListByEmail(_ context.Context, email string) ([]domain.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Payment{}
	for i := len(m.payments) - 1; i >= 0; i-- {
		if m.payments[i].Email == email {
			out = append(out, m.payments[i])
		}
	}
	return out, nil
}

func (m memPayments) Insert(_ context.Context, p *domain.Payment) (domain.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := *p
	row.ID = m.nextID()
	m.payments = append(m.payments, row)
	return domain.Inserted(row.ID), nil
}

type memStats struct{ *memStore }

func (m memStats) Summary(context.Context) (domain.PaymentStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := domain.PaymentStats{
		Users:     int64(len(m.users)),
		MenuItems: int64(len(m.menu)),
		Orders:    int64(len(m.payments)),
	}
	for _, p := range m.payments {
		stats.TotalRevenue += p.Price
	}
	return stats, nil
}

func (m memStats) OrderStats(context.Context) ([]domain.CategoryStat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	menu := map[string]domain.MenuItem{}
	for _, it := range m.menu {
		menu[it.ID] = it
	}
	var ids [][]string
	for _, p := range m.payments {
		ids = append(ids, p.MenuItemIDs)
	}
	return domain.BreakdownByCategory(ids, menu), nil
}

// fakeGateway records the requested price
type fakeGateway struct {
	mu    sync.Mutex
	price float64
	err   error
}

func (g *fakeGateway) CreateIntent(_ context.Context, price float64) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.price = price
	if g.err != nil {
		return "", fmt.Errorf("%w: %v", payment.ErrGateway, g.err)
	}
	return fmt.Sprintf("pi_secret_%d", payment.ToMinorUnits(price)), nil
}
