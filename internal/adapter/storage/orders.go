package storage

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/niksmo/warehouse/internal/core/domain"
	"github.com/niksmo/warehouse/internal/core/port"
)

var _ port.OrdersStorage = (*Orders)(nil)

// Orders is an in-memory order store. New orders go to the head,
// so the natural order is most recently created first.
type Orders struct {
	mu     sync.RWMutex
	items  []domain.Order
	nextID int
}

func NewOrders() *Orders {
	return &Orders{nextID: 1}
}

func (s *Orders) List(ctx context.Context) ([]domain.Order, error) {
	const op = "Orders.List"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items), nil
}

func (s *Orders) Create(ctx context.Context, o domain.Order) (int, error) {
	const op = "Orders.Create"

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = s.nextID
	s.nextID++
	s.items = slices.Insert(s.items, 0, o)
	return o.ID, nil
}

// Mutate applies fn to the stored order under the store lock.
//
// Returns [domain.ErrNotFound] if no order has the identifier.
func (s *Orders) Mutate(
	ctx context.Context, id int, fn func(*domain.Order) error,
) error {
	const op = "Orders.Mutate"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.items, func(o domain.Order) bool {
		return o.ID == id
	})
	if i < 0 {
		return fmt.Errorf("%s: order %d: %w", op, id, domain.ErrNotFound)
	}

	if err := fn(&s.items[i]); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
