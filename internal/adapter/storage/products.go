package storage

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/niksmo/warehouse/internal/core/domain"
	"github.com/niksmo/warehouse/internal/core/port"
)

var _ port.ProductsStorage = (*Products)(nil)

// Products is an in-memory product store. The identifier counter
// is monotonic, identifiers are never reused.
type Products struct {
	mu     sync.RWMutex
	items  []domain.Product
	nextID int
}

func NewProducts() *Products {
	return &Products{nextID: 1}
}

// List returns a snapshot of all products in insertion order.
func (s *Products) List(ctx context.Context) ([]domain.Product, error) {
	const op = "Products.List"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items), nil
}

func (s *Products) Create(
	ctx context.Context, p domain.Product,
) (int, error) {
	const op = "Products.Create"

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextID
	s.nextID++
	s.items = append(s.items, p)
	return p.ID, nil
}

// Mutate applies fn to the stored product under the store lock,
// making the read-modify-write atomic.
//
// Returns [domain.ErrNotFound] if no product has the identifier.
func (s *Products) Mutate(
	ctx context.Context, id int, fn func(*domain.Product) error,
) error {
	const op = "Products.Mutate"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.items, func(p domain.Product) bool {
		return p.ID == id
	})
	if i < 0 {
		return fmt.Errorf("%s: product %d: %w", op, id, domain.ErrNotFound)
	}

	if err := fn(&s.items[i]); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
