package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/niksmo/warehouse/internal/core/domain"
	"github.com/niksmo/warehouse/internal/core/port"
)

var _ port.ImagesStorage = (*Images)(nil)

// Images is an in-memory image store keyed by identifier.
// The content is lost on process restart.
type Images struct {
	mu    sync.RWMutex
	items map[string]domain.Image
}

func NewImages() *Images {
	return &Images{items: make(map[string]domain.Image)}
}

func (s *Images) Store(ctx context.Context, img domain.Image) error {
	const op = "Images.Store"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[img.ID] = img
	return nil
}

// Get returns the stored image by identifier.
//
// Returns [domain.ErrNotFound] if the identifier is unknown.
func (s *Images) Get(ctx context.Context, id string) (domain.Image, error) {
	const op = "Images.Get"

	if err := ctx.Err(); err != nil {
		return domain.Image{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	img, ok := s.items[id]
	if !ok {
		return domain.Image{}, fmt.Errorf(
			"%s: image %q: %w", op, id, domain.ErrNotFound,
		)
	}
	return img, nil
}
