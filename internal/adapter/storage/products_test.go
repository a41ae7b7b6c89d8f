package storage_test

import (
	"testing"

	"github.com/niksmo/warehouse/internal/adapter/storage"
	"github.com/niksmo/warehouse/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducts(t *testing.T) {
	t.Run("CreateAssignsSequentialIDs", func(t *testing.T) {
		s := storage.NewProducts()

		id1, err := s.Create(t.Context(), domain.Product{Name: "first"})
		require.NoError(t, err)
		id2, err := s.Create(t.Context(), domain.Product{Name: "second"})
		require.NoError(t, err)

		assert.Equal(t, 1, id1)
		assert.Equal(t, 2, id2)
	})

	t.Run("ListReturnsSnapshot", func(t *testing.T) {
		s := storage.NewProducts()
		_, err := s.Create(t.Context(), domain.Product{Name: "first"})
		require.NoError(t, err)

		ps, err := s.List(t.Context())
		require.NoError(t, err)
		require.Len(t, ps, 1)

		ps[0].Name = "mutated"

		ps2, err := s.List(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "first", ps2[0].Name)
	})

	t.Run("MutateAppliesChange", func(t *testing.T) {
		s := storage.NewProducts()
		id, err := s.Create(t.Context(), domain.Product{Name: "first"})
		require.NoError(t, err)

		err = s.Mutate(t.Context(), id, func(p *domain.Product) error {
			p.IsArchive = true
			return nil
		})
		require.NoError(t, err)

		ps, err := s.List(t.Context())
		require.NoError(t, err)
		assert.True(t, ps[0].IsArchive)
	})

	t.Run("MutateUnknownID", func(t *testing.T) {
		s := storage.NewProducts()
		err := s.Mutate(t.Context(), 42, func(p *domain.Product) error {
			return nil
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("MutatePropagatesFnError", func(t *testing.T) {
		s := storage.NewProducts()
		id, err := s.Create(t.Context(), domain.Product{Name: "first"})
		require.NoError(t, err)

		err = s.Mutate(t.Context(), id, func(p *domain.Product) error {
			return domain.ErrValidation
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
