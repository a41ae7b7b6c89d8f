package storage_test

import (
	"testing"

	"github.com/niksmo/warehouse/internal/adapter/storage"
	"github.com/niksmo/warehouse/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrders(t *testing.T) {
	t.Run("ListNewestFirst", func(t *testing.T) {
		s := storage.NewOrders()

		id1, err := s.Create(t.Context(), domain.Order{Username: "first"})
		require.NoError(t, err)
		id2, err := s.Create(t.Context(), domain.Order{Username: "second"})
		require.NoError(t, err)

		os, err := s.List(t.Context())
		require.NoError(t, err)
		require.Len(t, os, 2)
		assert.Equal(t, id2, os[0].ID)
		assert.Equal(t, id1, os[1].ID)
	})

	t.Run("MutateAppliesChange", func(t *testing.T) {
		s := storage.NewOrders()
		id, err := s.Create(
			t.Context(), domain.Order{Status: domain.OrderActive},
		)
		require.NoError(t, err)

		err = s.Mutate(t.Context(), id, func(o *domain.Order) error {
			o.Status = domain.OrderCompleted
			return nil
		})
		require.NoError(t, err)

		os, err := s.List(t.Context())
		require.NoError(t, err)
		assert.Equal(t, domain.OrderCompleted, os[0].Status)
	})

	t.Run("MutateUnknownID", func(t *testing.T) {
		s := storage.NewOrders()
		err := s.Mutate(t.Context(), 42, func(o *domain.Order) error {
			return nil
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
