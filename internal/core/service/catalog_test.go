package service_test

import (
	"testing"

	"github.com/niksmo/warehouse/internal/adapter/storage"
	"github.com/niksmo/warehouse/internal/core/domain"
	"github.com/niksmo/warehouse/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCreateProduct(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		catalog := service.NewCatalog(storage.NewProducts())

		id, err := catalog.CreateProduct(t.Context(), domain.ProductDraft{
			VendorCode:   "PHN-001",
			Name:         "Смартфон Galaxy S24",
			Price:        89990,
			CurrencyCode: "RUB",
			MinStock:     10,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, id)

		page, err := catalog.ListProducts(t.Context(), "", 1, 20)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)

		p := page.Items[0]
		assert.Equal(t, "Смартфон Galaxy S24", p.Name)
		assert.False(t, p.CreatedOnUTC.IsZero())
		assert.Equal(t, p.CreatedOnUTC, p.ModifiedOnUTC)
	})

	t.Run("MissingRequiredFields", func(t *testing.T) {
		catalog := service.NewCatalog(storage.NewProducts())

		_, err := catalog.CreateProduct(t.Context(), domain.ProductDraft{
			Name: "no vendor code", Price: 100,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("NonPositivePrice", func(t *testing.T) {
		catalog := service.NewCatalog(storage.NewProducts())

		_, err := catalog.CreateProduct(t.Context(), domain.ProductDraft{
			VendorCode: "PHN-001", Name: "free", Price: 0,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCatalogListProducts(t *testing.T) {
	seed := func(t *testing.T) service.Catalog {
		t.Helper()
		catalog := service.NewCatalog(storage.NewProducts())
		drafts := []domain.ProductDraft{
			{VendorCode: "PHN-001", Name: "Смартфон Galaxy S24", Price: 89990},
			{VendorCode: "LPT-001", Name: "Ноутбук ThinkPad X1", Price: 149990},
			{VendorCode: "PHN-002", Name: "Смартфон Galaxy A55", Price: 39990},
		}
		for _, d := range drafts {
			_, err := catalog.CreateProduct(t.Context(), d)
			require.NoError(t, err)
		}
		return catalog
	}

	t.Run("SearchByName", func(t *testing.T) {
		catalog := seed(t)

		page, err := catalog.ListProducts(t.Context(), "galaxy", 1, 20)
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.Equal(t, 2, page.Total)
	})

	t.Run("SearchByVendorCode", func(t *testing.T) {
		catalog := seed(t)

		page, err := catalog.ListProducts(t.Context(), "lpt", 1, 20)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Ноутбук ThinkPad X1", page.Items[0].Name)
	})

	t.Run("ArchivedExcluded", func(t *testing.T) {
		catalog := seed(t)
		require.NoError(t, catalog.ArchiveProduct(t.Context(), 1))

		page, err := catalog.ListProducts(t.Context(), "", 1, 20)
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		for _, p := range page.Items {
			assert.NotEqual(t, 1, p.ID)
		}
	})

	t.Run("Pagination", func(t *testing.T) {
		catalog := seed(t)

		page, err := catalog.ListProducts(t.Context(), "", 2, 2)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, 3, page.Total)
		assert.Equal(t, 2, page.TotalPages)
	})
}

func TestCatalogUpdateProduct(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		catalog := service.NewCatalog(storage.NewProducts())
		id, err := catalog.CreateProduct(t.Context(), domain.ProductDraft{
			VendorCode: "PHN-001", Name: "old name", Price: 100,
		})
		require.NoError(t, err)

		err = catalog.UpdateProduct(t.Context(), domain.ProductUpdate{
			ID:         id,
			VendorCode: "PHN-001",
			Name:       "new name",
			Price:      200,
		})
		require.NoError(t, err)

		page, err := catalog.ListProducts(t.Context(), "", 1, 20)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)

		p := page.Items[0]
		assert.Equal(t, "new name", p.Name)
		assert.InDelta(t, 200, p.Price, 1e-9)
		assert.True(t, p.ModifiedOnUTC.After(p.CreatedOnUTC) ||
			p.ModifiedOnUTC.Equal(p.CreatedOnUTC))
	})

	t.Run("UnknownID", func(t *testing.T) {
		catalog := service.NewCatalog(storage.NewProducts())

		err := catalog.UpdateProduct(t.Context(), domain.ProductUpdate{
			ID: 42, VendorCode: "PHN-001", Name: "name", Price: 100,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("MissingRequiredFields", func(t *testing.T) {
		catalog := service.NewCatalog(storage.NewProducts())

		err := catalog.UpdateProduct(t.Context(), domain.ProductUpdate{ID: 1})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCatalogArchiveProduct(t *testing.T) {
	t.Run("UnknownID", func(t *testing.T) {
		catalog := service.NewCatalog(storage.NewProducts())

		err := catalog.ArchiveProduct(t.Context(), 42)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ArchiveKeepsIdentifier", func(t *testing.T) {
		p := storage.NewProducts()
		catalog := service.NewCatalog(p)
		id, err := catalog.CreateProduct(t.Context(), domain.ProductDraft{
			VendorCode: "PHN-001", Name: "name", Price: 100,
		})
		require.NoError(t, err)

		require.NoError(t, catalog.ArchiveProduct(t.Context(), id))

		ps, err := p.List(t.Context())
		require.NoError(t, err)
		require.Len(t, ps, 1)
		assert.True(t, ps[0].IsArchive)
	})
}
