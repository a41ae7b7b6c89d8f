package service

import (
	"context"
	"fmt"
	"time"

	"github.com/niksmo/warehouse/internal/core/domain"
	"github.com/niksmo/warehouse/internal/core/port"
)

var _ port.Catalog = (*Catalog)(nil)

type Catalog struct {
	storage port.ProductsStorage
}

func NewCatalog(storage port.ProductsStorage) Catalog {
	return Catalog{storage}
}

// ListProducts returns a page of not archived products.
// A non-empty search filters by name or vendor code substring,
// case-insensitively.
func (s Catalog) ListProducts(
	ctx context.Context, search string, page, pageSize int,
) (domain.Page[domain.Product], error) {
	const op = "Catalog.ListProducts"

	if err := ctx.Err(); err != nil {
		return domain.Page[domain.Product]{}, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.storage.List(ctx)
	if err != nil {
		return domain.Page[domain.Product]{}, fmt.Errorf("%s: %w", op, err)
	}

	var filtered []domain.Product
	for _, p := range ps {
		if p.IsArchive || !p.MatchesSearch(search) {
			continue
		}
		filtered = append(filtered, p)
	}

	return domain.Paginate(filtered, page, pageSize), nil
}

func (s Catalog) CreateProduct(
	ctx context.Context, draft domain.ProductDraft,
) (int, error) {
	const op = "Catalog.CreateProduct"

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.validateDraft(draft); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	p := domain.Product{
		VendorCode:       draft.VendorCode,
		Name:             draft.Name,
		Description:      draft.Description,
		ImageURL:         draft.ImageURL,
		Price:            draft.Price,
		CurrencyCode:     draft.CurrencyCode,
		MinStock:         draft.MinStock,
		CreatedOnUTC:     now,
		ModifiedOnUTC:    now,
		CategoryName:     draft.CategoryName,
		ManufacturerName: draft.ManufacturerName,
		Barcodes:         draft.Barcodes,
	}

	id, err := s.storage.Create(ctx, p)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// UpdateProduct replaces the mutable product fields and refreshes
// the modified timestamp. Stock locations and the archived flag
// stay untouched.
func (s Catalog) UpdateProduct(
	ctx context.Context, upd domain.ProductUpdate,
) error {
	const op = "Catalog.UpdateProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if upd.VendorCode == "" || upd.Name == "" || upd.Price <= 0 {
		return fmt.Errorf(
			"%s: vendorCode, name, priceTypeValue are required: %w",
			op, domain.ErrValidation,
		)
	}

	err := s.storage.Mutate(ctx, upd.ID, func(p *domain.Product) error {
		p.VendorCode = upd.VendorCode
		p.Name = upd.Name
		p.Description = upd.Description
		p.ImageURL = upd.ImageURL
		p.Price = upd.Price
		p.CurrencyCode = upd.CurrencyCode
		p.MinStock = upd.MinStock
		p.ModifiedOnUTC = time.Now().UTC()
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ArchiveProduct marks the product as archived. Archived products
// keep the identifier and history but leave the default listings.
func (s Catalog) ArchiveProduct(ctx context.Context, id int) error {
	const op = "Catalog.ArchiveProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err := s.storage.Mutate(ctx, id, func(p *domain.Product) error {
		p.IsArchive = true
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Catalog) validateDraft(draft domain.ProductDraft) error {
	if draft.VendorCode == "" || draft.Name == "" || draft.Price <= 0 {
		return fmt.Errorf(
			"vendorCode, name, priceTypeValue are required: %w",
			domain.ErrValidation,
		)
	}
	return nil
}
