package domain

import (
	"strings"
	"time"
)

type (
	Product struct {
		ID               int
		VendorCode       string
		Name             string
		Description      string
		ImageURL         string
		Price            float64
		CurrencyCode     string
		MinStock         int
		IsArchive        bool
		CreatedOnUTC     time.Time
		ModifiedOnUTC    time.Time
		CategoryName     string
		ManufacturerName string
		Barcodes         []string
		Locations        []StockLocation
	}

	StockLocation struct {
		LocationID     int
		Quantity       int
		LocationName   string
		LastUpdatedUTC time.Time
	}
)

// TotalQuantity sums the quantity over all stock locations.
func (p Product) TotalQuantity() int {
	var total int
	for _, l := range p.Locations {
		total += l.Quantity
	}
	return total
}

// IsLowStock reports whether the total quantity is at or below
// the minimal stock threshold.
func (p Product) IsLowStock() bool {
	return p.TotalQuantity() <= p.MinStock
}

// MatchesSearch reports whether the product name or vendor code
// contains the search substring, case-insensitively.
func (p Product) MatchesSearch(search string) bool {
	if search == "" {
		return true
	}
	s := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Name), s) ||
		strings.Contains(strings.ToLower(p.VendorCode), s)
}

type (
	ProductDraft struct {
		VendorCode       string
		Name             string
		Price            float64
		Description      string
		ImageURL         string
		CurrencyCode     string
		MinStock         int
		CategoryName     string
		ManufacturerName string
		Barcodes         []string
	}

	ProductUpdate struct {
		ID           int
		VendorCode   string
		Name         string
		Price        float64
		Description  string
		ImageURL     string
		CurrencyCode string
		MinStock     int
	}
)
