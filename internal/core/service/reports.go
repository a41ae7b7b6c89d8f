package service

import (
	"context"
	"fmt"
	"time"

	"github.com/niksmo/warehouse/internal/core/domain"
	"github.com/niksmo/warehouse/internal/core/port"
)

var _ port.Reporter = (*Reports)(nil)

const defaultQueryTimeout = 5 * time.Second

// Reports serves the read-only aggregation queries.
// Every query runs under a bounded timeout.
type Reports struct {
	storage port.ReportsStorage
	timeout time.Duration
}

func NewReports(storage port.ReportsStorage) Reports {
	return Reports{storage, defaultQueryTimeout}
}

func (s Reports) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	const op = "Reports.Dashboard"

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	d, err := s.storage.Dashboard(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("%s: %w", op, err)
	}
	return d, nil
}

func (s Reports) StockReport(
	ctx context.Context, search string,
) ([]domain.StockReportRow, error) {
	const op = "Reports.StockReport"

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.storage.ProductsStock(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rows, nil
}

func (s Reports) RecentOrders(
	ctx context.Context,
) ([]domain.RecentOrderRow, error) {
	const op = "Reports.RecentOrders"

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.storage.RecentOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rows, nil
}
