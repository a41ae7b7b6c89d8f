package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/warehouse/internal/core/domain"
	"github.com/niksmo/warehouse/internal/core/port"
)

var _ port.ReportsStorage = (*ReportsRepository)(nil)

// ReportsRepository serves the read-only aggregation queries
// against the reporting database.
type ReportsRepository struct {
	sqldb sqldb
}

func NewReportsRepository(sqldb sqldb) ReportsRepository {
	return ReportsRepository{sqldb}
}

func (r ReportsRepository) Dashboard(
	ctx context.Context,
) (domain.Dashboard, error) {
	const op = "ReportsRepository.Dashboard"

	if err := ctx.Err(); err != nil {
		return domain.Dashboard{}, fmt.Errorf("%s: %w", op, err)
	}

	var d domain.Dashboard

	stats, err := r.queryStats(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("%s: %w", op, err)
	}
	d.Stats = stats

	sales, err := r.queryMonthlySales(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("%s: %w", op, err)
	}
	d.SalesData = sales

	categories, err := r.queryCategoryCounts(ctx)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("%s: %w", op, err)
	}
	d.CategoryData = categories

	return d, nil
}

func (r ReportsRepository) queryStats(
	ctx context.Context,
) (domain.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM products) AS total_products,
			(SELECT COUNT(*) FROM orders
				WHERE status != 'completed') AS active_orders,
			(SELECT COUNT(*) FROM outlets
				WHERE is_active = true) AS active_outlets,
			(SELECT COUNT(*) FROM write_offs
				WHERE created_on_utc >= NOW() - INTERVAL '7 days'
			) AS recent_write_offs;`

	var s domain.DashboardStats
	err := r.sqldb.QueryRowContext(ctx, query).Scan(
		&s.TotalProducts, &s.ActiveOrders,
		&s.ActiveOutlets, &s.RecentWriteOffs,
	)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	return s, nil
}

func (r ReportsRepository) queryMonthlySales(
	ctx context.Context,
) ([]domain.MonthlySales, error) {
	query := `
		SELECT
			TO_CHAR(order_date, 'Mon') AS month,
			COALESCE(SUM(total_amount), 0)::float8 AS sales,
			COUNT(*) AS orders
		FROM orders
		WHERE order_date >= NOW() - INTERVAL '6 months'
		GROUP BY DATE_TRUNC('month', order_date), TO_CHAR(order_date, 'Mon')
		ORDER BY DATE_TRUNC('month', order_date);`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer r.closeRows(rows)

	var vs []domain.MonthlySales
	for rows.Next() {
		var v domain.MonthlySales
		if err := rows.Scan(&v.Month, &v.Sales, &v.Orders); err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, rows.Err()
}

func (r ReportsRepository) queryCategoryCounts(
	ctx context.Context,
) ([]domain.CategoryCount, error) {
	query := `
		SELECT c.name, COUNT(p.id) AS value
		FROM categories c
		LEFT JOIN products p ON c.id = p.category_id
		GROUP BY c.name
		ORDER BY value DESC;`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer r.closeRows(rows)

	var vs []domain.CategoryCount
	for rows.Next() {
		var v domain.CategoryCount
		if err := rows.Scan(&v.Name, &v.Value); err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, rows.Err()
}

// ProductsStock returns the per-product stock summary.
// The stock status is derived in SQL from the summed location
// quantities against the minimal stock threshold.
func (r ReportsRepository) ProductsStock(
	ctx context.Context, search string,
) ([]domain.StockReportRow, error) {
	const op = "ReportsRepository.ProductsStock"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT
			p.id,
			p.name,
			COALESCE(c.name, '') AS category,
			COALESCE(SUM(pl.quantity), 0) AS stock,
			p.price::float8,
			CASE
				WHEN COALESCE(SUM(pl.quantity), 0) = 0 THEN 'Нет'
				WHEN COALESCE(SUM(pl.quantity), 0) <= p.min_stock_level
					THEN 'Мало'
				ELSE 'В наличии'
			END AS status
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		LEFT JOIN product_locations pl ON p.id = pl.product_id
		WHERE p.name ILIKE $1
		GROUP BY p.id, p.name, c.name, p.price, p.min_stock_level
		ORDER BY p.name;`

	rows, err := r.sqldb.QueryContext(ctx, query, "%"+search+"%")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer r.closeRows(rows)

	var vs []domain.StockReportRow
	for rows.Next() {
		var v domain.StockReportRow
		err := rows.Scan(
			&v.ID, &v.Name, &v.Category, &v.Stock, &v.Price, &v.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		vs = append(vs, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return vs, nil
}

// RecentOrders returns the 10 most recent orders with item counts,
// a formatted date and a localized status label.
func (r ReportsRepository) RecentOrders(
	ctx context.Context,
) ([]domain.RecentOrderRow, error) {
	const op = "ReportsRepository.RecentOrders"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT
			o.id,
			o.order_number AS id_display,
			COALESCE(c.name, 'Склад') AS outlet,
			o.order_type AS type,
			COUNT(oi.id) AS items,
			TO_CHAR(o.order_date, 'DD.MM.YYYY') AS date,
			CASE
				WHEN o.status = 'completed' THEN 'Выполнен'
				WHEN o.status = 'processing' THEN 'В обработке'
				ELSE 'Ожидает'
			END AS status
		FROM orders o
		LEFT JOIN customers c ON o.customer_id = c.id
		LEFT JOIN order_items oi ON o.id = oi.order_id
		GROUP BY o.id, o.order_number, c.name,
			o.order_type, o.order_date, o.status
		ORDER BY o.order_date DESC
		LIMIT 10;`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer r.closeRows(rows)

	var vs []domain.RecentOrderRow
	for rows.Next() {
		var v domain.RecentOrderRow
		err := rows.Scan(
			&v.ID, &v.IDDisplay, &v.Outlet,
			&v.Type, &v.Items, &v.Date, &v.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		vs = append(vs, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return vs, nil
}

func (r ReportsRepository) closeRows(rows interface{ Close() error }) {
	if err := rows.Close(); err != nil {
		slog.Error("failed to close rows", "err", err)
	}
}
