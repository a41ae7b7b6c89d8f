package domain

type (
	Dashboard struct {
		Stats        DashboardStats
		SalesData    []MonthlySales
		CategoryData []CategoryCount
	}

	DashboardStats struct {
		TotalProducts   int
		ActiveOrders    int
		ActiveOutlets   int
		RecentWriteOffs int
	}

	MonthlySales struct {
		Month  string
		Sales  float64
		Orders int
	}

	CategoryCount struct {
		Name  string
		Value int
	}
)

// StockReportRow is a per-product stock summary with a localized
// textual status derived from the stock level.
type StockReportRow struct {
	ID       int
	Name     string
	Category string
	Stock    int
	Price    float64
	Status   string
}

// RecentOrderRow is a row of the recent orders report with a
// formatted date and a localized status label.
type RecentOrderRow struct {
	ID        int
	IDDisplay string
	Outlet    string
	Type      string
	Items     int
	Date      string
	Status    string
}
