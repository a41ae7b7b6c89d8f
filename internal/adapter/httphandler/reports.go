package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/niksmo/warehouse/internal/core/port"
)

// GET /warehouse?action=dashboard|products|orders&search (200 OK,
// 400 Bad request, 500 Internal error)

type ReportsHandler struct {
	reporter port.Reporter
}

func RegisterReports(mux *http.ServeMux, reporter port.Reporter) {
	h := ReportsHandler{reporter}
	mux.HandleFunc("GET /warehouse", h.Report)
	mux.HandleFunc("OPTIONS /warehouse", preflight("GET, OPTIONS"))
	mux.HandleFunc("/warehouse", methodNotAllowed)
}

func (h ReportsHandler) Report(w http.ResponseWriter, r *http.Request) {
	const op = "ReportsHandler.Report"
	log := slog.With("op", op)

	action := r.URL.Query().Get("action")
	if action == "" {
		action = "dashboard"
	}

	switch action {
	case "dashboard":
		h.dashboard(w, r)
	case "products":
		h.products(w, r)
	case "orders":
		h.orders(w, r)
	default:
		writeError(w, http.StatusBadRequest, "Unknown action")
		log.Warn("unknown action", "action", action)
	}
}

func (h ReportsHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	const op = "ReportsHandler.dashboard"
	log := slog.With("op", op)

	d, err := h.reporter.Dashboard(r.Context())
	if err != nil {
		writeDomainError(w, err)
		log.Error("failed to query dashboard", "err", err)
		return
	}

	resp := Dashboard{
		Stats: DashboardStats{
			TotalProducts:   d.Stats.TotalProducts,
			ActiveOrders:    d.Stats.ActiveOrders,
			ActiveOutlets:   d.Stats.ActiveOutlets,
			RecentWriteOffs: d.Stats.RecentWriteOffs,
		},
		SalesData:    []MonthlySales{},
		CategoryData: []CategoryCount{},
	}
	for _, v := range d.SalesData {
		resp.SalesData = append(resp.SalesData, MonthlySales(v))
	}
	for _, v := range d.CategoryData {
		resp.CategoryData = append(resp.CategoryData, CategoryCount(v))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h ReportsHandler) products(w http.ResponseWriter, r *http.Request) {
	const op = "ReportsHandler.products"
	log := slog.With("op", op)

	search := r.URL.Query().Get("search")

	rows, err := h.reporter.StockReport(r.Context(), search)
	if err != nil {
		writeDomainError(w, err)
		log.Error("failed to query stock report", "err", err)
		return
	}

	resp := StockReport{Products: []StockReportRow{}}
	for _, v := range rows {
		resp.Products = append(resp.Products, StockReportRow(v))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h ReportsHandler) orders(w http.ResponseWriter, r *http.Request) {
	const op = "ReportsHandler.orders"
	log := slog.With("op", op)

	rows, err := h.reporter.RecentOrders(r.Context())
	if err != nil {
		writeDomainError(w, err)
		log.Error("failed to query recent orders", "err", err)
		return
	}

	resp := RecentOrders{Orders: []RecentOrderRow{}}
	for _, v := range rows {
		resp.Orders = append(resp.Orders, RecentOrderRow(v))
	}

	writeJSON(w, http.StatusOK, resp)
}
