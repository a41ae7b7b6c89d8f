package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/niksmo/warehouse/internal/core/domain"
	"github.com/niksmo/warehouse/internal/core/port"
)

// GET /orders?page&pageSize (200 OK)
// POST /orders JSON {action: "complete"|"cancel", orderId}
// or an order creation payload (200 OK, 201 Created, 400 Bad request)

type OrdersHandler struct {
	orders port.Orders
}

func RegisterOrders(mux *http.ServeMux, orders port.Orders) {
	h := OrdersHandler{orders}
	mux.HandleFunc("GET /orders", h.List)
	mux.HandleFunc("POST /orders", h.Post)
	mux.HandleFunc("OPTIONS /orders", preflight("GET, POST, OPTIONS"))
	mux.HandleFunc("/orders", methodNotAllowed)
}

func (h OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.List"
	log := slog.With("op", op)

	page := queryInt(r, "page", domain.DefaultPage)
	pageSize := queryInt(r, "pageSize", domain.DefaultPageSize)

	result, err := h.orders.ListOrders(r.Context(), page, pageSize)
	if err != nil {
		writeDomainError(w, err)
		log.Error("failed to list orders", "err", err)
		return
	}

	resp := OrdersPage{
		Orders:     []Order{},
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}
	for _, o := range result.Items {
		resp.Orders = append(resp.Orders, toOrder(o))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h OrdersHandler) Post(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.Post"
	log := slog.With("op", op)

	var req PostOrder
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	switch req.Action {
	case "complete":
		h.complete(w, r, req.OrderID)
	case "cancel":
		h.cancel(w, r, req.OrderID)
	default:
		h.create(w, r, req.CreateOrder)
	}
}

func (h OrdersHandler) create(
	w http.ResponseWriter, r *http.Request, req CreateOrder,
) {
	const op = "OrdersHandler.create"
	log := slog.With("op", op)

	draft, ok := h.toDraft(req)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid request data")
		log.Warn("order line is missing required fields")
		return
	}

	id, err := h.orders.CreateOrder(r.Context(), draft)
	if err != nil {
		writeDomainError(w, err)
		log.Warn("failed to create order", "err", err)
		return
	}

	writeJSON(w, http.StatusCreated, CreatedID{id})
	log.Info("order created", "id", id)
}

func (h OrdersHandler) complete(
	w http.ResponseWriter, r *http.Request, id int,
) {
	const op = "OrdersHandler.complete"
	log := slog.With("op", op)

	if err := h.orders.CompleteOrder(r.Context(), id); err != nil {
		writeDomainError(w, err)
		log.Warn("failed to complete order", "id", id, "err", err)
		return
	}

	writeJSON(w, http.StatusOK, Success{true})
	log.Info("order completed", "id", id)
}

func (h OrdersHandler) cancel(
	w http.ResponseWriter, r *http.Request, id int,
) {
	const op = "OrdersHandler.cancel"
	log := slog.With("op", op)

	if err := h.orders.CancelOrder(r.Context(), id); err != nil {
		writeDomainError(w, err)
		log.Warn("failed to cancel order", "id", id, "err", err)
		return
	}

	writeJSON(w, http.StatusOK, Success{true})
	log.Info("order cancelled", "id", id)
}

// toDraft resolves payload defaults. It reports failure when an
// order line misses a required field.
func (h OrdersHandler) toDraft(req CreateOrder) (domain.OrderDraft, bool) {
	draft := domain.OrderDraft{
		Username:          req.Username,
		PaymentType:       domain.PaymentType(req.PaymentType),
		Comment:           req.Comment,
		LoyaltyCardNumber: req.LoyaltyCardNumber,
	}

	if draft.PaymentType == "" {
		draft.PaymentType = domain.PaymentCard
	}

	for _, l := range req.Products {
		if l.ProductID == nil || l.Quantity == nil ||
			l.UnitPrice == nil || l.PurchasePrice == nil {
			return domain.OrderDraft{}, false
		}

		name := l.ProductName
		if name == "" {
			name = defaultProductName
		}

		draft.Products = append(draft.Products, domain.OrderLineDraft{
			ProductID:     *l.ProductID,
			ProductName:   name,
			Quantity:      *l.Quantity,
			UnitPrice:     *l.UnitPrice,
			PurchasePrice: *l.PurchasePrice,
		})
	}
	return draft, true
}
