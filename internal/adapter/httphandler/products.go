package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/niksmo/warehouse/internal/core/domain"
	"github.com/niksmo/warehouse/internal/core/port"
)

// GET /products?search&page&pageSize (200 OK)
// POST /products JSON create payload (201 Created, 400 Bad request)
// PUT /products JSON update payload with id (200 OK, 404 Not found)
// PATCH /products JSON {id} archives the product (200 OK, 404 Not found)

type ProductsHandler struct {
	catalog port.Catalog
}

func RegisterProducts(mux *http.ServeMux, catalog port.Catalog) {
	h := ProductsHandler{catalog}
	mux.HandleFunc("GET /products", h.List)
	mux.HandleFunc("POST /products", h.Create)
	mux.HandleFunc("PUT /products", h.Update)
	mux.HandleFunc("PATCH /products", h.Archive)
	mux.HandleFunc("OPTIONS /products",
		preflight("GET, POST, PUT, PATCH, OPTIONS"))
	mux.HandleFunc("/products", methodNotAllowed)
}

func (h ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.List"
	log := slog.With("op", op)

	search := r.URL.Query().Get("search")
	page := queryInt(r, "page", domain.DefaultPage)
	pageSize := queryInt(r, "pageSize", domain.DefaultPageSize)

	result, err := h.catalog.ListProducts(r.Context(), search, page, pageSize)
	if err != nil {
		writeDomainError(w, err)
		log.Error("failed to list products", "err", err)
		return
	}

	resp := ProductsPage{
		Products:   []Product{},
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	}
	for _, p := range result.Items {
		resp.Products = append(resp.Products, toProduct(p))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Create"
	log := slog.With("op", op)

	var req CreateProduct
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	id, err := h.catalog.CreateProduct(r.Context(), h.toDraft(req))
	if err != nil {
		writeDomainError(w, err)
		log.Warn("failed to create product", "err", err)
		return
	}

	writeJSON(w, http.StatusCreated, CreatedID{id})
	log.Info("product created", "id", id)
}

func (h ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Update"
	log := slog.With("op", op)

	var req UpdateProduct
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if err := h.catalog.UpdateProduct(r.Context(), h.toUpdate(req)); err != nil {
		writeDomainError(w, err)
		log.Warn("failed to update product", "id", req.ID, "err", err)
		return
	}

	writeJSON(w, http.StatusOK, Success{true})
	log.Info("product updated", "id", req.ID)
}

func (h ProductsHandler) Archive(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Archive"
	log := slog.With("op", op)

	var req ArchiveProduct
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if err := h.catalog.ArchiveProduct(r.Context(), req.ID); err != nil {
		writeDomainError(w, err)
		log.Warn("failed to archive product", "id", req.ID, "err", err)
		return
	}

	writeJSON(w, http.StatusOK, Success{true})
	log.Info("product archived", "id", req.ID)
}

// toDraft resolves the optional payload fields to their
// documented defaults.
func (h ProductsHandler) toDraft(req CreateProduct) domain.ProductDraft {
	draft := domain.ProductDraft{
		VendorCode:       req.VendorCode,
		Name:             req.Name,
		Price:            req.PriceTypeValue,
		Description:      req.Description,
		ImageURL:         req.ImageURL,
		CurrencyCode:     req.CurrencyCode,
		MinStock:         defaultMinStock,
		CategoryName:     req.CategoryName,
		ManufacturerName: req.ManufacturerName,
		Barcodes:         req.Barcodes,
	}

	if req.MinStock != nil {
		draft.MinStock = *req.MinStock
	}
	if draft.CurrencyCode == "" {
		draft.CurrencyCode = defaultCurrencyCode
	}
	if draft.CategoryName == "" {
		draft.CategoryName = defaultCategoryName
	}
	if draft.ManufacturerName == "" {
		draft.ManufacturerName = defaultManufacturerName
	}
	return draft
}

func (h ProductsHandler) toUpdate(req UpdateProduct) domain.ProductUpdate {
	upd := domain.ProductUpdate{
		ID:           req.ID,
		VendorCode:   req.VendorCode,
		Name:         req.Name,
		Price:        req.PriceTypeValue,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		CurrencyCode: req.CurrencyCode,
		MinStock:     defaultMinStock,
	}

	if req.MinStock != nil {
		upd.MinStock = *req.MinStock
	}
	if upd.CurrencyCode == "" {
		upd.CurrencyCode = defaultCurrencyCode
	}
	return upd
}
