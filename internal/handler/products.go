package handler

import (
	"context"
	"net/http"

	"github.com/SanderGeraedts/InkoopPlanner/internal/enum"
	"github.com/SanderGeraedts/InkoopPlanner/internal/model"
	"github.com/SanderGeraedts/InkoopPlanner/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ProductServicer defines the service methods needed by product handlers.
// Satisfied by *service.PlannerService.
type ProductServicer interface {
	Catalog(ctx context.Context) ([]service.ProductGroup, error)
	CreateProduct(ctx context.Context, name string, category enum.Category) (model.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// ProductHandler handles catalog endpoints.
type ProductHandler struct {
	svc ProductServicer
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(svc ProductServicer) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// RegisterRoutes registers product endpoints on the given Chi router.
// Expected to be mounted at /products.
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Delete("/{pid}", h.Delete)
}

// --- Request types ---

type createProductRequest struct {
	Name string `json:"name"`
	// Category is a tag or display name; empty means Extras.
	Category string `json:"category"`
}

// --- Handlers ---

// List handles GET /products. Products come grouped by category in display
// order, sorted within each group.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.Catalog(r.Context())
	if err != nil {
		writeError(w, r, "list products", err)
		return
	}
	writeJSON(w, r, http.StatusOK, groups)
}

// Create handles POST /products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	var cat enum.Category
	if req.Category != "" {
		parsed, ok := enum.ParseCategory(req.Category)
		if !ok {
			writeErrorMessage(w, r, http.StatusBadRequest, "invalid category "+req.Category)
			return
		}
		cat = parsed
	}

	p, err := h.svc.CreateProduct(r.Context(), req.Name, cat)
	if err != nil {
		writeError(w, r, "create product", err)
		return
	}
	writeJSON(w, r, http.StatusCreated, p)
}

// Delete handles DELETE /products/{pid}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "pid", "product")
	if !ok {
		return
	}

	if err := h.svc.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, r, "delete product", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
