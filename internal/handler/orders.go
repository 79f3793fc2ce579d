package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/SanderGeraedts/InkoopPlanner/internal/model"
	"github.com/SanderGeraedts/InkoopPlanner/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// OrderServicer defines the service methods needed by order handlers.
// Satisfied by *service.PlannerService; narrow interface for testability.
type OrderServicer interface {
	CreateOrder(ctx context.Context, date time.Time) (model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (model.Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error
	Overview(ctx context.Context, orderID uuid.UUID, adjustForStock bool) (service.Overview, error)
}

// OrderHandler handles order endpoints.
type OrderHandler struct {
	svc OrderServicer
	hub Broadcaster
}

// NewOrderHandler creates a new OrderHandler. hub may be nil.
func NewOrderHandler(svc OrderServicer, hub Broadcaster) *OrderHandler {
	return &OrderHandler{svc: svc, hub: orNop(hub)}
}

// RegisterRoutes registers order endpoints on the given Chi router.
// Expected to be mounted at /orders.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Delete("/{id}", h.Delete)
	r.Get("/{id}/overview", h.Overview)
}

// --- Request types ---

type createOrderRequest struct {
	// Date is YYYY-MM-DD or RFC 3339; empty means now.
	Date string `json:"date"`
}

// --- Handlers ---

// Create handles POST /orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if !decodeBody(w, r, &req, true) {
		return
	}

	var date time.Time
	if req.Date != "" {
		var err error
		if date, err = parseDate(req.Date); err != nil {
			writeErrorMessage(w, r, http.StatusBadRequest, "invalid date, use YYYY-MM-DD")
			return
		}
	}

	order, err := h.svc.CreateOrder(r.Context(), date)
	if err != nil {
		writeError(w, r, "create order", err)
		return
	}
	writeJSON(w, r, http.StatusCreated, order)
}

// List handles GET /orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListOrders(r.Context())
	if err != nil {
		writeError(w, r, "list orders", err)
		return
	}
	writeJSON(w, r, http.StatusOK, orders)
}

// Get handles GET /orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id", "order")
	if !ok {
		return
	}

	order, err := h.svc.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, r, "get order", err)
		return
	}
	writeJSON(w, r, http.StatusOK, order)
}

// Delete handles DELETE /orders/{id}.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id", "order")
	if !ok {
		return
	}

	if err := h.svc.DeleteOrder(r.Context(), id); err != nil {
		writeError(w, r, "delete order", err)
		return
	}
	h.hub.OrderUpdated(id)
	w.WriteHeader(http.StatusNoContent)
}

// Overview handles GET /orders/{id}/overview?stock=true|false.
func (h *OrderHandler) Overview(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id", "order")
	if !ok {
		return
	}

	adjust := false
	if s := r.URL.Query().Get("stock"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			writeErrorMessage(w, r, http.StatusBadRequest, "invalid stock flag, use true or false")
			return
		}
		adjust = v
	}

	ov, err := h.svc.Overview(r.Context(), id, adjust)
	if err != nil {
		writeError(w, r, "order overview", err)
		return
	}
	writeJSON(w, r, http.StatusOK, ov)
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
