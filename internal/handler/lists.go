package handler

import (
	"context"
	"net/http"

	"github.com/SanderGeraedts/InkoopPlanner/internal/model"
	"github.com/SanderGeraedts/InkoopPlanner/internal/planner"
	"github.com/SanderGeraedts/InkoopPlanner/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListServicer defines the service methods needed by list and quantity
// handlers. Satisfied by *service.PlannerService.
type ListServicer interface {
	EnsureOrderList(ctx context.Context, orderID uuid.UUID) (model.OrderList, error)
	CreateOrderList(ctx context.Context, orderID uuid.UUID, listType string) (model.OrderList, error)
	GetOrderList(ctx context.Context, orderID, listID uuid.UUID) (model.OrderList, error)
	DeleteOrderList(ctx context.Context, orderID, listID uuid.UUID) error
	Navigation(ctx context.Context, orderID, listID uuid.UUID) (service.Navigation, error)
	SetQuantity(ctx context.Context, orderID, listID, productID uuid.UUID, qty int32) (model.OrderList, error)
	SaveQuantities(ctx context.Context, orderID, listID uuid.UUID, quantities map[uuid.UUID]int32) (model.OrderList, error)
	SetStockQuantity(ctx context.Context, orderID, productID uuid.UUID, qty int32) (model.OrderList, error)
}

// ListHandler handles the lists, rows and stock of an order.
type ListHandler struct {
	svc ListServicer
	hub Broadcaster
}

// NewListHandler creates a new ListHandler. hub may be nil.
func NewListHandler(svc ListServicer, hub Broadcaster) *ListHandler {
	return &ListHandler{svc: svc, hub: orNop(hub)}
}

// RegisterRoutes registers list endpoints on the given Chi router.
// Expected to be mounted at /orders, next to OrderHandler.
func (h *ListHandler) RegisterRoutes(r chi.Router) {
	r.Get("/{id}/lists/current", h.Current)
	r.Post("/{id}/lists", h.Create)
	r.Get("/{id}/lists/{lid}", h.Get)
	r.Delete("/{id}/lists/{lid}", h.Delete)
	r.Get("/{id}/lists/{lid}/navigation", h.Navigation)
	r.Get("/{id}/lists/{lid}/rows", h.Rows)
	r.Put("/{id}/lists/{lid}/rows", h.SaveRows)
	r.Put("/{id}/lists/{lid}/rows/{pid}", h.SetRow)
	r.Put("/{id}/stock/{pid}", h.SetStock)
}

// --- Request types ---

type createListRequest struct {
	ListType string `json:"list_type"`
}

type quantityRequest struct {
	Quantity *int32 `json:"quantity"`
}

type saveRowsRequest struct {
	// Quantities maps product ID to quantity for the whole list.
	Quantities map[string]int32 `json:"quantities"`
}

// --- Handlers ---

// Current handles GET /orders/{id}/lists/current.
func (h *ListHandler) Current(w http.ResponseWriter, r *http.Request) {
	orderID, ok := uuidParam(w, r, "id", "order")
	if !ok {
		return
	}

	l, err := h.svc.EnsureOrderList(r.Context(), orderID)
	if err != nil {
		writeError(w, r, "ensure order list", err)
		return
	}
	writeJSON(w, r, http.StatusOK, l)
}

// Create handles POST /orders/{id}/lists.
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	orderID, ok := uuidParam(w, r, "id", "order")
	if !ok {
		return
	}
	var req createListRequest
	if !decodeBody(w, r, &req, true) {
		return
	}

	l, err := h.svc.CreateOrderList(r.Context(), orderID, req.ListType)
	if err != nil {
		writeError(w, r, "create order list", err)
		return
	}
	h.hub.OrderUpdated(orderID)
	writeJSON(w, r, http.StatusCreated, l)
}

// Get handles GET /orders/{id}/lists/{lid}.
func (h *ListHandler) Get(w http.ResponseWriter, r *http.Request) {
	orderID, listID, ok := listParams(w, r)
	if !ok {
		return
	}

	l, err := h.svc.GetOrderList(r.Context(), orderID, listID)
	if err != nil {
		writeError(w, r, "get order list", err)
		return
	}
	writeJSON(w, r, http.StatusOK, l)
}

// Delete handles DELETE /orders/{id}/lists/{lid}.
func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orderID, listID, ok := listParams(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteOrderList(r.Context(), orderID, listID); err != nil {
		writeError(w, r, "delete order list", err)
		return
	}
	h.hub.OrderUpdated(orderID)
	w.WriteHeader(http.StatusNoContent)
}

// Navigation handles GET /orders/{id}/lists/{lid}/navigation.
func (h *ListHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	orderID, listID, ok := listParams(w, r)
	if !ok {
		return
	}

	nav, err := h.svc.Navigation(r.Context(), orderID, listID)
	if err != nil {
		writeError(w, r, "list navigation", err)
		return
	}
	writeJSON(w, r, http.StatusOK, nav)
}

// Rows handles GET /orders/{id}/lists/{lid}/rows.
func (h *ListHandler) Rows(w http.ResponseWriter, r *http.Request) {
	orderID, listID, ok := listParams(w, r)
	if !ok {
		return
	}

	l, err := h.svc.GetOrderList(r.Context(), orderID, listID)
	if err != nil {
		writeError(w, r, "list rows", err)
		return
	}
	writeJSON(w, r, http.StatusOK, l.OrderRows)
}

// SaveRows handles PUT /orders/{id}/lists/{lid}/rows. The body replaces the
// full contents of the list.
func (h *ListHandler) SaveRows(w http.ResponseWriter, r *http.Request) {
	orderID, listID, ok := listParams(w, r)
	if !ok {
		return
	}
	var req saveRowsRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	quantities := make(map[uuid.UUID]int32, len(req.Quantities))
	for k, v := range req.Quantities {
		pid, err := uuid.Parse(k)
		if err != nil {
			writeErrorMessage(w, r, http.StatusBadRequest, "invalid product ID "+k)
			return
		}
		quantities[pid] = v
	}

	l, err := h.svc.SaveQuantities(r.Context(), orderID, listID, quantities)
	if err != nil {
		writeError(w, r, "save quantities", err)
		return
	}
	h.hub.OrderUpdated(orderID)
	writeJSON(w, r, http.StatusOK, l)
}

// SetRow handles PUT /orders/{id}/lists/{lid}/rows/{pid}.
func (h *ListHandler) SetRow(w http.ResponseWriter, r *http.Request) {
	orderID, listID, ok := listParams(w, r)
	if !ok {
		return
	}
	productID, ok := uuidParam(w, r, "pid", "product")
	if !ok {
		return
	}
	qty, ok := decodeQuantity(w, r)
	if !ok {
		return
	}

	l, err := h.svc.SetQuantity(r.Context(), orderID, listID, productID, qty)
	if err != nil {
		writeError(w, r, "set quantity", err)
		return
	}
	h.hub.OrderUpdated(orderID)
	writeJSON(w, r, http.StatusOK, l)
}

// SetStock handles PUT /orders/{id}/stock/{pid}.
func (h *ListHandler) SetStock(w http.ResponseWriter, r *http.Request) {
	orderID, ok := uuidParam(w, r, "id", "order")
	if !ok {
		return
	}
	productID, ok := uuidParam(w, r, "pid", "product")
	if !ok {
		return
	}
	qty, ok := decodeQuantity(w, r)
	if !ok {
		return
	}

	l, err := h.svc.SetStockQuantity(r.Context(), orderID, productID, qty)
	if err != nil {
		writeError(w, r, "set stock quantity", err)
		return
	}
	h.hub.OrderUpdated(orderID)
	writeJSON(w, r, http.StatusOK, l)
}

func listParams(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	orderID, ok := uuidParam(w, r, "id", "order")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	listID, ok := uuidParam(w, r, "lid", "list")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return orderID, listID, true
}

func decodeQuantity(w http.ResponseWriter, r *http.Request) (int32, bool) {
	var req quantityRequest
	if !decodeBody(w, r, &req, false) {
		return 0, false
	}
	if req.Quantity == nil {
		writeErrorMessage(w, r, http.StatusBadRequest, "quantity is required")
		return 0, false
	}
	if err := planner.CheckQuantity(*req.Quantity); err != nil {
		writeErrorMessage(w, r, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return *req.Quantity, true
}
