package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SanderGeraedts/InkoopPlanner/internal/enum"
	"github.com/SanderGeraedts/InkoopPlanner/internal/handler"
	"github.com/SanderGeraedts/InkoopPlanner/internal/model"
	"github.com/SanderGeraedts/InkoopPlanner/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// --- Mock service ---

// mockPlanner satisfies OrderServicer, ListServicer and ProductServicer.
// Unset funcs fail the call with errNotStubbed.
type mockPlanner struct {
	createOrderFn      func(ctx context.Context, date time.Time) (model.Order, error)
	listOrdersFn       func(ctx context.Context) ([]model.Order, error)
	getOrderFn         func(ctx context.Context, id uuid.UUID) (model.Order, error)
	deleteOrderFn      func(ctx context.Context, id uuid.UUID) error
	overviewFn         func(ctx context.Context, orderID uuid.UUID, adjust bool) (service.Overview, error)
	ensureListFn       func(ctx context.Context, orderID uuid.UUID) (model.OrderList, error)
	createListFn       func(ctx context.Context, orderID uuid.UUID, listType string) (model.OrderList, error)
	getListFn          func(ctx context.Context, orderID, listID uuid.UUID) (model.OrderList, error)
	deleteListFn       func(ctx context.Context, orderID, listID uuid.UUID) error
	navigationFn       func(ctx context.Context, orderID, listID uuid.UUID) (service.Navigation, error)
	setQuantityFn      func(ctx context.Context, orderID, listID, productID uuid.UUID, qty int32) (model.OrderList, error)
	saveQuantitiesFn   func(ctx context.Context, orderID, listID uuid.UUID, q map[uuid.UUID]int32) (model.OrderList, error)
	setStockQuantityFn func(ctx context.Context, orderID, productID uuid.UUID, qty int32) (model.OrderList, error)
	catalogFn          func(ctx context.Context) ([]service.ProductGroup, error)
	createProductFn    func(ctx context.Context, name string, category enum.Category) (model.Product, error)
	deleteProductFn    func(ctx context.Context, id uuid.UUID) error
}

var errNotStubbed = errors.New("not stubbed")

func (m *mockPlanner) CreateOrder(ctx context.Context, date time.Time) (model.Order, error) {
	if m.createOrderFn == nil {
		return model.Order{}, errNotStubbed
	}
	return m.createOrderFn(ctx, date)
}

func (m *mockPlanner) ListOrders(ctx context.Context) ([]model.Order, error) {
	if m.listOrdersFn == nil {
		return nil, errNotStubbed
	}
	return m.listOrdersFn(ctx)
}

func (m *mockPlanner) GetOrder(ctx context.Context, id uuid.UUID) (model.Order, error) {
	if m.getOrderFn == nil {
		return model.Order{}, errNotStubbed
	}
	return m.getOrderFn(ctx, id)
}

func (m *mockPlanner) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if m.deleteOrderFn == nil {
		return errNotStubbed
	}
	return m.deleteOrderFn(ctx, id)
}

func (m *mockPlanner) Overview(ctx context.Context, orderID uuid.UUID, adjust bool) (service.Overview, error) {
	if m.overviewFn == nil {
		return service.Overview{}, errNotStubbed
	}
	return m.overviewFn(ctx, orderID, adjust)
}

func (m *mockPlanner) EnsureOrderList(ctx context.Context, orderID uuid.UUID) (model.OrderList, error) {
	if m.ensureListFn == nil {
		return model.OrderList{}, errNotStubbed
	}
	return m.ensureListFn(ctx, orderID)
}

func (m *mockPlanner) CreateOrderList(ctx context.Context, orderID uuid.UUID, listType string) (model.OrderList, error) {
	if m.createListFn == nil {
		return model.OrderList{}, errNotStubbed
	}
	return m.createListFn(ctx, orderID, listType)
}

func (m *mockPlanner) GetOrderList(ctx context.Context, orderID, listID uuid.UUID) (model.OrderList, error) {
	if m.getListFn == nil {
		return model.OrderList{}, errNotStubbed
	}
	return m.getListFn(ctx, orderID, listID)
}

func (m *mockPlanner) DeleteOrderList(ctx context.Context, orderID, listID uuid.UUID) error {
	if m.deleteListFn == nil {
		return errNotStubbed
	}
	return m.deleteListFn(ctx, orderID, listID)
}

func (m *mockPlanner) Navigation(ctx context.Context, orderID, listID uuid.UUID) (service.Navigation, error) {
	if m.navigationFn == nil {
		return service.Navigation{}, errNotStubbed
	}
	return m.navigationFn(ctx, orderID, listID)
}

func (m *mockPlanner) SetQuantity(ctx context.Context, orderID, listID, productID uuid.UUID, qty int32) (model.OrderList, error) {
	if m.setQuantityFn == nil {
		return model.OrderList{}, errNotStubbed
	}
	return m.setQuantityFn(ctx, orderID, listID, productID, qty)
}

func (m *mockPlanner) SaveQuantities(ctx context.Context, orderID, listID uuid.UUID, q map[uuid.UUID]int32) (model.OrderList, error) {
	if m.saveQuantitiesFn == nil {
		return model.OrderList{}, errNotStubbed
	}
	return m.saveQuantitiesFn(ctx, orderID, listID, q)
}

func (m *mockPlanner) SetStockQuantity(ctx context.Context, orderID, productID uuid.UUID, qty int32) (model.OrderList, error) {
	if m.setStockQuantityFn == nil {
		return model.OrderList{}, errNotStubbed
	}
	return m.setStockQuantityFn(ctx, orderID, productID, qty)
}

func (m *mockPlanner) Catalog(ctx context.Context) ([]service.ProductGroup, error) {
	if m.catalogFn == nil {
		return nil, errNotStubbed
	}
	return m.catalogFn(ctx)
}

func (m *mockPlanner) CreateProduct(ctx context.Context, name string, category enum.Category) (model.Product, error) {
	if m.createProductFn == nil {
		return model.Product{}, errNotStubbed
	}
	return m.createProductFn(ctx, name, category)
}

func (m *mockPlanner) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if m.deleteProductFn == nil {
		return errNotStubbed
	}
	return m.deleteProductFn(ctx, id)
}

// --- Mock broadcaster ---

type mockBroadcaster struct {
	updated []uuid.UUID
}

func (m *mockBroadcaster) OrderUpdated(id uuid.UUID) { m.updated = append(m.updated, id) }

// --- Helpers ---

func setupRouter(svc *mockPlanner, hub *mockBroadcaster) *chi.Mux {
	r := chi.NewRouter()
	r.Route("/orders", func(r chi.Router) {
		handler.NewOrderHandler(svc, hub).RegisterRoutes(r)
		handler.NewListHandler(svc, hub).RegisterRoutes(r)
	})
	r.Route("/products", handler.NewProductHandler(svc).RegisterRoutes)
	return r
}

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewBufferString(b))
		req.Header.Set("Content-Type", "application/json")
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func decodeListResponse(t *testing.T, rr *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var resp []map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func testOrder(id uuid.UUID) model.Order {
	return model.Order{
		ID:   id,
		Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		OrderLists: []model.OrderList{{
			ID:        uuid.New(),
			OrderID:   id,
			CreatedAt: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
			OrderRows: []model.OrderRow{},
		}},
	}
}

// --- Create tests ---

func TestOrderCreate_WithDate(t *testing.T) {
	var gotDate time.Time
	svc := &mockPlanner{
		createOrderFn: func(ctx context.Context, date time.Time) (model.Order, error) {
			gotDate = date
			return testOrder(uuid.New()), nil
		},
	}

	rr := doRequest(t, setupRouter(svc, &mockBroadcaster{}), "POST", "/orders", map[string]string{"date": "2026-03-02"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}
	if want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC); !gotDate.Equal(want) {
		t.Errorf("date: got %v, want %v", gotDate, want)
	}

	resp := decodeResponse(t, rr)
	lists, ok := resp["order_lists"].([]interface{})
	if !ok || len(lists) != 1 {
		t.Fatalf("order_lists: got %v, want one list", resp["order_lists"])
	}
}

func TestOrderCreate_EmptyBodyLeavesDateToService(t *testing.T) {
	var gotDate time.Time
	svc := &mockPlanner{
		createOrderFn: func(ctx context.Context, date time.Time) (model.Order, error) {
			gotDate = date
			return testOrder(uuid.New()), nil
		},
	}

	rr := doRequest(t, setupRouter(svc, &mockBroadcaster{}), "POST", "/orders", nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}
	if !gotDate.IsZero() {
		t.Errorf("date: got %v, want zero", gotDate)
	}
}

func TestOrderCreate_InvalidDate(t *testing.T) {
	rr := doRequest(t, setupRouter(&mockPlanner{}, &mockBroadcaster{}), "POST", "/orders", map[string]string{"date": "2 maart"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusBadRequest, rr.Body.String())
	}
}

func TestOrderCreate_InvalidBody(t *testing.T) {
	rr := doRequest(t, setupRouter(&mockPlanner{}, &mockBroadcaster{}), "POST", "/orders", "{not json")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusBadRequest, rr.Body.String())
	}
	if resp := decodeResponse(t, rr); resp["error"] != "invalid request body" {
		t.Errorf("error: got %v", resp["error"])
	}
}

func TestOrderCreate_StoreFailure(t *testing.T) {
	svc := &mockPlanner{
		createOrderFn: func(ctx context.Context, date time.Time) (model.Order, error) {
			return model.Order{}, fmt.Errorf("create order: %w", errors.New("connection refused"))
		},
	}

	rr := doRequest(t, setupRouter(svc, &mockBroadcaster{}), "POST", "/orders", nil)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusInternalServerError, rr.Body.String())
	}
	if resp := decodeResponse(t, rr); resp["error"] != "internal server error" {
		t.Errorf("error: got %v, want generic message", resp["error"])
	}
}

// --- Read tests ---

func TestOrderList(t *testing.T) {
	svc := &mockPlanner{
		listOrdersFn: func(ctx context.Context) ([]model.Order, error) {
			return []model.Order{testOrder(uuid.New()), testOrder(uuid.New())}, nil
		},
	}

	rr := doRequest(t, setupRouter(svc, &mockBroadcaster{}), "GET", "/orders", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	if got := decodeListResponse(t, rr); len(got) != 2 {
		t.Fatalf("orders: got %d, want 2", len(got))
	}
}

func TestOrderGet_NotFound(t *testing.T) {
	svc := &mockPlanner{
		getOrderFn: func(ctx context.Context, id uuid.UUID) (model.Order, error) {
			return model.Order{}, fmt.Errorf("get order %s: %w", id, service.ErrNotFound)
		},
	}

	rr := doRequest(t, setupRouter(svc, &mockBroadcaster{}), "GET", "/orders/"+uuid.New().String(), nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusNotFound, rr.Body.String())
	}
}

func TestOrderGet_InvalidID(t *testing.T) {
	rr := doRequest(t, setupRouter(&mockPlanner{}, &mockBroadcaster{}), "GET", "/orders/not-a-uuid", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusBadRequest, rr.Body.String())
	}
	if resp := decodeResponse(t, rr); resp["error"] != "invalid order ID" {
		t.Errorf("error: got %v", resp["error"])
	}
}

func TestOrderGet_IncludesInStock(t *testing.T) {
	id := uuid.New()
	svc := &mockPlanner{
		getOrderFn: func(ctx context.Context, oid uuid.UUID) (model.Order, error) {
			o := testOrder(oid)
			o.InStock = &model.OrderList{ID: uuid.New(), OrderID: oid, ListType: enum.ListTypeInStock, OrderRows: []model.OrderRow{}}
			return o, nil
		},
	}

	rr := doRequest(t, setupRouter(svc, &mockBroadcaster{}), "GET", "/orders/"+id.String(), nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	resp := decodeResponse(t, rr)
	stock, ok := resp["in_stock"].(map[string]interface{})
	if !ok {
		t.Fatalf("in_stock missing: %v", resp)
	}
	if stock["list_type"] != enum.ListTypeInStock {
		t.Errorf("list_type: got %v", stock["list_type"])
	}
}

// --- Delete tests ---

func TestOrderDelete_Broadcasts(t *testing.T) {
	id := uuid.New()
	hub := &mockBroadcaster{}
	svc := &mockPlanner{
		deleteOrderFn: func(ctx context.Context, oid uuid.UUID) error { return nil },
	}

	rr := doRequest(t, setupRouter(svc, hub), "DELETE", "/orders/"+id.String(), nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusNoContent, rr.Body.String())
	}
	if len(hub.updated) != 1 || hub.updated[0] != id {
		t.Fatalf("broadcasts: got %v, want [%s]", hub.updated, id)
	}
}

func TestOrderDelete_NotFoundDoesNotBroadcast(t *testing.T) {
	hub := &mockBroadcaster{}
	svc := &mockPlanner{
		deleteOrderFn: func(ctx context.Context, oid uuid.UUID) error { return service.ErrNotFound },
	}

	rr := doRequest(t, setupRouter(svc, hub), "DELETE", "/orders/"+uuid.New().String(), nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusNotFound, rr.Body.String())
	}
	if len(hub.updated) != 0 {
		t.Fatalf("broadcasts: got %v, want none", hub.updated)
	}
}

// --- Overview tests ---

func TestOrderOverview_StockFlag(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantAdjust bool
	}{
		{"default", "", http.StatusOK, false},
		{"adjusted", "?stock=true", http.StatusOK, true},
		{"raw", "?stock=false", http.StatusOK, false},
		{"invalid", "?stock=sometimes", http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAdjust bool
			svc := &mockPlanner{
				overviewFn: func(ctx context.Context, orderID uuid.UUID, adjust bool) (service.Overview, error) {
					gotAdjust = adjust
					return service.Overview{OrderID: orderID, AdjustedForStock: adjust, Groups: []service.OverviewGroup{}}, nil
				},
			}

			rr := doRequest(t, setupRouter(svc, &mockBroadcaster{}), "GET", "/orders/"+uuid.New().String()+"/overview"+tt.query, nil)
			if rr.Code != tt.wantStatus {
				t.Fatalf("status: got %d, want %d; body: %s", rr.Code, tt.wantStatus, rr.Body.String())
			}
			if gotAdjust != tt.wantAdjust {
				t.Errorf("adjust: got %v, want %v", gotAdjust, tt.wantAdjust)
			}
		})
	}
}
