package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/SanderGeraedts/InkoopPlanner/internal/model"
	"github.com/google/uuid"
)

// --- Mock implementations ---

// memStore is a map-backed Store. InTx runs fn against a copy and only
// publishes the copy when fn succeeds. fail makes the named method return
// the given error.
type memStore struct {
	products map[uuid.UUID]model.Product
	orders   map[uuid.UUID]OrderRecord
	lists    map[uuid.UUID]model.OrderList
	rows     map[uuid.UUID]model.OrderRow
	fail     map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		products: map[uuid.UUID]model.Product{},
		orders:   map[uuid.UUID]OrderRecord{},
		lists:    map[uuid.UUID]model.OrderList{},
		rows:     map[uuid.UUID]model.OrderRow{},
		fail:     map[string]error{},
	}
}

func (m *memStore) check(method string) error {
	return m.fail[method]
}

func (m *memStore) clone() *memStore {
	return &memStore{
		products: maps.Clone(m.products),
		orders:   maps.Clone(m.orders),
		lists:    maps.Clone(m.lists),
		rows:     maps.Clone(m.rows),
		fail:     m.fail,
	}
}

func (m *memStore) InTx(ctx context.Context, fn func(tx Store) error) error {
	tx := m.clone()
	if err := fn(tx); err != nil {
		return err
	}
	m.products, m.orders, m.lists, m.rows = tx.products, tx.orders, tx.lists, tx.rows
	return nil
}

func (m *memStore) ListProducts(ctx context.Context) ([]model.Product, error) {
	if err := m.check("ListProducts"); err != nil {
		return nil, err
	}
	return slices.Collect(maps.Values(m.products)), nil
}

func (m *memStore) GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return model.Product{}, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return p, nil
}

func (m *memStore) CreateProduct(ctx context.Context, p model.Product) (model.Product, error) {
	if err := m.check("CreateProduct"); err != nil {
		return model.Product{}, err
	}
	m.products[p.ID] = p
	return p, nil
}

func (m *memStore) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.products[id]; !ok {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	delete(m.products, id)
	for rid, r := range m.rows {
		if r.Product.ID == id {
			delete(m.rows, rid)
		}
	}
	return nil
}

func (m *memStore) CountProducts(ctx context.Context) (int64, error) {
	return int64(len(m.products)), nil
}

func (m *memStore) DeleteAllProducts(ctx context.Context) error {
	for id := range m.products {
		_ = m.DeleteProduct(ctx, id)
	}
	return nil
}

func (m *memStore) ListOrders(ctx context.Context) ([]OrderRecord, error) {
	recs := slices.Collect(maps.Values(m.orders))
	slices.SortFunc(recs, func(a, b OrderRecord) int { return b.Date.Compare(a.Date) })
	return recs, nil
}

func (m *memStore) GetOrder(ctx context.Context, id uuid.UUID) (OrderRecord, error) {
	o, ok := m.orders[id]
	if !ok {
		return OrderRecord{}, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	return o, nil
}

func (m *memStore) CreateOrder(ctx context.Context, o OrderRecord) (OrderRecord, error) {
	if err := m.check("CreateOrder"); err != nil {
		return OrderRecord{}, err
	}
	m.orders[o.ID] = o
	return o, nil
}

func (m *memStore) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.orders[id]; !ok {
		return fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	for lid, l := range m.lists {
		if l.OrderID == id {
			_ = m.DeleteOrderList(ctx, lid)
		}
	}
	delete(m.orders, id)
	return nil
}

func (m *memStore) SetInStockList(ctx context.Context, orderID uuid.UUID, listID uuid.NullUUID) error {
	o, ok := m.orders[orderID]
	if !ok {
		return fmt.Errorf("order %s: %w", orderID, ErrNotFound)
	}
	o.InStockListID = listID
	m.orders[orderID] = o
	return nil
}

func (m *memStore) withRows(l model.OrderList) model.OrderList {
	l.OrderRows = []model.OrderRow{}
	for _, r := range m.rows {
		if r.OrderListID == l.ID {
			l.OrderRows = append(l.OrderRows, r)
		}
	}
	return l
}

func (m *memStore) GetOrderListsByOrderID(ctx context.Context, orderID uuid.UUID) ([]model.OrderList, error) {
	var out []model.OrderList
	for _, l := range m.lists {
		if l.OrderID == orderID {
			out = append(out, m.withRows(l))
		}
	}
	return out, nil
}

func (m *memStore) GetOrderList(ctx context.Context, id uuid.UUID) (model.OrderList, error) {
	l, ok := m.lists[id]
	if !ok {
		return model.OrderList{}, fmt.Errorf("order list %s: %w", id, ErrNotFound)
	}
	return m.withRows(l), nil
}

func (m *memStore) CreateOrderList(ctx context.Context, l model.OrderList) (model.OrderList, error) {
	if err := m.check("CreateOrderList"); err != nil {
		return model.OrderList{}, err
	}
	if _, ok := m.orders[l.OrderID]; !ok {
		return model.OrderList{}, fmt.Errorf("order %s: %w", l.OrderID, ErrNotFound)
	}
	l.OrderRows = nil
	m.lists[l.ID] = l
	return l, nil
}

func (m *memStore) DeleteOrderList(ctx context.Context, id uuid.UUID) error {
	l, ok := m.lists[id]
	if !ok {
		return fmt.Errorf("order list %s: %w", id, ErrNotFound)
	}
	for rid, r := range m.rows {
		if r.OrderListID == id {
			delete(m.rows, rid)
		}
	}
	if o := m.orders[l.OrderID]; o.InStockListID.Valid && o.InStockListID.UUID == id {
		o.InStockListID = uuid.NullUUID{}
		m.orders[l.OrderID] = o
	}
	delete(m.lists, id)
	return nil
}

func (m *memStore) GetOrderRowsByOrderListID(ctx context.Context, listID uuid.UUID) ([]model.OrderRow, error) {
	return m.withRows(model.OrderList{ID: listID}).OrderRows, nil
}

func (m *memStore) CreateOrderRow(ctx context.Context, r model.OrderRow) (model.OrderRow, error) {
	if err := m.check("CreateOrderRow"); err != nil {
		return model.OrderRow{}, err
	}
	for _, existing := range m.rows {
		if existing.OrderListID == r.OrderListID && existing.Product.ID == r.Product.ID {
			return model.OrderRow{}, ErrConflict
		}
	}
	m.rows[r.ID] = r
	return r, nil
}

func (m *memStore) UpdateOrderRow(ctx context.Context, r model.OrderRow) error {
	existing, ok := m.rows[r.ID]
	if !ok {
		return fmt.Errorf("order row %s: %w", r.ID, ErrNotFound)
	}
	existing.Quantity = r.Quantity
	m.rows[r.ID] = existing
	return nil
}

func (m *memStore) DeleteOrderRow(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.rows[id]; !ok {
		return fmt.Errorf("order row %s: %w", id, ErrNotFound)
	}
	delete(m.rows, id)
	return nil
}

// mockMetrics counts domain events.
type mockMetrics struct {
	ordersCreated int
	saves         map[string]int
}

func (m *mockMetrics) OrderCreated() { m.ordersCreated++ }

func (m *mockMetrics) QuantitySaved(result string) {
	if m.saves == nil {
		m.saves = map[string]int{}
	}
	m.saves[result]++
}

var errBoom = errors.New("boom")
