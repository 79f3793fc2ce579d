package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SanderGeraedts/InkoopPlanner/internal/enum"
	"github.com/SanderGeraedts/InkoopPlanner/internal/model"
	"github.com/SanderGeraedts/InkoopPlanner/internal/planner"
	"github.com/google/uuid"
)

// Metrics receives domain events. Satisfied by *metrics.Metrics.
type Metrics interface {
	OrderCreated()
	QuantitySaved(result string)
}

// PlannerService is the application layer: it loads state through a Store,
// runs the planner core over it, and writes the results back.
type PlannerService struct {
	store   Store
	refs    planner.ReferenceTable
	metrics Metrics
	now     func() time.Time
}

// NewPlannerService creates a new PlannerService.
func NewPlannerService(store Store, refs planner.ReferenceTable, m Metrics) *PlannerService {
	return &PlannerService{
		store:   store,
		refs:    refs,
		metrics: m,
		now:     func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// CreateOrder creates an order dated date (now when zero) together with its
// initial demand list.
func (s *PlannerService) CreateOrder(ctx context.Context, date time.Time) (model.Order, error) {
	if date.IsZero() {
		date = s.now()
	}
	rec := OrderRecord{ID: uuid.New(), Date: date.UTC().Truncate(time.Microsecond)}
	first := model.OrderList{
		ID:        uuid.New(),
		OrderID:   rec.ID,
		CreatedAt: s.now(),
		ListType:  enum.ListTypeDemand,
	}

	err := s.store.InTx(ctx, func(tx Store) error {
		var err error
		if rec, err = tx.CreateOrder(ctx, rec); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if first, err = tx.CreateOrderList(ctx, first); err != nil {
			return fmt.Errorf("create initial list: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}

	s.metrics.OrderCreated()
	first.OrderRows = []model.OrderRow{}
	return model.Order{ID: rec.ID, Date: rec.Date, OrderLists: []model.OrderList{first}}, nil
}

// ListOrders returns every order, newest first, with its lists attached.
func (s *PlannerService) ListOrders(ctx context.Context) ([]model.Order, error) {
	recs, err := s.store.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	orders := make([]model.Order, 0, len(recs))
	for _, rec := range recs {
		o, err := s.assemble(ctx, rec)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// GetOrder returns the order with its demand lists in navigation order and
// the in-stock list, if designated, in InStock.
func (s *PlannerService) GetOrder(ctx context.Context, id uuid.UUID) (model.Order, error) {
	rec, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return model.Order{}, err
	}
	return s.assemble(ctx, rec)
}

// DeleteOrder removes the order with all of its lists and rows.
func (s *PlannerService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	return s.store.DeleteOrder(ctx, id)
}

func (s *PlannerService) assemble(ctx context.Context, rec OrderRecord) (model.Order, error) {
	lists, err := s.store.GetOrderListsByOrderID(ctx, rec.ID)
	if err != nil {
		return model.Order{}, fmt.Errorf("get lists of order %s: %w", rec.ID, err)
	}

	o := model.Order{ID: rec.ID, Date: rec.Date, OrderLists: []model.OrderList{}}
	for _, l := range planner.SortLists(lists, rec.ID) {
		if l.OrderRows == nil {
			l.OrderRows = []model.OrderRow{}
		}
		if rec.InStockListID.Valid && l.ID == rec.InStockListID.UUID {
			inStock := l
			o.InStock = &inStock
			continue
		}
		o.OrderLists = append(o.OrderLists, l)
	}
	return o, nil
}
