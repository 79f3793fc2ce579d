package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/SanderGeraedts/InkoopPlanner/internal/enum"
	"github.com/SanderGeraedts/InkoopPlanner/internal/model"
	"github.com/SanderGeraedts/InkoopPlanner/internal/planner"
	"github.com/google/uuid"
)

// Navigation describes where a demand list sits within its order.
type Navigation struct {
	ListID   uuid.UUID  `json:"list_id"`
	Previous *uuid.UUID `json:"previous,omitempty"`
	Next     *uuid.UUID `json:"next,omitempty"`
	IsFirst  bool       `json:"is_first"`
	IsLast   bool       `json:"is_last"`
	Position int        `json:"position"`
	Total    int        `json:"total"`
}

// EnsureOrderList returns the first demand list of the order, creating one
// when the order has none.
func (s *PlannerService) EnsureOrderList(ctx context.Context, orderID uuid.UUID) (model.OrderList, error) {
	o, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return model.OrderList{}, err
	}
	if len(o.OrderLists) > 0 {
		return o.OrderLists[0], nil
	}
	return s.createList(ctx, s.store, orderID, enum.ListTypeDemand)
}

// CreateOrderList appends a list to the order. For the in-stock type the
// existing designated list is returned when there is one.
func (s *PlannerService) CreateOrderList(ctx context.Context, orderID uuid.UUID, listType string) (model.OrderList, error) {
	switch listType {
	case enum.ListTypeDemand:
		if _, err := s.store.GetOrder(ctx, orderID); err != nil {
			return model.OrderList{}, err
		}
		return s.createList(ctx, s.store, orderID, enum.ListTypeDemand)
	case enum.ListTypeInStock:
		return s.ensureInStockList(ctx, orderID)
	default:
		return model.OrderList{}, fmt.Errorf("%w: %q", ErrInvalidListType, listType)
	}
}

// GetOrderList returns a list of the order with its rows.
func (s *PlannerService) GetOrderList(ctx context.Context, orderID, listID uuid.UUID) (model.OrderList, error) {
	l, err := s.store.GetOrderList(ctx, listID)
	if err != nil {
		return model.OrderList{}, err
	}
	if l.OrderID != orderID {
		return model.OrderList{}, fmt.Errorf("list %s in order %s: %w", listID, orderID, ErrNotFound)
	}
	if l.OrderRows == nil {
		l.OrderRows = []model.OrderRow{}
	}
	return l, nil
}

// DeleteOrderList removes a list and its rows. Removing the in-stock list
// clears the designation.
func (s *PlannerService) DeleteOrderList(ctx context.Context, orderID, listID uuid.UUID) error {
	if _, err := s.GetOrderList(ctx, orderID, listID); err != nil {
		return err
	}
	rec, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}

	return s.store.InTx(ctx, func(tx Store) error {
		if rec.InStockListID.Valid && rec.InStockListID.UUID == listID {
			if err := tx.SetInStockList(ctx, orderID, uuid.NullUUID{}); err != nil {
				return fmt.Errorf("clear in-stock list: %w", err)
			}
		}
		return tx.DeleteOrderList(ctx, listID)
	})
}

// Navigation reports the neighbours of a demand list. Lists are ordered by
// creation time; the in-stock list takes no part in navigation.
func (s *PlannerService) Navigation(ctx context.Context, orderID, listID uuid.UUID) (Navigation, error) {
	o, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return Navigation{}, err
	}

	nav := Navigation{ListID: listID, Total: len(o.OrderLists)}
	prev, ok, err := planner.Previous(o.OrderLists, orderID, listID)
	if err != nil {
		if errors.Is(err, planner.ErrListNotFound) {
			return Navigation{}, fmt.Errorf("list %s in order %s: %w", listID, orderID, ErrNotFound)
		}
		return Navigation{}, err
	}
	if ok {
		nav.Previous = &prev.ID
	}
	next, ok, err := planner.Next(o.OrderLists, orderID, listID)
	if err != nil {
		return Navigation{}, err
	}
	if ok {
		nav.Next = &next.ID
	}
	if nav.IsFirst, err = planner.IsFirst(o.OrderLists, orderID, listID); err != nil {
		return Navigation{}, err
	}
	if nav.IsLast, err = planner.IsLast(o.OrderLists, orderID, listID); err != nil {
		return Navigation{}, err
	}
	for i, l := range o.OrderLists {
		if l.ID == listID {
			nav.Position = i + 1
		}
	}
	return nav, nil
}

func (s *PlannerService) createList(ctx context.Context, st Store, orderID uuid.UUID, listType string) (model.OrderList, error) {
	l, err := st.CreateOrderList(ctx, model.OrderList{
		ID:        uuid.New(),
		OrderID:   orderID,
		CreatedAt: s.now(),
		ListType:  listType,
	})
	if err != nil {
		return model.OrderList{}, fmt.Errorf("create list: %w", err)
	}
	l.OrderRows = []model.OrderRow{}
	return l, nil
}

// ensureInStockList returns the designated in-stock list, creating and
// designating one on first use.
func (s *PlannerService) ensureInStockList(ctx context.Context, orderID uuid.UUID) (model.OrderList, error) {
	rec, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return model.OrderList{}, err
	}
	if rec.InStockListID.Valid {
		return s.GetOrderList(ctx, orderID, rec.InStockListID.UUID)
	}

	var l model.OrderList
	err = s.store.InTx(ctx, func(tx Store) error {
		var err error
		if l, err = s.createList(ctx, tx, orderID, enum.ListTypeInStock); err != nil {
			return err
		}
		return tx.SetInStockList(ctx, orderID, uuid.NullUUID{UUID: l.ID, Valid: true})
	})
	return l, err
}
