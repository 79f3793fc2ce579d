package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/SanderGeraedts/InkoopPlanner/internal/enum"
	"github.com/SanderGeraedts/InkoopPlanner/internal/metrics"
	"github.com/SanderGeraedts/InkoopPlanner/internal/model"
	"github.com/SanderGeraedts/InkoopPlanner/internal/planner"
	"github.com/google/uuid"
)

// SetQuantity sets the quantity of one product on a list. Zero removes the
// row; a positive quantity creates or updates it. The list is returned as
// stored afterwards.
func (s *PlannerService) SetQuantity(ctx context.Context, orderID, listID, productID uuid.UUID, qty int32) (model.OrderList, error) {
	if err := planner.CheckQuantity(qty); err != nil {
		s.metrics.QuantitySaved(metrics.SaveInvalid)
		return model.OrderList{}, fmt.Errorf("product %s: %w", productID, err)
	}
	if _, err := s.GetOrderList(ctx, orderID, listID); err != nil {
		return model.OrderList{}, err
	}
	product, err := s.product(ctx, productID)
	if err != nil {
		s.metrics.QuantitySaved(metrics.SaveInvalid)
		return model.OrderList{}, err
	}

	err = s.store.InTx(ctx, func(tx Store) error {
		return setQuantity(ctx, tx, listID, product, qty)
	})
	return s.afterSave(ctx, orderID, listID, err)
}

// SaveQuantities replaces the contents of a list with quantities, a complete
// productID→quantity mapping. Only rows that change are written, and all
// writes are applied together or not at all.
func (s *PlannerService) SaveQuantities(ctx context.Context, orderID, listID uuid.UUID, quantities map[uuid.UUID]int32) (model.OrderList, error) {
	for pid, qty := range quantities {
		if err := planner.CheckQuantity(qty); err != nil {
			s.metrics.QuantitySaved(metrics.SaveInvalid)
			return model.OrderList{}, fmt.Errorf("product %s: %w", pid, err)
		}
	}
	if _, err := s.GetOrderList(ctx, orderID, listID); err != nil {
		return model.OrderList{}, err
	}

	err := s.store.InTx(ctx, func(tx Store) error {
		existing, err := tx.GetOrderRowsByOrderListID(ctx, listID)
		if err != nil {
			return fmt.Errorf("get rows: %w", err)
		}
		products, err := tx.ListProducts(ctx)
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		byID := make(map[uuid.UUID]model.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		diff, err := planner.DiffRows(listID, existing, quantities, func(id uuid.UUID) (model.Product, bool) {
			p, ok := byID[id]
			return p, ok
		})
		if err != nil {
			return err
		}
		return applyDiff(ctx, tx, diff)
	})
	return s.afterSave(ctx, orderID, listID, err)
}

// SetStockQuantity records how much of a product is already on hand. The
// order's in-stock list is created and designated on first use.
func (s *PlannerService) SetStockQuantity(ctx context.Context, orderID, productID uuid.UUID, qty int32) (model.OrderList, error) {
	if err := planner.CheckQuantity(qty); err != nil {
		s.metrics.QuantitySaved(metrics.SaveInvalid)
		return model.OrderList{}, fmt.Errorf("product %s: %w", productID, err)
	}
	rec, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return model.OrderList{}, err
	}
	product, err := s.product(ctx, productID)
	if err != nil {
		s.metrics.QuantitySaved(metrics.SaveInvalid)
		return model.OrderList{}, err
	}

	listID := rec.InStockListID.UUID
	err = s.store.InTx(ctx, func(tx Store) error {
		if !rec.InStockListID.Valid {
			l, err := s.createList(ctx, tx, orderID, enum.ListTypeInStock)
			if err != nil {
				return err
			}
			listID = l.ID
			if err := tx.SetInStockList(ctx, orderID, uuid.NullUUID{UUID: listID, Valid: true}); err != nil {
				return fmt.Errorf("designate in-stock list: %w", err)
			}
		}
		return setQuantity(ctx, tx, listID, product, qty)
	})
	return s.afterSave(ctx, orderID, listID, err)
}

func (s *PlannerService) afterSave(ctx context.Context, orderID, listID uuid.UUID, err error) (model.OrderList, error) {
	if err != nil {
		if errors.Is(err, ErrInvalidQuantity) || errors.Is(err, ErrQuantityTooLarge) || errors.Is(err, ErrUnknownProduct) {
			s.metrics.QuantitySaved(metrics.SaveInvalid)
		} else {
			s.metrics.QuantitySaved(metrics.SaveError)
		}
		return model.OrderList{}, err
	}
	s.metrics.QuantitySaved(metrics.SaveOK)
	return s.GetOrderList(ctx, orderID, listID)
}

func (s *PlannerService) product(ctx context.Context, id uuid.UUID) (model.Product, error) {
	p, err := s.store.GetProduct(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return model.Product{}, fmt.Errorf("product %s: %w", id, ErrUnknownProduct)
	}
	return p, err
}

// setQuantity writes the row presence rule for one product: a row exists
// exactly when the quantity is positive.
func setQuantity(ctx context.Context, tx Store, listID uuid.UUID, product model.Product, qty int32) error {
	existing, err := tx.GetOrderRowsByOrderListID(ctx, listID)
	if err != nil {
		return fmt.Errorf("get rows: %w", err)
	}

	desired := make(map[uuid.UUID]int32, len(existing)+1)
	for _, r := range existing {
		if _, ok := desired[r.Product.ID]; !ok {
			desired[r.Product.ID] = r.Quantity
		}
	}
	desired[product.ID] = qty

	diff, err := planner.DiffRows(listID, existing, desired, func(id uuid.UUID) (model.Product, bool) {
		return product, id == product.ID
	})
	if err != nil {
		return err
	}
	return applyDiff(ctx, tx, diff)
}

// applyDiff writes deletes before updates before creates so the one row per
// product constraint holds at every step.
func applyDiff(ctx context.Context, tx Store, diff planner.RowDiff) error {
	for _, r := range diff.Delete {
		if err := tx.DeleteOrderRow(ctx, r.ID); err != nil {
			return fmt.Errorf("delete row %s: %w", r.ID, err)
		}
	}
	for _, r := range diff.Update {
		if err := tx.UpdateOrderRow(ctx, r); err != nil {
			return fmt.Errorf("update row %s: %w", r.ID, err)
		}
	}
	for _, r := range diff.Create {
		r.ID = uuid.New()
		if _, err := tx.CreateOrderRow(ctx, r); err != nil {
			return fmt.Errorf("create row for product %s: %w", r.Product.ID, err)
		}
	}
	return nil
}
