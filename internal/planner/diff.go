package planner

import (
	"bytes"
	"errors"
	"fmt"
	"slices"

	"github.com/SanderGeraedts/InkoopPlanner/internal/model"
	"github.com/google/uuid"
)

// MaxQuantity is the largest quantity a single row may hold. Sums across
// many lists must stay well inside int32.
const MaxQuantity int32 = 9999

var (
	// ErrNegativeQuantity is returned for any desired quantity below zero.
	ErrNegativeQuantity = errors.New("quantity must be >= 0")
	// ErrQuantityTooLarge is returned for any quantity above MaxQuantity.
	ErrQuantityTooLarge = fmt.Errorf("quantity must be <= %d", MaxQuantity)
	// ErrUnknownProduct is returned when a desired row references a product
	// that is not in the catalog.
	ErrUnknownProduct = errors.New("product not in catalog")
)

// CheckQuantity reports whether qty is a storable row quantity.
func CheckQuantity(qty int32) error {
	switch {
	case qty < 0:
		return ErrNegativeQuantity
	case qty > MaxQuantity:
		return ErrQuantityTooLarge
	}
	return nil
}

// RowDiff lists the writes needed to bring a list's persisted rows in line
// with a desired set of quantities.
type RowDiff struct {
	Create []model.OrderRow // ID unset
	Update []model.OrderRow
	Delete []model.OrderRow
}

// Empty reports whether no writes are needed.
func (d RowDiff) Empty() bool {
	return len(d.Create) == 0 && len(d.Update) == 0 && len(d.Delete) == 0
}

// DiffRows compares the existing rows of listID with desired, a complete
// productID→quantity mapping for the list. Products absent from desired or
// mapped to zero lose their row; positive quantities are created or updated.
// Duplicate rows for one product (which the store should never produce) are
// collapsed: the first is kept and the rest deleted.
//
// Products are resolved through lookup so created rows carry the full
// Product; lookup returning false aborts with ErrUnknownProduct.
func DiffRows(
	listID uuid.UUID,
	existing []model.OrderRow,
	desired map[uuid.UUID]int32,
	lookup func(uuid.UUID) (model.Product, bool),
) (RowDiff, error) {
	for pid, qty := range desired {
		if err := CheckQuantity(qty); err != nil {
			return RowDiff{}, fmt.Errorf("product %s: %w", pid, err)
		}
	}

	var diff RowDiff
	seen := make(map[uuid.UUID]bool, len(existing))
	for _, row := range existing {
		pid := row.Product.ID
		if seen[pid] {
			diff.Delete = append(diff.Delete, row)
			continue
		}
		seen[pid] = true

		qty := desired[pid]
		switch {
		case qty == 0:
			diff.Delete = append(diff.Delete, row)
		case qty != row.Quantity:
			row.Quantity = qty
			diff.Update = append(diff.Update, row)
		}
	}

	pids := make([]uuid.UUID, 0, len(desired))
	for pid, qty := range desired {
		if qty > 0 && !seen[pid] {
			pids = append(pids, pid)
		}
	}
	slices.SortFunc(pids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })

	for _, pid := range pids {
		product, ok := lookup(pid)
		if !ok {
			return RowDiff{}, fmt.Errorf("product %s: %w", pid, ErrUnknownProduct)
		}
		diff.Create = append(diff.Create, model.OrderRow{
			OrderListID: listID,
			Product:     product,
			Quantity:    desired[pid],
		})
	}
	return diff, nil
}
