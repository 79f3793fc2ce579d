package planner

import (
	"bytes"
	"errors"
	"slices"

	"github.com/SanderGeraedts/InkoopPlanner/internal/model"
	"github.com/google/uuid"
)

// ErrListNotFound is returned when the current list does not exist or belongs
// to a different order.
var ErrListNotFound = errors.New("order list not found")

// compareLists orders by CreatedAt ascending; equal timestamps fall back to
// byte order of the IDs so the sequence is total.
func compareLists(a, b model.OrderList) int {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return bytes.Compare(a.ID[:], b.ID[:])
}

// SortLists returns the lists of orderID in navigation order. Lists of other
// orders are dropped.
func SortLists(lists []model.OrderList, orderID uuid.UUID) []model.OrderList {
	out := make([]model.OrderList, 0, len(lists))
	for _, l := range lists {
		if l.OrderID == orderID {
			out = append(out, l)
		}
	}
	slices.SortFunc(out, compareLists)
	return out
}

func position(lists []model.OrderList, orderID, listID uuid.UUID) ([]model.OrderList, int, error) {
	sorted := SortLists(lists, orderID)
	i := slices.IndexFunc(sorted, func(l model.OrderList) bool { return l.ID == listID })
	if i < 0 {
		return nil, -1, ErrListNotFound
	}
	return sorted, i, nil
}

// Previous returns the list created immediately before listID within orderID.
// ok is false when listID is the first list.
func Previous(lists []model.OrderList, orderID, listID uuid.UUID) (prev model.OrderList, ok bool, err error) {
	sorted, i, err := position(lists, orderID, listID)
	if err != nil {
		return model.OrderList{}, false, err
	}
	if i == 0 {
		return model.OrderList{}, false, nil
	}
	return sorted[i-1], true, nil
}

// Next returns the list created immediately after listID within orderID.
// ok is false when listID is the last list.
func Next(lists []model.OrderList, orderID, listID uuid.UUID) (next model.OrderList, ok bool, err error) {
	sorted, i, err := position(lists, orderID, listID)
	if err != nil {
		return model.OrderList{}, false, err
	}
	if i == len(sorted)-1 {
		return model.OrderList{}, false, nil
	}
	return sorted[i+1], true, nil
}

// IsFirst reports whether listID has no predecessor.
func IsFirst(lists []model.OrderList, orderID, listID uuid.UUID) (bool, error) {
	_, ok, err := Previous(lists, orderID, listID)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// IsLast reports whether listID has no successor.
func IsLast(lists []model.OrderList, orderID, listID uuid.UUID) (bool, error) {
	_, ok, err := Next(lists, orderID, listID)
	if err != nil {
		return false, err
	}
	return !ok, nil
}
