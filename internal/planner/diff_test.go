package planner

import (
	"errors"
	"math"
	"testing"

	"github.com/SanderGeraedts/InkoopPlanner/internal/model"
	"github.com/google/uuid"
)

func catalogLookup(products ...model.Product) func(uuid.UUID) (model.Product, bool) {
	byID := make(map[uuid.UUID]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return func(id uuid.UUID) (model.Product, bool) {
		p, ok := byID[id]
		return p, ok
	}
}

func TestDiffRows(t *testing.T) {
	listID := uuid.New()
	apple, banana, cherry := product("apple"), product("banana"), product("cherry")
	appleRow := row(apple, 2)
	bananaRow := row(banana, 1)
	existing := []model.OrderRow{appleRow, bananaRow}

	diff, err := DiffRows(listID, existing, map[uuid.UUID]int32{
		apple.ID:  5, // changed
		banana.ID: 0, // removed
		cherry.ID: 3, // new
	}, catalogLookup(apple, banana, cherry))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(diff.Update) != 1 || diff.Update[0].ID != appleRow.ID || diff.Update[0].Quantity != 5 {
		t.Errorf("update: got %+v", diff.Update)
	}
	if len(diff.Delete) != 1 || diff.Delete[0].ID != bananaRow.ID {
		t.Errorf("delete: got %+v", diff.Delete)
	}
	if len(diff.Create) != 1 {
		t.Fatalf("create: got %d rows, want 1", len(diff.Create))
	}
	created := diff.Create[0]
	if created.Product.ID != cherry.ID || created.Quantity != 3 || created.OrderListID != listID {
		t.Errorf("create: got %+v", created)
	}
}

func TestDiffRows_UnchangedIsEmpty(t *testing.T) {
	apple := product("apple")
	existing := []model.OrderRow{row(apple, 2)}

	diff, err := DiffRows(uuid.New(), existing, map[uuid.UUID]int32{apple.ID: 2}, catalogLookup(apple))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !diff.Empty() {
		t.Errorf("expected empty diff, got %+v", diff)
	}
}

func TestDiffRows_AbsentProductIsDeleted(t *testing.T) {
	apple := product("apple")
	existing := []model.OrderRow{row(apple, 2)}

	diff, err := DiffRows(uuid.New(), existing, map[uuid.UUID]int32{}, catalogLookup(apple))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diff.Delete) != 1 {
		t.Errorf("expected 1 delete, got %d", len(diff.Delete))
	}
}

func TestDiffRows_CollapsesDuplicates(t *testing.T) {
	apple := product("apple")
	first, dup := row(apple, 2), row(apple, 4)

	diff, err := DiffRows(uuid.New(), []model.OrderRow{first, dup}, map[uuid.UUID]int32{apple.ID: 2}, catalogLookup(apple))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diff.Delete) != 1 || diff.Delete[0].ID != dup.ID {
		t.Errorf("expected duplicate row deleted, got %+v", diff.Delete)
	}
	if len(diff.Create) != 0 || len(diff.Update) != 0 {
		t.Errorf("expected no create/update, got %+v", diff)
	}
}

func TestDiffRows_NegativeQuantity(t *testing.T) {
	apple := product("apple")
	_, err := DiffRows(uuid.New(), nil, map[uuid.UUID]int32{apple.ID: -1}, catalogLookup(apple))
	if !errors.Is(err, ErrNegativeQuantity) {
		t.Errorf("got %v, want ErrNegativeQuantity", err)
	}
}

func TestDiffRows_QuantityTooLarge(t *testing.T) {
	apple := product("apple")
	_, err := DiffRows(uuid.New(), nil, map[uuid.UUID]int32{apple.ID: MaxQuantity + 1}, catalogLookup(apple))
	if !errors.Is(err, ErrQuantityTooLarge) {
		t.Errorf("got %v, want ErrQuantityTooLarge", err)
	}
}

func TestCheckQuantity(t *testing.T) {
	tests := []struct {
		qty  int32
		want error
	}{
		{-1, ErrNegativeQuantity},
		{0, nil},
		{1, nil},
		{MaxQuantity, nil},
		{MaxQuantity + 1, ErrQuantityTooLarge},
		{math.MaxInt32, ErrQuantityTooLarge},
	}
	for _, tt := range tests {
		if err := CheckQuantity(tt.qty); !errors.Is(err, tt.want) {
			t.Errorf("CheckQuantity(%d): got %v, want %v", tt.qty, err, tt.want)
		}
	}
}

func TestDiffRows_UnknownProduct(t *testing.T) {
	_, err := DiffRows(uuid.New(), nil, map[uuid.UUID]int32{uuid.New(): 1}, catalogLookup())
	if !errors.Is(err, ErrUnknownProduct) {
		t.Errorf("got %v, want ErrUnknownProduct", err)
	}
}
