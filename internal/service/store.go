package service

import (
	"context"
	"errors"
	"time"

	"github.com/SanderGeraedts/InkoopPlanner/internal/model"
	"github.com/SanderGeraedts/InkoopPlanner/internal/planner"
	"github.com/google/uuid"
)

// Errors returned by the planner service and the store backends.
var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflicts with existing data")
	ErrInvalidQuantity  = planner.ErrNegativeQuantity
	ErrQuantityTooLarge = planner.ErrQuantityTooLarge
	ErrUnknownProduct   = planner.ErrUnknownProduct
	ErrEmptyProductName = errors.New("product name is required")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrInvalidListType  = errors.New("invalid list_type")
)

// OrderRecord is the stored shape of an order, before its lists are attached.
type OrderRecord struct {
	ID            uuid.UUID
	Date          time.Time
	InStockListID uuid.NullUUID
}

// Store is the persistence gateway. Implemented by pgstore and redisstore.
//
// Lookups of a missing entity and deletes of a missing entity return an error
// wrapping ErrNotFound. Deleting an order removes its lists and rows; deleting
// a list removes its rows and clears the order's in-stock designation when it
// pointed at that list; deleting a product removes the rows referencing it.
//
// Writes made inside InTx are applied atomically when fn returns nil and
// discarded otherwise. Reads inside InTx observe at least the state as of the
// start of the transaction; callers must not rely on reading their own
// uncommitted writes.
type Store interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error)
	CreateProduct(ctx context.Context, p model.Product) (model.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	CountProducts(ctx context.Context) (int64, error)
	DeleteAllProducts(ctx context.Context) error

	// ListOrders returns orders by date, newest first.
	ListOrders(ctx context.Context) ([]OrderRecord, error)
	GetOrder(ctx context.Context, id uuid.UUID) (OrderRecord, error)
	CreateOrder(ctx context.Context, o OrderRecord) (OrderRecord, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error
	SetInStockList(ctx context.Context, orderID uuid.UUID, listID uuid.NullUUID) error

	// GetOrderListsByOrderID returns every list of the order, including the
	// in-stock list, each populated with its rows.
	GetOrderListsByOrderID(ctx context.Context, orderID uuid.UUID) ([]model.OrderList, error)
	GetOrderList(ctx context.Context, id uuid.UUID) (model.OrderList, error)
	CreateOrderList(ctx context.Context, l model.OrderList) (model.OrderList, error)
	DeleteOrderList(ctx context.Context, id uuid.UUID) error

	GetOrderRowsByOrderListID(ctx context.Context, listID uuid.UUID) ([]model.OrderRow, error)
	// CreateOrderRow returns ErrConflict when the list already has a row for
	// the product.
	CreateOrderRow(ctx context.Context, r model.OrderRow) (model.OrderRow, error)
	UpdateOrderRow(ctx context.Context, r model.OrderRow) error
	DeleteOrderRow(ctx context.Context, id uuid.UUID) error

	InTx(ctx context.Context, fn func(tx Store) error) error
}
