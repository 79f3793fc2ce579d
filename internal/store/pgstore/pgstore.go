// Package pgstore implements service.Store on PostgreSQL through the sqlc
// queries in internal/database.
package pgstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/SanderGeraedts/InkoopPlanner/internal/database"
	"github.com/SanderGeraedts/InkoopPlanner/internal/enum"
	"github.com/SanderGeraedts/InkoopPlanner/internal/model"
	"github.com/SanderGeraedts/InkoopPlanner/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// TxBeginner starts a new database transaction.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Querier is the subset of *database.Queries used by the store.
type Querier interface {
	ListProducts(ctx context.Context) ([]database.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (database.Product, error)
	CreateProduct(ctx context.Context, arg database.CreateProductParams) (database.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	DeleteAllProducts(ctx context.Context) error

	ListOrders(ctx context.Context) ([]database.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (database.Order, error)
	CreateOrder(ctx context.Context, arg database.CreateOrderParams) (database.Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) (int64, error)
	SetOrderInStockList(ctx context.Context, arg database.SetOrderInStockListParams) (int64, error)

	ListOrderListsByOrder(ctx context.Context, orderID uuid.UUID) ([]database.OrderList, error)
	GetOrderList(ctx context.Context, id uuid.UUID) (database.OrderList, error)
	CreateOrderList(ctx context.Context, arg database.CreateOrderListParams) (database.OrderList, error)
	DeleteOrderList(ctx context.Context, id uuid.UUID) (int64, error)

	ListOrderRowsByOrder(ctx context.Context, orderID uuid.UUID) ([]database.ListOrderRowsByOrderRow, error)
	ListOrderRowsByOrderList(ctx context.Context, orderListID uuid.UUID) ([]database.ListOrderRowsByOrderListRow, error)
	CreateOrderRow(ctx context.Context, arg database.CreateOrderRowParams) (database.OrderRow, error)
	UpdateOrderRowQuantity(ctx context.Context, arg database.UpdateOrderRowQuantityParams) (int64, error)
	DeleteOrderRow(ctx context.Context, id uuid.UUID) (int64, error)
}

// NewQuerier creates a Querier from a DBTX (pool or tx).
type NewQuerier func(db database.DBTX) Querier

// Store is a service.Store backed by PostgreSQL.
type Store struct {
	q    Querier
	pool TxBeginner
	newQ NewQuerier
	inTx bool
}

// New creates a Store on a pool. pool is used both for queries and to begin
// transactions.
func New(pool interface {
	database.DBTX
	TxBeginner
}) *Store {
	return NewWithQuerier(database.New(pool), pool, func(db database.DBTX) Querier { return database.New(db) })
}

// NewWithQuerier wires the store from its parts.
func NewWithQuerier(q Querier, pool TxBeginner, newQ NewQuerier) *Store {
	return &Store{q: q, pool: pool, newQ: newQ}
}

// InTx runs fn inside one PostgreSQL transaction. Nested calls join the
// outer transaction.
func (s *Store) InTx(ctx context.Context, fn func(tx service.Store) error) error {
	if s.inTx {
		return fn(s)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(&Store{q: s.newQ(tx), pool: s.pool, newQ: s.newQ, inTx: true}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// ── Products ──

func (s *Store) ListProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := s.q.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]model.Product, 0, len(rows))
	for _, p := range rows {
		out = append(out, toProduct(p))
	}
	return out, nil
}

func (s *Store) GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error) {
	p, err := s.q.GetProduct(ctx, id)
	if err != nil {
		return model.Product{}, wrap(err, "get product %s", id)
	}
	return toProduct(p), nil
}

func (s *Store) CreateProduct(ctx context.Context, p model.Product) (model.Product, error) {
	row, err := s.q.CreateProduct(ctx, database.CreateProductParams{
		ID:       p.ID,
		Name:     p.Name,
		Category: database.ProductCategory(p.Category),
	})
	if err != nil {
		return model.Product{}, wrap(err, "create product %q", p.Name)
	}
	return toProduct(row), nil
}

func (s *Store) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	n, err := s.q.DeleteProduct(ctx, id)
	return affected(n, err, "delete product %s", id)
}

func (s *Store) CountProducts(ctx context.Context) (int64, error) {
	n, err := s.q.CountProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (s *Store) DeleteAllProducts(ctx context.Context) error {
	if err := s.q.DeleteAllProducts(ctx); err != nil {
		return fmt.Errorf("delete all products: %w", err)
	}
	return nil
}

// ── Orders ──

func (s *Store) ListOrders(ctx context.Context) ([]service.OrderRecord, error) {
	rows, err := s.q.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	out := make([]service.OrderRecord, 0, len(rows))
	for _, o := range rows {
		out = append(out, toOrderRecord(o))
	}
	return out, nil
}

func (s *Store) GetOrder(ctx context.Context, id uuid.UUID) (service.OrderRecord, error) {
	o, err := s.q.GetOrder(ctx, id)
	if err != nil {
		return service.OrderRecord{}, wrap(err, "get order %s", id)
	}
	return toOrderRecord(o), nil
}

func (s *Store) CreateOrder(ctx context.Context, o service.OrderRecord) (service.OrderRecord, error) {
	row, err := s.q.CreateOrder(ctx, database.CreateOrderParams{ID: o.ID, Date: o.Date})
	if err != nil {
		return service.OrderRecord{}, wrap(err, "create order")
	}
	return toOrderRecord(row), nil
}

func (s *Store) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	n, err := s.q.DeleteOrder(ctx, id)
	return affected(n, err, "delete order %s", id)
}

func (s *Store) SetInStockList(ctx context.Context, orderID uuid.UUID, listID uuid.NullUUID) error {
	n, err := s.q.SetOrderInStockList(ctx, database.SetOrderInStockListParams{
		ID:            orderID,
		InStockListID: pgtype.UUID{Bytes: listID.UUID, Valid: listID.Valid},
	})
	return affected(n, err, "set in-stock list of order %s", orderID)
}

// ── Lists ──

func (s *Store) GetOrderListsByOrderID(ctx context.Context, orderID uuid.UUID) ([]model.OrderList, error) {
	lists, err := s.q.ListOrderListsByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order lists: %w", err)
	}
	rows, err := s.q.ListOrderRowsByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order rows: %w", err)
	}

	byList := make(map[uuid.UUID][]model.OrderRow, len(lists))
	for _, r := range rows {
		byList[r.OrderListID] = append(byList[r.OrderListID], model.OrderRow{
			ID:          r.ID,
			OrderListID: r.OrderListID,
			Product:     model.Product{ID: r.ProductID, Name: r.ProductName, Category: enum.Category(r.ProductCategory)},
			Quantity:    r.Quantity,
		})
	}

	out := make([]model.OrderList, 0, len(lists))
	for _, l := range lists {
		ml := toOrderList(l)
		if rows := byList[l.ID]; rows != nil {
			ml.OrderRows = rows
		}
		out = append(out, ml)
	}
	return out, nil
}

func (s *Store) GetOrderList(ctx context.Context, id uuid.UUID) (model.OrderList, error) {
	l, err := s.q.GetOrderList(ctx, id)
	if err != nil {
		return model.OrderList{}, wrap(err, "get order list %s", id)
	}
	ml := toOrderList(l)
	if ml.OrderRows, err = s.GetOrderRowsByOrderListID(ctx, id); err != nil {
		return model.OrderList{}, err
	}
	return ml, nil
}

func (s *Store) CreateOrderList(ctx context.Context, l model.OrderList) (model.OrderList, error) {
	row, err := s.q.CreateOrderList(ctx, database.CreateOrderListParams{
		ID:        l.ID,
		OrderID:   l.OrderID,
		ListType:  l.ListType,
		CreatedAt: l.CreatedAt,
	})
	if err != nil {
		return model.OrderList{}, wrap(err, "create order list for order %s", l.OrderID)
	}
	return toOrderList(row), nil
}

func (s *Store) DeleteOrderList(ctx context.Context, id uuid.UUID) error {
	n, err := s.q.DeleteOrderList(ctx, id)
	return affected(n, err, "delete order list %s", id)
}

// ── Rows ──

func (s *Store) GetOrderRowsByOrderListID(ctx context.Context, listID uuid.UUID) ([]model.OrderRow, error) {
	rows, err := s.q.ListOrderRowsByOrderList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list rows of %s: %w", listID, err)
	}
	out := make([]model.OrderRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.OrderRow{
			ID:          r.ID,
			OrderListID: r.OrderListID,
			Product:     model.Product{ID: r.ProductID, Name: r.ProductName, Category: enum.Category(r.ProductCategory)},
			Quantity:    r.Quantity,
		})
	}
	return out, nil
}

func (s *Store) CreateOrderRow(ctx context.Context, r model.OrderRow) (model.OrderRow, error) {
	row, err := s.q.CreateOrderRow(ctx, database.CreateOrderRowParams{
		ID:          r.ID,
		OrderListID: r.OrderListID,
		ProductID:   r.Product.ID,
		Quantity:    r.Quantity,
	})
	if err != nil {
		return model.OrderRow{}, wrap(err, "create row for product %s", r.Product.ID)
	}
	r.ID = row.ID
	r.Quantity = row.Quantity
	return r, nil
}

func (s *Store) UpdateOrderRow(ctx context.Context, r model.OrderRow) error {
	n, err := s.q.UpdateOrderRowQuantity(ctx, database.UpdateOrderRowQuantityParams{ID: r.ID, Quantity: r.Quantity})
	return affected(n, err, "update row %s", r.ID)
}

func (s *Store) DeleteOrderRow(ctx context.Context, id uuid.UUID) error {
	n, err := s.q.DeleteOrderRow(ctx, id)
	return affected(n, err, "delete row %s", id)
}

// ── Helpers ──

func toProduct(p database.Product) model.Product {
	return model.Product{ID: p.ID, Name: p.Name, Category: enum.Category(p.Category)}
}

func toOrderRecord(o database.Order) service.OrderRecord {
	rec := service.OrderRecord{ID: o.ID, Date: o.Date}
	if o.InStockListID.Valid {
		rec.InStockListID = uuid.NullUUID{UUID: o.InStockListID.Bytes, Valid: true}
	}
	return rec
}

func toOrderList(l database.OrderList) model.OrderList {
	return model.OrderList{
		ID:        l.ID,
		OrderID:   l.OrderID,
		CreatedAt: l.CreatedAt,
		ListType:  l.ListType,
		OrderRows: []model.OrderRow{},
	}
}

// wrap maps no-rows and constraint violations onto the service sentinels.
func wrap(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", msg, service.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", msg, service.ErrConflict)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s: %w", msg, service.ErrNotFound)
		case "23514": // check_violation
			if pgErr.ConstraintName == "order_rows_quantity_max" {
				return fmt.Errorf("%s: %w", msg, service.ErrQuantityTooLarge)
			}
			return fmt.Errorf("%s: %w", msg, service.ErrInvalidQuantity)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func affected(n int64, err error, format string, args ...any) error {
	if err != nil {
		return wrap(err, format, args...)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), service.ErrNotFound)
	}
	return nil
}
