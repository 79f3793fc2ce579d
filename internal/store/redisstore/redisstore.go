// Package redisstore implements service.Store on Redis hashes and sets.
//
// Key layout, all under a configurable namespace {ns}:
//
//	{ns}:products               set of product ids
//	{ns}:product:{id}           hash name, category
//	{ns}:product:{id}:rows      set of row ids referencing the product
//	{ns}:orders                 set of order ids
//	{ns}:order:{id}             hash date, in_stock
//	{ns}:order:{id}:lists       set of list ids
//	{ns}:list:{id}              hash order_id, created_at, list_type
//	{ns}:list:{id}:rows         hash product_id -> row_id
//	{ns}:row:{id}               hash order_list_id, product_id, quantity
//
// Writes inside InTx are queued on a MULTI/EXEC pipeline and become visible
// only when the transaction commits. Reads always see committed data.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/SanderGeraedts/InkoopPlanner/internal/enum"
	"github.com/SanderGeraedts/InkoopPlanner/internal/model"
	"github.com/SanderGeraedts/InkoopPlanner/internal/planner"
	"github.com/SanderGeraedts/InkoopPlanner/internal/service"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// DefaultNamespace prefixes every key when no namespace is configured.
const DefaultNamespace = "inkoop"

// Store is a service.Store backed by Redis.
type Store struct {
	rdb *redis.Client
	ns  string

	// Set only on the copy handed to an InTx callback.
	pipe    redis.Pipeliner
	pending map[string]struct{}
}

// New creates a Store. The client should already be connected.
func New(rdb *redis.Client, namespace string) *Store {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Store{rdb: rdb, ns: namespace}
}

// InTx queues every write made by fn and applies them atomically with
// MULTI/EXEC. Nothing is written when fn fails.
func (s *Store) InTx(ctx context.Context, fn func(tx service.Store) error) error {
	if s.pipe != nil {
		return fn(s)
	}

	pipe := s.rdb.TxPipeline()
	tx := &Store{rdb: s.rdb, ns: s.ns, pipe: pipe, pending: map[string]struct{}{}}
	if err := fn(tx); err != nil {
		_ = pipe.Discard()
		return err
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("exec tx: %w", err)
	}
	return nil
}

// ── Keys ──

func (s *Store) key(parts ...string) string {
	return s.ns + ":" + strings.Join(parts, ":")
}

func (s *Store) productsKey() string { return s.key("products") }
func (s *Store) productKey(id uuid.UUID) string { return s.key("product", id.String()) }
func (s *Store) productRowsKey(id uuid.UUID) string { return s.key("product", id.String(), "rows") }
func (s *Store) ordersKey() string { return s.key("orders") }
func (s *Store) orderKey(id uuid.UUID) string { return s.key("order", id.String()) }
func (s *Store) orderListsKey(id uuid.UUID) string { return s.key("order", id.String(), "lists") }
func (s *Store) listKey(id uuid.UUID) string { return s.key("list", id.String()) }
func (s *Store) listRowsKey(id uuid.UUID) string { return s.key("list", id.String(), "rows") }
func (s *Store) rowKey(id uuid.UUID) string { return s.key("row", id.String()) }

// ── Primitives ──

// write runs fn on the open transaction, or on a fresh one when there is none.
func (s *Store) write(ctx context.Context, fn func(p redis.Pipeliner)) error {
	if s.pipe != nil {
		fn(s.pipe)
		return nil
	}
	_, err := s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		fn(p)
		return nil
	})
	return err
}

// created marks key as written by the open transaction.
func (s *Store) created(key string) {
	if s.pending != nil {
		s.pending[key] = struct{}{}
	}
}

// exists reports whether key is committed or created in the open transaction.
func (s *Store) exists(ctx context.Context, key string) (bool, error) {
	if _, ok := s.pending[key]; ok {
		return true, nil
	}
	n, err := s.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) hash(ctx context.Context, key string) (map[string]string, error) {
	h, err := s.rdb.HGetAll(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	if len(h) == 0 {
		return nil, service.ErrNotFound
	}
	return h, nil
}

// hashes fetches many hashes in one round trip. Missing keys yield nil maps.
func (s *Store) hashes(ctx context.Context, keys []string) ([]map[string]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	cmds := make([]*redis.StringStringMapCmd, len(keys))
	_, err := s.rdb.Pipelined(ctx, func(p redis.Pipeliner) error {
		for i, k := range keys {
			cmds[i] = p.HGetAll(ctx, k)
		}
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	out := make([]map[string]string, len(keys))
	for i, c := range cmds {
		if h := c.Val(); len(h) > 0 {
			out[i] = h
		}
	}
	return out, nil
}

func (s *Store) members(ctx context.Context, key string) ([]uuid.UUID, error) {
	raw, err := s.rdb.SMembers(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	return parseIDs(raw)
}

// ── Products ──

func (s *Store) ListProducts(ctx context.Context) ([]model.Product, error) {
	ids, err := s.members(ctx, s.productsKey())
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	products, err := s.products(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (s *Store) GetProduct(ctx context.Context, id uuid.UUID) (model.Product, error) {
	h, err := s.hash(ctx, s.productKey(id))
	if err != nil {
		return model.Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	return toProduct(id, h), nil
}

func (s *Store) CreateProduct(ctx context.Context, p model.Product) (model.Product, error) {
	key := s.productKey(p.ID)
	ok, err := s.exists(ctx, key)
	if err != nil {
		return model.Product{}, fmt.Errorf("create product %q: %w", p.Name, err)
	}
	if ok {
		return model.Product{}, fmt.Errorf("create product %q: %w", p.Name, service.ErrConflict)
	}

	err = s.write(ctx, func(pipe redis.Pipeliner) {
		pipe.HSet(ctx, key, "name", p.Name, "category", string(p.Category))
		pipe.SAdd(ctx, s.productsKey(), p.ID.String())
	})
	if err != nil {
		return model.Product{}, fmt.Errorf("create product %q: %w", p.Name, err)
	}
	s.created(key)
	return p, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	ok, err := s.exists(ctx, s.productKey(id))
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("delete product %s: %w", id, service.ErrNotFound)
	}

	rowIDs, err := s.members(ctx, s.productRowsKey(id))
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	rows, err := s.rawRows(ctx, rowIDs)
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}

	return s.write(ctx, func(p redis.Pipeliner) {
		for _, r := range rows {
			s.queueRowDelete(ctx, p, r)
		}
		p.Del(ctx, s.productKey(id), s.productRowsKey(id))
		p.SRem(ctx, s.productsKey(), id.String())
	})
}

func (s *Store) CountProducts(ctx context.Context) (int64, error) {
	n, err := s.rdb.SCard(ctx, s.productsKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (s *Store) DeleteAllProducts(ctx context.Context) error {
	ids, err := s.members(ctx, s.productsKey())
	if err != nil {
		return fmt.Errorf("delete all products: %w", err)
	}
	return s.InTx(ctx, func(tx service.Store) error {
		for _, id := range ids {
			if err := tx.DeleteProduct(ctx, id); err != nil {
				return err
			}
		}
		return nil
	})
}

// products loads product hashes by id. Ids without a hash are skipped.
func (s *Store) products(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.Product, error) {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.productKey(id)
	}
	hs, err := s.hashes(ctx, keys)
	if err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]model.Product, len(ids))
	for i, h := range hs {
		if h != nil {
			out[ids[i]] = toProduct(ids[i], h)
		}
	}
	return out, nil
}

// ── Orders ──

func (s *Store) ListOrders(ctx context.Context) ([]service.OrderRecord, error) {
	ids, err := s.members(ctx, s.ordersKey())
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.orderKey(id)
	}
	hs, err := s.hashes(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	out := make([]service.OrderRecord, 0, len(ids))
	for i, h := range hs {
		if h == nil {
			continue
		}
		rec, err := toOrderRecord(ids[i], h)
		if err != nil {
			return nil, fmt.Errorf("list orders: %w", err)
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (s *Store) GetOrder(ctx context.Context, id uuid.UUID) (service.OrderRecord, error) {
	h, err := s.hash(ctx, s.orderKey(id))
	if err != nil {
		return service.OrderRecord{}, fmt.Errorf("get order %s: %w", id, err)
	}
	rec, err := toOrderRecord(id, h)
	if err != nil {
		return service.OrderRecord{}, fmt.Errorf("get order %s: %w", id, err)
	}
	return rec, nil
}

func (s *Store) CreateOrder(ctx context.Context, o service.OrderRecord) (service.OrderRecord, error) {
	key := s.orderKey(o.ID)
	ok, err := s.exists(ctx, key)
	if err != nil {
		return service.OrderRecord{}, fmt.Errorf("create order: %w", err)
	}
	if ok {
		return service.OrderRecord{}, fmt.Errorf("create order %s: %w", o.ID, service.ErrConflict)
	}

	err = s.write(ctx, func(p redis.Pipeliner) {
		p.HSet(ctx, key, "date", o.Date.UTC().Format(time.RFC3339Nano), "in_stock", nullID(o.InStockListID))
		p.SAdd(ctx, s.ordersKey(), o.ID.String())
	})
	if err != nil {
		return service.OrderRecord{}, fmt.Errorf("create order: %w", err)
	}
	s.created(key)
	return o, nil
}

func (s *Store) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	ok, err := s.exists(ctx, s.orderKey(id))
	if err != nil {
		return fmt.Errorf("delete order %s: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("delete order %s: %w", id, service.ErrNotFound)
	}

	listIDs, err := s.members(ctx, s.orderListsKey(id))
	if err != nil {
		return fmt.Errorf("delete order %s: %w", id, err)
	}
	var rows []rawRow
	for _, lid := range listIDs {
		rs, err := s.listRawRows(ctx, lid)
		if err != nil {
			return fmt.Errorf("delete order %s: %w", id, err)
		}
		rows = append(rows, rs...)
	}

	return s.write(ctx, func(p redis.Pipeliner) {
		for _, r := range rows {
			s.queueRowDelete(ctx, p, r)
		}
		for _, lid := range listIDs {
			p.Del(ctx, s.listKey(lid), s.listRowsKey(lid))
		}
		p.Del(ctx, s.orderKey(id), s.orderListsKey(id))
		p.SRem(ctx, s.ordersKey(), id.String())
	})
}

func (s *Store) SetInStockList(ctx context.Context, orderID uuid.UUID, listID uuid.NullUUID) error {
	ok, err := s.exists(ctx, s.orderKey(orderID))
	if err != nil {
		return fmt.Errorf("set in-stock list of order %s: %w", orderID, err)
	}
	if !ok {
		return fmt.Errorf("set in-stock list of order %s: %w", orderID, service.ErrNotFound)
	}
	return s.write(ctx, func(p redis.Pipeliner) {
		p.HSet(ctx, s.orderKey(orderID), "in_stock", nullID(listID))
	})
}

// ── Lists ──

func (s *Store) GetOrderListsByOrderID(ctx context.Context, orderID uuid.UUID) ([]model.OrderList, error) {
	ids, err := s.members(ctx, s.orderListsKey(orderID))
	if err != nil {
		return nil, fmt.Errorf("list order lists: %w", err)
	}
	out := make([]model.OrderList, 0, len(ids))
	for _, id := range ids {
		l, err := s.GetOrderList(ctx, id)
		if errors.Is(err, service.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

func (s *Store) GetOrderList(ctx context.Context, id uuid.UUID) (model.OrderList, error) {
	h, err := s.hash(ctx, s.listKey(id))
	if err != nil {
		return model.OrderList{}, fmt.Errorf("get order list %s: %w", id, err)
	}
	l, err := toOrderList(id, h)
	if err != nil {
		return model.OrderList{}, fmt.Errorf("get order list %s: %w", id, err)
	}
	if l.OrderRows, err = s.GetOrderRowsByOrderListID(ctx, id); err != nil {
		return model.OrderList{}, err
	}
	return l, nil
}

func (s *Store) CreateOrderList(ctx context.Context, l model.OrderList) (model.OrderList, error) {
	ok, err := s.exists(ctx, s.orderKey(l.OrderID))
	if err != nil {
		return model.OrderList{}, fmt.Errorf("create order list for order %s: %w", l.OrderID, err)
	}
	if !ok {
		return model.OrderList{}, fmt.Errorf("create order list for order %s: %w", l.OrderID, service.ErrNotFound)
	}

	key := s.listKey(l.ID)
	err = s.write(ctx, func(p redis.Pipeliner) {
		p.HSet(ctx, key,
			"order_id", l.OrderID.String(),
			"created_at", l.CreatedAt.UTC().Format(time.RFC3339Nano),
			"list_type", l.ListType,
		)
		p.SAdd(ctx, s.orderListsKey(l.OrderID), l.ID.String())
	})
	if err != nil {
		return model.OrderList{}, fmt.Errorf("create order list for order %s: %w", l.OrderID, err)
	}
	s.created(key)
	l.OrderRows = []model.OrderRow{}
	return l, nil
}

func (s *Store) DeleteOrderList(ctx context.Context, id uuid.UUID) error {
	h, err := s.hash(ctx, s.listKey(id))
	if err != nil {
		return fmt.Errorf("delete order list %s: %w", id, err)
	}
	orderID, err := uuid.Parse(h["order_id"])
	if err != nil {
		return fmt.Errorf("delete order list %s: %w", id, err)
	}
	rows, err := s.listRawRows(ctx, id)
	if err != nil {
		return fmt.Errorf("delete order list %s: %w", id, err)
	}
	inStock, err := s.rdb.HGet(ctx, s.orderKey(orderID), "in_stock").Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("delete order list %s: %w", id, err)
	}

	return s.write(ctx, func(p redis.Pipeliner) {
		for _, r := range rows {
			s.queueRowDelete(ctx, p, r)
		}
		p.Del(ctx, s.listKey(id), s.listRowsKey(id))
		p.SRem(ctx, s.orderListsKey(orderID), id.String())
		if inStock == id.String() {
			p.HSet(ctx, s.orderKey(orderID), "in_stock", "")
		}
	})
}

// ── Rows ──

type rawRow struct {
	id        uuid.UUID
	listID    uuid.UUID
	productID uuid.UUID
	quantity  int32
}

func (s *Store) GetOrderRowsByOrderListID(ctx context.Context, listID uuid.UUID) ([]model.OrderRow, error) {
	raw, err := s.listRawRows(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list rows of %s: %w", listID, err)
	}
	pids := make([]uuid.UUID, len(raw))
	for i, r := range raw {
		pids[i] = r.productID
	}
	products, err := s.products(ctx, pids)
	if err != nil {
		return nil, fmt.Errorf("list rows of %s: %w", listID, err)
	}

	out := make([]model.OrderRow, 0, len(raw))
	for _, r := range raw {
		p, ok := products[r.productID]
		if !ok {
			continue
		}
		out = append(out, model.OrderRow{ID: r.id, OrderListID: r.listID, Product: p, Quantity: r.quantity})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Product.Name != out[j].Product.Name {
			return out[i].Product.Name < out[j].Product.Name
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (s *Store) CreateOrderRow(ctx context.Context, r model.OrderRow) (model.OrderRow, error) {
	pid := r.Product.ID.String()
	if err := checkRowQuantity(r.Quantity); err != nil {
		return model.OrderRow{}, fmt.Errorf("create row for product %s: %w", pid, err)
	}
	for _, key := range []string{s.listKey(r.OrderListID), s.productKey(r.Product.ID)} {
		ok, err := s.exists(ctx, key)
		if err != nil {
			return model.OrderRow{}, fmt.Errorf("create row for product %s: %w", pid, err)
		}
		if !ok {
			return model.OrderRow{}, fmt.Errorf("create row for product %s: %w", pid, service.ErrNotFound)
		}
	}

	slot := s.listRowsKey(r.OrderListID) + ":" + pid
	taken, err := s.rdb.HExists(ctx, s.listRowsKey(r.OrderListID), pid).Result()
	if err != nil {
		return model.OrderRow{}, fmt.Errorf("create row for product %s: %w", pid, err)
	}
	if _, ok := s.pending[slot]; taken || ok {
		return model.OrderRow{}, fmt.Errorf("create row for product %s: %w", pid, service.ErrConflict)
	}

	err = s.write(ctx, func(p redis.Pipeliner) {
		p.HSet(ctx, s.rowKey(r.ID),
			"order_list_id", r.OrderListID.String(),
			"product_id", pid,
			"quantity", strconv.FormatInt(int64(r.Quantity), 10),
		)
		p.HSet(ctx, s.listRowsKey(r.OrderListID), pid, r.ID.String())
		p.SAdd(ctx, s.productRowsKey(r.Product.ID), r.ID.String())
	})
	if err != nil {
		return model.OrderRow{}, fmt.Errorf("create row for product %s: %w", pid, err)
	}
	s.created(s.rowKey(r.ID))
	s.created(slot)
	return r, nil
}

func (s *Store) UpdateOrderRow(ctx context.Context, r model.OrderRow) error {
	if err := checkRowQuantity(r.Quantity); err != nil {
		return fmt.Errorf("update row %s: %w", r.ID, err)
	}
	ok, err := s.exists(ctx, s.rowKey(r.ID))
	if err != nil {
		return fmt.Errorf("update row %s: %w", r.ID, err)
	}
	if !ok {
		return fmt.Errorf("update row %s: %w", r.ID, service.ErrNotFound)
	}
	return s.write(ctx, func(p redis.Pipeliner) {
		p.HSet(ctx, s.rowKey(r.ID), "quantity", strconv.FormatInt(int64(r.Quantity), 10))
	})
}

// checkRowQuantity mirrors the order_rows CHECK constraints of the
// postgres schema: stored rows are never empty and never above the maximum.
func checkRowQuantity(qty int32) error {
	if qty == 0 {
		return service.ErrInvalidQuantity
	}
	return planner.CheckQuantity(qty)
}

func (s *Store) DeleteOrderRow(ctx context.Context, id uuid.UUID) error {
	rows, err := s.rawRows(ctx, []uuid.UUID{id})
	if err != nil {
		return fmt.Errorf("delete row %s: %w", id, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("delete row %s: %w", id, service.ErrNotFound)
	}
	return s.write(ctx, func(p redis.Pipeliner) {
		s.queueRowDelete(ctx, p, rows[0])
	})
}

func (s *Store) queueRowDelete(ctx context.Context, p redis.Pipeliner, r rawRow) {
	p.Del(ctx, s.rowKey(r.id))
	p.HDel(ctx, s.listRowsKey(r.listID), r.productID.String())
	p.SRem(ctx, s.productRowsKey(r.productID), r.id.String())
}

func (s *Store) listRawRows(ctx context.Context, listID uuid.UUID) ([]rawRow, error) {
	slots, err := s.rdb.HGetAll(ctx, s.listRowsKey(listID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(slots))
	for _, v := range slots {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("row id %q: %w", v, err)
		}
		ids = append(ids, id)
	}
	return s.rawRows(ctx, ids)
}

// rawRows loads row hashes by id. Ids without a hash are skipped.
func (s *Store) rawRows(ctx context.Context, ids []uuid.UUID) ([]rawRow, error) {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.rowKey(id)
	}
	hs, err := s.hashes(ctx, keys)
	if err != nil {
		return nil, err
	}
	out := make([]rawRow, 0, len(ids))
	for i, h := range hs {
		if h == nil {
			continue
		}
		r, err := toRawRow(ids[i], h)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// ── Decoding ──

func toProduct(id uuid.UUID, h map[string]string) model.Product {
	return model.Product{ID: id, Name: h["name"], Category: enum.Category(h["category"])}
}

func toOrderRecord(id uuid.UUID, h map[string]string) (service.OrderRecord, error) {
	date, err := time.Parse(time.RFC3339Nano, h["date"])
	if err != nil {
		return service.OrderRecord{}, fmt.Errorf("order date: %w", err)
	}
	rec := service.OrderRecord{ID: id, Date: date.UTC()}
	if v := h["in_stock"]; v != "" {
		lid, err := uuid.Parse(v)
		if err != nil {
			return service.OrderRecord{}, fmt.Errorf("in-stock list: %w", err)
		}
		rec.InStockListID = uuid.NullUUID{UUID: lid, Valid: true}
	}
	return rec, nil
}

func toOrderList(id uuid.UUID, h map[string]string) (model.OrderList, error) {
	orderID, err := uuid.Parse(h["order_id"])
	if err != nil {
		return model.OrderList{}, fmt.Errorf("order id: %w", err)
	}
	created, err := time.Parse(time.RFC3339Nano, h["created_at"])
	if err != nil {
		return model.OrderList{}, fmt.Errorf("created at: %w", err)
	}
	return model.OrderList{
		ID:        id,
		OrderID:   orderID,
		CreatedAt: created.UTC(),
		ListType:  h["list_type"],
		OrderRows: []model.OrderRow{},
	}, nil
}

func toRawRow(id uuid.UUID, h map[string]string) (rawRow, error) {
	listID, err := uuid.Parse(h["order_list_id"])
	if err != nil {
		return rawRow{}, fmt.Errorf("row %s list id: %w", id, err)
	}
	productID, err := uuid.Parse(h["product_id"])
	if err != nil {
		return rawRow{}, fmt.Errorf("row %s product id: %w", id, err)
	}
	qty, err := strconv.ParseInt(h["quantity"], 10, 32)
	if err != nil {
		return rawRow{}, fmt.Errorf("row %s quantity: %w", id, err)
	}
	return rawRow{id: id, listID: listID, productID: productID, quantity: int32(qty)}, nil
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(raw))
	for _, v := range raw {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("id %q: %w", v, err)
		}
		out = append(out, id)
	}
	return out, nil
}

func nullID(id uuid.NullUUID) string {
	if !id.Valid {
		return ""
	}
	return id.UUID.String()
}
