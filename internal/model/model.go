// Package model holds the plain data shapes shared by the planner core,
// the persistence gateways and the HTTP layer.
package model

import (
	"time"

	"github.com/SanderGeraedts/InkoopPlanner/internal/enum"
	"github.com/google/uuid"
)

// Product is a catalog item. Products are immutable after creation.
type Product struct {
	ID       uuid.UUID     `json:"id"`
	Name     string        `json:"name"`
	Category enum.Category `json:"category"`
}

// Order is a purchasing round. OrderLists holds the demand lists only;
// the designated in-stock list, if any, is carried separately in InStock.
type Order struct {
	ID         uuid.UUID   `json:"id"`
	Date       time.Time   `json:"date"`
	OrderLists []OrderList `json:"order_lists"`
	InStock    *OrderList  `json:"in_stock,omitempty"`
}

// OrderList is one shopping-list pass within an Order.
type OrderList struct {
	ID        uuid.UUID  `json:"id"`
	OrderID   uuid.UUID  `json:"order_id"`
	CreatedAt time.Time  `json:"created_at"`
	ListType  string     `json:"list_type,omitempty"`
	OrderRows []OrderRow `json:"order_rows"`
}

// OrderRow is a (product, quantity) line within an OrderList.
// A zero quantity is represented by the absence of a row.
type OrderRow struct {
	ID          uuid.UUID `json:"id"`
	OrderListID uuid.UUID `json:"order_list_id"`
	Product     Product   `json:"product"`
	Quantity    int32     `json:"quantity"`
}
