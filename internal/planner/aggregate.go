// Package planner holds the pure order-planning logic: aggregating demand
// across order lists, subtracting stock, ordering products for display and
// navigating between the lists of an order. Nothing here performs I/O.
package planner

import (
	"math"

	"github.com/SanderGeraedts/InkoopPlanner/internal/model"
	"github.com/google/uuid"
)

// AggregateOrder sums row quantities per product across every demand list of
// the order. The result keeps the first-encounter order of products and
// carries the ID and Product of the first contributing row.
//
// Quantities are assumed to be >= 0; negative input must be rejected at the
// boundary before it reaches this function. Sums saturate at math.MaxInt32.
func AggregateOrder(order model.Order) []model.OrderRow {
	index := make(map[uuid.UUID]int)
	var out []model.OrderRow

	for _, list := range order.OrderLists {
		for _, row := range list.OrderRows {
			if i, ok := index[row.Product.ID]; ok {
				out[i].Quantity = addSaturating(out[i].Quantity, row.Quantity)
				continue
			}
			index[row.Product.ID] = len(out)
			out = append(out, model.OrderRow{
				ID:       row.ID,
				Product:  row.Product,
				Quantity: row.Quantity,
			})
		}
	}
	return out
}

// ApplyStockAdjustment subtracts the quantities of the in-stock list from the
// aggregated demand. Results are floored at zero and rows that end up at zero
// are dropped. A nil stock list means no stock is tracked and returns a copy
// of rows unchanged.
func ApplyStockAdjustment(rows []model.OrderRow, stock *model.OrderList) []model.OrderRow {
	if stock == nil {
		out := make([]model.OrderRow, len(rows))
		copy(out, rows)
		return out
	}

	onHand := make(map[uuid.UUID]int32, len(stock.OrderRows))
	for _, r := range stock.OrderRows {
		onHand[r.Product.ID] = addSaturating(onHand[r.Product.ID], r.Quantity)
	}

	out := make([]model.OrderRow, 0, len(rows))
	for _, r := range rows {
		adjusted := r.Quantity - onHand[r.Product.ID]
		if adjusted <= 0 {
			continue
		}
		r.Quantity = adjusted
		out = append(out, r)
	}
	return out
}

func addSaturating(a, b int32) int32 {
	sum := int64(a) + int64(b)
	switch {
	case sum > math.MaxInt32:
		return math.MaxInt32
	case sum < math.MinInt32:
		return math.MinInt32
	}
	return int32(sum)
}
