package service

import (
	"context"
	"time"

	"github.com/SanderGeraedts/InkoopPlanner/internal/enum"
	"github.com/SanderGeraedts/InkoopPlanner/internal/model"
	"github.com/SanderGeraedts/InkoopPlanner/internal/planner"
	"github.com/google/uuid"
)

// Overview is the aggregated shopping list of an order.
type Overview struct {
	OrderID          uuid.UUID       `json:"order_id"`
	Date             time.Time       `json:"date"`
	AdjustedForStock bool            `json:"adjusted_for_stock"`
	Groups           []OverviewGroup `json:"groups"`
}

// OverviewGroup is one category section of an Overview.
type OverviewGroup struct {
	Category    enum.Category    `json:"category"`
	DisplayName string           `json:"display_name"`
	Rows        []model.OrderRow `json:"rows"`
}

// Overview sums every demand list of the order per product. With
// adjustForStock the on-hand quantities of the in-stock list are subtracted
// and products that are fully covered are dropped.
func (s *PlannerService) Overview(ctx context.Context, orderID uuid.UUID, adjustForStock bool) (Overview, error) {
	o, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return Overview{}, err
	}

	rows := planner.AggregateOrder(o)
	if adjustForStock {
		rows = planner.ApplyStockAdjustment(rows, o.InStock)
	}

	groups := planner.GroupByCategory(rows,
		func(r model.OrderRow) enum.Category { return r.Product.Category },
		func(r model.OrderRow) string { return r.Product.Name },
		s.refs,
	)

	ov := Overview{
		OrderID:          o.ID,
		Date:             o.Date,
		AdjustedForStock: adjustForStock,
		Groups:           make([]OverviewGroup, 0, len(groups)),
	}
	for _, g := range groups {
		ov.Groups = append(ov.Groups, OverviewGroup{
			Category:    g.Category,
			DisplayName: g.Category.DisplayName(),
			Rows:        g.Items,
		})
	}
	return ov, nil
}
