package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/SanderGeraedts/InkoopPlanner/internal/enum"
	"github.com/SanderGeraedts/InkoopPlanner/internal/model"
	"github.com/SanderGeraedts/InkoopPlanner/internal/planner"
	"github.com/google/uuid"
)

// ProductGroup is one category section of the catalog.
type ProductGroup struct {
	Category    enum.Category   `json:"category"`
	DisplayName string          `json:"display_name"`
	Products    []model.Product `json:"products"`
}

// Catalog returns the products grouped by category in display order and
// sorted within each category. Extras is always present so new extras can be
// added from an empty section.
func (s *PlannerService) Catalog(ctx context.Context) ([]ProductGroup, error) {
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	groups := planner.GroupByCategory(products,
		func(p model.Product) enum.Category { return p.Category },
		func(p model.Product) string { return p.Name },
		s.refs,
		enum.CategoryExtras,
	)

	out := make([]ProductGroup, 0, len(groups))
	for _, g := range groups {
		items := g.Items
		if items == nil {
			items = []model.Product{}
		}
		out = append(out, ProductGroup{
			Category:    g.Category,
			DisplayName: g.Category.DisplayName(),
			Products:    items,
		})
	}
	return out, nil
}

// CreateProduct adds a product to the catalog. An empty category means Extras.
func (s *PlannerService) CreateProduct(ctx context.Context, name string, category enum.Category) (model.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Product{}, ErrEmptyProductName
	}
	if category == "" {
		category = enum.CategoryExtras
	}
	if !category.Valid() {
		return model.Product{}, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	p, err := s.store.CreateProduct(ctx, model.Product{ID: uuid.New(), Name: name, Category: category})
	if err != nil {
		return model.Product{}, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

// AddExtraProduct adds a product to the Extras category.
func (s *PlannerService) AddExtraProduct(ctx context.Context, name string) (model.Product, error) {
	return s.CreateProduct(ctx, name, enum.CategoryExtras)
}

// DeleteProduct removes a product and every row referencing it.
func (s *PlannerService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.store.DeleteProduct(ctx, id)
}
