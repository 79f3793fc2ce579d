package catalog

import (
	"context"
	"fmt"

	"github.com/SanderGeraedts/InkoopPlanner/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductStore defines the persistence methods needed to seed products.
// Satisfied by both store backends.
type ProductStore interface {
	CountProducts(ctx context.Context) (int64, error)
	CreateProduct(ctx context.Context, p model.Product) (model.Product, error)
	DeleteAllProducts(ctx context.Context) error
}

// Seeder populates the product table from a Catalog.
type Seeder struct {
	store   ProductStore
	catalog *Catalog
	log     *zap.Logger
}

// NewSeeder creates a Seeder.
func NewSeeder(store ProductStore, catalog *Catalog, log *zap.Logger) *Seeder {
	return &Seeder{store: store, catalog: catalog, log: log}
}

// Seed inserts every catalog product unless products already exist.
// It returns the number of products created.
func (s *Seeder) Seed(ctx context.Context) (int, error) {
	n, err := s.store.CountProducts(ctx)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	if n > 0 {
		s.log.Info("products already seeded, skipping", zap.Int64("existing", n))
		return 0, nil
	}

	created := 0
	for _, sp := range s.catalog.Products {
		_, err := s.store.CreateProduct(ctx, model.Product{
			ID:       uuid.New(),
			Name:     sp.Name,
			Category: sp.Category,
		})
		if err != nil {
			return created, fmt.Errorf("create product %q: %w", sp.Name, err)
		}
		created++
	}

	s.log.Info("seeded products", zap.Int("count", created))
	return created, nil
}

// Reseed removes every product (cascading to order rows) and seeds again.
func (s *Seeder) Reseed(ctx context.Context) (int, error) {
	if err := s.store.DeleteAllProducts(ctx); err != nil {
		return 0, fmt.Errorf("delete products: %w", err)
	}
	return s.Seed(ctx)
}
