package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/SanderGeraedts/InkoopPlanner/internal/catalog"
	"github.com/SanderGeraedts/InkoopPlanner/internal/config"
	"github.com/SanderGeraedts/InkoopPlanner/internal/logger"
	"github.com/SanderGeraedts/InkoopPlanner/internal/store"
	"go.uber.org/zap"
)

func main() {
	// CLI flags
	backend := flag.String("backend", "", "Store backend: postgres or redis")
	reseed := flag.Bool("reseed", false, "Delete every product (and the rows using them) before seeding")
	force := flag.Bool("force", false, "Allow -reseed when APP_ENV is production")
	file := flag.String("catalog", "", "Path to a catalog YAML file; the built-in catalog when empty")
	flag.Parse()

	cfg := config.Load()

	// Flags win over environment variables
	if *backend != "" {
		cfg.StoreBackend = *backend
	}
	if !*reseed {
		if v, err := strconv.ParseBool(os.Getenv("SEED_RESEED")); err == nil {
			*reseed = v
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *reseed && cfg.IsProduction() && !*force {
		log.Fatal("Refusing to reseed a production database without -force")
	}

	zl, err := logger.New(cfg.Env, cfg.LogLevel, "inkoopplanner-seed")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	ctx := context.Background()
	st, closeStore, err := store.Open(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("open store", zap.Error(err))
	}
	defer closeStore()

	cat, err := loadCatalog(*file)
	if err != nil {
		zl.Fatal("load catalog", zap.Error(err))
	}

	seeder := catalog.NewSeeder(st, cat, zl)
	var n int
	if *reseed {
		zl.Warn("reseeding: existing products and their order rows are removed")
		n, err = seeder.Reseed(ctx)
	} else {
		n, err = seeder.Seed(ctx)
	}
	if err != nil {
		zl.Fatal("seed products", zap.Error(err))
	}

	zl.Info("seed complete", zap.Int("created", n), zap.String("backend", cfg.StoreBackend))
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}
