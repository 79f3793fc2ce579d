package router

import (
	"net/http"

	"github.com/SanderGeraedts/InkoopPlanner/internal/config"
	"github.com/SanderGeraedts/InkoopPlanner/internal/handler"
	"github.com/SanderGeraedts/InkoopPlanner/internal/metrics"
	mw "github.com/SanderGeraedts/InkoopPlanner/internal/middleware"
	"github.com/SanderGeraedts/InkoopPlanner/internal/service"
	"github.com/SanderGeraedts/InkoopPlanner/internal/telemetry"
	"github.com/SanderGeraedts/InkoopPlanner/internal/ws"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// New creates a Chi router with all application routes wired up.
func New(cfg *config.Config, log *zap.Logger, svc *service.PlannerService, hub *ws.Hub, m *metrics.Metrics) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(mw.RequestLogger(log))
	r.Use(mw.Recoverer)
	r.Use(m.Middleware)
	r.Use(telemetry.RouteName)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300, // 5 minutes
	}))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`)) //nolint:errcheck
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	// Live updates for everyone looking at the same order
	r.Method(http.MethodGet, "/ws/orders/{id}", ws.NewHandler(hub, cfg.AllowedOrigins))

	updates := &meteredHub{hub: hub, m: m}

	r.Route("/api", func(r chi.Router) {
		orderHandler := handler.NewOrderHandler(svc, updates)
		listHandler := handler.NewListHandler(svc, updates)
		r.Route("/orders", func(r chi.Router) {
			orderHandler.RegisterRoutes(r)
			listHandler.RegisterRoutes(r)
		})

		productHandler := handler.NewProductHandler(svc)
		r.Route("/products", productHandler.RegisterRoutes)
	})

	log.Info("router initialized", zap.Strings("allowed_origins", cfg.AllowedOrigins))
	return r
}

// meteredHub counts every order broadcast before handing it to the hub.
type meteredHub struct {
	hub *ws.Hub
	m   *metrics.Metrics
}

func (h *meteredHub) OrderUpdated(orderID uuid.UUID) {
	h.m.BroadcastSent()
	h.hub.OrderUpdated(orderID)
}
