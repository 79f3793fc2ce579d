package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Quantity save outcomes.
const (
	SaveOK      = "ok"
	SaveInvalid = "invalid"
	SaveError   = "error"
)

// Metrics holds the HTTP and domain collectors of one registry.
type Metrics struct {
	service  string
	registry *prometheus.Registry

	requests       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	statusCategory *prometheus.CounterVec

	ordersCreated  prometheus.Counter
	quantitySaves  *prometheus.CounterVec
	productsSeeded prometheus.Counter
	broadcastsSent prometheus.Counter
}

// New creates the collectors and registers them on a fresh registry.
func New(service string) *Metrics {
	m := &Metrics{
		service:  service,
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path", "status"},
		),
		statusCategory: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_status_category_total",
				Help: "Total number of responses by status category (2xx, 4xx, 5xx)",
			},
			[]string{"service", "category"},
		),
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "inkoop_orders_created_total",
			Help: "Total number of orders created",
		}),
		quantitySaves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "inkoop_quantity_saves_total",
				Help: "Total number of quantity saves by result",
			},
			[]string{"result"},
		),
		productsSeeded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "inkoop_products_seeded_total",
			Help: "Total number of catalog products inserted by the seeder",
		}),
		broadcastsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "inkoop_order_update_broadcasts_total",
			Help: "Total number of order.updated events sent to websocket rooms",
		}),
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.statusCategory,
		m.ordersCreated,
		m.quantitySaves,
		m.productsSeeded,
		m.broadcastsSent,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request count, duration and status category. The path
// label is the matched chi route pattern so IDs do not explode cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		path := routePattern(r)
		statusStr := strconv.Itoa(status)

		m.requests.WithLabelValues(m.service, r.Method, path, statusStr).Inc()
		m.duration.WithLabelValues(m.service, r.Method, path, statusStr).Observe(time.Since(start).Seconds())
		if category := statusCategory(status); category != "" {
			m.statusCategory.WithLabelValues(m.service, category).Inc()
		}
	})
}

func (m *Metrics) OrderCreated() {
	m.ordersCreated.Inc()
}

// QuantitySaved counts a quantity save with one of SaveOK, SaveInvalid, SaveError.
func (m *Metrics) QuantitySaved(result string) {
	m.quantitySaves.WithLabelValues(result).Inc()
}

func (m *Metrics) ProductsSeeded(n int) {
	m.productsSeeded.Add(float64(n))
}

func (m *Metrics) BroadcastSent() {
	m.broadcastsSent.Inc()
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

func statusCategory(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500 && status < 600:
		return "5xx"
	}
	return ""
}
