package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fleekhq/seller-finance-backend/api/controllers"
	"github.com/fleekhq/seller-finance-backend/api/middleware"
	"github.com/fleekhq/seller-finance-backend/internal/orders"
	"github.com/fleekhq/seller-finance-backend/internal/payouts"
	"github.com/fleekhq/seller-finance-backend/internal/statements"
	"github.com/fleekhq/seller-finance-backend/internal/vendors"
	"github.com/fleekhq/seller-finance-backend/pkg/config"
	"github.com/fleekhq/seller-finance-backend/pkg/logger"
	"github.com/fleekhq/seller-finance-backend/pkg/metrics"
)

// Deps carries everything the router wires together. Pingers may be nil when
// the dependency is not configured.
type Deps struct {
	Config     *config.Config
	Logger     *logger.Logger
	Registry   *prometheus.Registry
	Warehouse  controllers.Pinger
	Redis      controllers.Pinger
	Vendors    vendors.Service
	Orders     orders.Service
	Payouts    payouts.Service
	Statements statements.Service
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	// A nil *Registry must not reach NewHTTPMetrics as a non-nil interface.
	var registerer prometheus.Registerer
	if d.Registry != nil {
		registerer = d.Registry
	}
	httpMetrics := metrics.NewHTTPMetrics(registerer)

	r.Use(
		middleware.Recoverer(d.Logger),
		middleware.RequestID(d.Logger),
		middleware.Logging(d.Logger),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
		middleware.Timeout(d.Config.HTTP.RequestTimeout),
	)

	r.Route("/api", func(r chi.Router) {
		r.Route("/health", func(r chi.Router) {
			r.Get("/", controllers.HealthLive(d.Config))
			r.Get("/live", controllers.HealthLive(d.Config))
			r.Get("/ready", controllers.HealthReady(d.Config, d.Logger, d.Warehouse, d.Redis))
		})

		r.Get("/vendors/{handle}", controllers.ResolveVendor(d.Vendors, d.Logger))

		r.Route("/sellers/{vendorID}", func(r chi.Router) {
			r.Get("/orders", controllers.SellerOrders(d.Orders, d.Logger))
			r.Get("/payout", controllers.SellerPayout(d.Payouts, d.Config.Portal.PayoutHistoryMax, d.Logger))
			r.Get("/statements", controllers.SellerStatements(d.Statements, d.Logger))
			r.Get("/statements/{payoutID}", controllers.SellerStatementDetail(d.Statements, d.Logger))
		})
	})

	if d.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))
	}

	return r
}
