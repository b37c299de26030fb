package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/fleekhq/seller-finance-backend/api/routes"
	"github.com/fleekhq/seller-finance-backend/internal/orders"
	"github.com/fleekhq/seller-finance-backend/internal/payouts"
	"github.com/fleekhq/seller-finance-backend/internal/sample"
	"github.com/fleekhq/seller-finance-backend/internal/statements"
	"github.com/fleekhq/seller-finance-backend/internal/trust"
	"github.com/fleekhq/seller-finance-backend/internal/vendors"
	"github.com/fleekhq/seller-finance-backend/pkg/config"
	"github.com/fleekhq/seller-finance-backend/pkg/logger"
	"github.com/fleekhq/seller-finance-backend/pkg/redis"
	"github.com/fleekhq/seller-finance-backend/pkg/warehouse"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	deps, cleanup, err := buildDeps(context.Background(), cfg, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap services", err)
		os.Exit(1)
	}
	defer cleanup()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":         cfg.App.Env,
		"addr":        addr,
		"sample_data": cfg.Portal.UseSampleData,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(deps),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}

// buildDeps wires either the warehouse-backed services or the sample-data
// strategy behind the same interfaces.
func buildDeps(ctx context.Context, cfg *config.Config, logg *logger.Logger) (routes.Deps, func(), error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	deps := routes.Deps{
		Config:   cfg,
		Logger:   logg,
		Registry: registry,
	}
	cleanup := func() {}

	if cfg.Portal.UseSampleData {
		logg.Info(ctx, "sample data mode enabled, warehouse disabled")
		deps.Vendors = sample.Vendors{}
		deps.Orders = sample.Orders{}
		deps.Payouts = sample.Payouts{
			PayoutWeekday:  time.Weekday(cfg.Portal.PayoutWeekday),
			HistoryDefault: cfg.Portal.PayoutHistoryDefault,
			HistoryMax:     cfg.Portal.PayoutHistoryMax,
		}
		deps.Statements = sample.Statements{}
		return deps, cleanup, nil
	}

	warehouseClient, err := warehouse.NewClient(ctx, cfg.GCP, cfg.Warehouse, logg)
	if err != nil {
		return routes.Deps{}, nil, err
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(ctx, cfg.Redis)
		if err != nil {
			_ = warehouseClient.Close()
			return routes.Deps{}, nil, err
		}
	} else {
		logg.Warn(ctx, "redis not configured, vendor resolution cache disabled")
	}

	cleanup = func() {
		if err := warehouseClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing warehouse client", err)
		}
		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}
	}

	var vendorCache vendors.Cache
	if redisClient != nil {
		vendorCache = redisClient
	}
	vendorsSvc, err := vendors.NewService(warehouseClient, cfg.Warehouse.VendorsTable, vendorCache, cfg.Redis.VendorIDTTL, logg)
	if err != nil {
		cleanup()
		return routes.Deps{}, nil, err
	}

	ordersSvc, err := orders.NewService(warehouseClient, cfg.Warehouse.BalanceTransactionTable, cfg.Warehouse.VendorPayoutTable)
	if err != nil {
		cleanup()
		return routes.Deps{}, nil, err
	}

	trustSvc, err := trust.NewService(warehouseClient, cfg.Warehouse.BalanceTransactionTable, cfg.Warehouse.VendorPayoutTable, trust.StaticScorer{})
	if err != nil {
		cleanup()
		return routes.Deps{}, nil, err
	}

	payoutsSvc, err := payouts.NewService(
		warehouseClient,
		cfg.Warehouse.BalanceTransactionTable,
		cfg.Warehouse.PayoutTable,
		trustSvc,
		cfg.Portal.PayoutWeekday,
		cfg.Portal.PayoutHistoryDefault,
		cfg.Portal.PayoutHistoryMax,
	)
	if err != nil {
		cleanup()
		return routes.Deps{}, nil, err
	}

	statementsSvc, err := statements.NewService(
		warehouseClient,
		cfg.Warehouse.BalanceTransactionTable,
		cfg.Warehouse.PayoutTable,
		cfg.Warehouse.VendorPayoutTable,
	)
	if err != nil {
		cleanup()
		return routes.Deps{}, nil, err
	}

	deps.Warehouse = warehouseClient
	if redisClient != nil {
		deps.Redis = redisClient
	}
	deps.Vendors = vendorsSvc
	deps.Orders = ordersSvc
	deps.Payouts = payoutsSvc
	deps.Statements = statementsSvc
	return deps, cleanup, nil
}
