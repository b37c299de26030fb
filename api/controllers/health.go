package controllers

import (
	"context"
	"net/http"

	"github.com/fleekhq/seller-finance-backend/api/responses"
	"github.com/fleekhq/seller-finance-backend/pkg/config"
	pkgerrors "github.com/fleekhq/seller-finance-backend/pkg/errors"
	"github.com/fleekhq/seller-finance-backend/pkg/logger"
	"go.uber.org/multierr"
)

const envHeader = "X-SellerFin-Env"

// Pinger is the health-check surface of a backing dependency.
type Pinger interface {
	Ping(context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{
			"status":  "ok",
			"message": "seller finance api is running",
		})
	}
}

// HealthReady pings every wired dependency and reports all failures at once.
// Either pinger may be nil (redis is optional, the warehouse is absent in
// sample mode).
func HealthReady(cfg *config.Config, logg *logger.Logger, warehouseP, redisP Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		var errs error
		if warehouseP != nil {
			if err := warehouseP.Ping(r.Context()); err != nil {
				errs = multierr.Append(errs, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "warehouse unreachable"))
			}
		}
		if redisP != nil {
			if err := redisP.Ping(r.Context()); err != nil {
				errs = multierr.Append(errs, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unreachable"))
			}
		}

		if errs != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, errs, "readiness check failed"))
			return
		}
		responses.WriteSuccess(w, map[string]string{
			"status":  "ok",
			"message": "all dependencies reachable",
		})
	}
}
