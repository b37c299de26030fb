package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fleekhq/seller-finance-backend/api/responses"
	"github.com/fleekhq/seller-finance-backend/api/validators"
	"github.com/fleekhq/seller-finance-backend/internal/orders"
	"github.com/fleekhq/seller-finance-backend/internal/payouts"
	"github.com/fleekhq/seller-finance-backend/internal/statements"
	"github.com/fleekhq/seller-finance-backend/pkg/logger"
	"github.com/fleekhq/seller-finance-backend/pkg/pagination"
)

func SellerOrders(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID := chi.URLParam(r, "vendorID")

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		offset, err := validators.ParseQueryInt(r, "offset", 0, 0, 1_000_000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filter := orders.Filter{
			Status: r.URL.Query().Get("status"),
			Search: r.URL.Query().Get("search"),
			Limit:  limit,
			Offset: offset,
		}

		list, err := svc.List(r.Context(), vendorID, filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// SellerPayout serves the dashboard payload the portal polls. The optional
// history query parameter widens the payout history, capped by config.
func SellerPayout(svc payouts.Service, historyMax int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID := chi.URLParam(r, "vendorID")

		historyLimit, err := validators.ParseQueryInt(r, "history", 0, 0, historyMax)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dash, err := svc.Dashboard(r.Context(), vendorID, historyLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dash)
	}
}

func SellerStatements(svc statements.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID := chi.URLParam(r, "vendorID")

		list, err := svc.List(r.Context(), vendorID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

func SellerStatementDetail(svc statements.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vendorID := chi.URLParam(r, "vendorID")
		payoutID := chi.URLParam(r, "payoutID")

		detail, err := svc.Detail(r.Context(), vendorID, payoutID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, detail)
	}
}
