package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fleekhq/seller-finance-backend/api/responses"
	"github.com/fleekhq/seller-finance-backend/internal/vendors"
	"github.com/fleekhq/seller-finance-backend/pkg/logger"
)

// ResolveVendor maps a storefront handle to the vendor identifier the seller
// endpoints key on.
func ResolveVendor(svc vendors.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handle := chi.URLParam(r, "handle")

		id, err := svc.Resolve(r.Context(), handle)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"id": id})
	}
}
