package orders

import (
	"context"
	"testing"

	cloudbigquery "cloud.google.com/go/bigquery"
	pkgerrors "github.com/fleekhq/seller-finance-backend/pkg/errors"
	"github.com/fleekhq/seller-finance-backend/pkg/warehouse"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func testService(t *testing.T) *service {
	t.Helper()
	return &service{
		client:       &warehouse.Client{},
		ledgerTable:  "balance_transaction",
		catalogTable: "vendor_payout",
		validate:     validator.New(),
	}
}

func TestListRejectsMissingVendorID(t *testing.T) {
	svc := testService(t)

	_, err := svc.List(context.Background(), "", Filter{})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestListRejectsUnknownStatus(t *testing.T) {
	svc := testService(t)

	_, err := svc.List(context.Background(), "42", Filter{Status: "shipped"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestBuildQueryDefaultsToListableStatuses(t *testing.T) {
	svc := testService(t)

	sql, params := svc.buildQuery("42", Filter{})

	require.NotContains(t, sql, "LIKE @search", "no search clause without a search term")
	byName := paramMap(params)
	require.Equal(t, "42", byName["vendorID"])
	require.ElementsMatch(t,
		[]string{"in_progress", "completed", "eligible", "pending_eligibility", "held", "paid"},
		byName["statuses"],
	)
	require.Equal(t, int64(100), byName["limit"])
	require.Equal(t, int64(0), byName["offset"])
}

func TestBuildQueryStatusFilterNarrowsToOne(t *testing.T) {
	svc := testService(t)

	_, params := svc.buildQuery("42", Filter{Status: "held", Limit: 25, Offset: 50})

	byName := paramMap(params)
	require.Equal(t, []string{"held"}, byName["statuses"])
	require.Equal(t, int64(25), byName["limit"])
	require.Equal(t, int64(50), byName["offset"])
}

func TestBuildQuerySearchIsCaseInsensitivePattern(t *testing.T) {
	svc := testService(t)

	sql, params := svc.buildQuery("42", Filter{Search: "  Denim Jacket "})

	require.Contains(t, sql, "LOWER(vp.title) LIKE @search")
	require.Contains(t, sql, "CAST(vp.order_number AS STRING) LIKE @search")
	require.Contains(t, sql, "LOWER(vp.internal_order_id) LIKE @search")
	require.Equal(t, "%denim jacket%", paramMap(params)["search"])
}

func paramMap(params []cloudbigquery.QueryParameter) map[string]any {
	byName := map[string]any{}
	for _, p := range params {
		byName[p.Name] = p.Value
	}
	return byName
}
