package orders

import (
	"context"
	"fmt"
	"strings"

	cloudbigquery "cloud.google.com/go/bigquery"
	"github.com/fleekhq/seller-finance-backend/pkg/enums"
	pkgerrors "github.com/fleekhq/seller-finance-backend/pkg/errors"
	"github.com/fleekhq/seller-finance-backend/pkg/pagination"
	"github.com/fleekhq/seller-finance-backend/pkg/warehouse"
	"github.com/go-playground/validator/v10"
	"google.golang.org/api/iterator"
)

// listSQL is the canonical orders query. Raw smallest-unit amounts come back
// unconverted; all derived money fields are computed in the projector so the
// commission split stays exact. %s slots: balance_transaction ref, catalog
// ref, optional search clause.
const listSQL = `
SELECT
  CAST(bt.order_line_id AS STRING) AS order_id,
  vp.order_number,
  vp.internal_order_id,
  vp.title AS product_name,
  vp.vendor,
  vp.vendor_id,
  vp.customer_name,
  bt.created_at,
  vp.latest_status,
  bt.status AS payout_status,
  vp.includesShipping AS includes_shipping,
  bt.final_base_smallest_unit,
  bt.commission_percentage,
  bt.shipping_amount_smallest_unit,
  bt.refund_amount_smallest_unit,
  bt.cancellation_fee_smallest_unit,
  bt.total_payable_smallest_unit,
  vp.qc_status,
  vp.qc_time,
  vp.ff_status,
  vp.ff_time
FROM %s bt
LEFT JOIN %s vp
  ON bt.order_line_id = CAST(vp.order_line_id AS STRING)
WHERE bt.destination_id = @vendorID
  AND bt._fivetran_deleted = FALSE
  AND bt.status IN UNNEST(@statuses)%s
ORDER BY bt.created_at DESC
LIMIT @limit
OFFSET @offset
`

const searchClause = `
  AND (
    CAST(vp.order_number AS STRING) LIKE @search
    OR LOWER(vp.internal_order_id) LIKE @search
    OR LOWER(vp.title) LIKE @search
  )`

// Service lists seller order projections.
type Service interface {
	List(ctx context.Context, vendorID string, filter Filter) ([]Order, error)
}

type service struct {
	client       warehouse.Querier
	ledgerTable  string
	catalogTable string
	validate     *validator.Validate
}

// NewService builds the warehouse-backed order projector.
func NewService(client warehouse.Querier, ledgerTable, catalogTable string) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("warehouse client required")
	}
	if ledgerTable == "" || catalogTable == "" {
		return nil, fmt.Errorf("ledger and catalog tables are required")
	}
	return &service{
		client:       client,
		ledgerTable:  ledgerTable,
		catalogTable: catalogTable,
		validate:     validator.New(),
	}, nil
}

func (s *service) List(ctx context.Context, vendorID string, filter Filter) ([]Order, error) {
	if vendorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required")
	}
	if err := s.validate.Struct(filter); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter").
			WithDetails(map[string]any{"status": filter.Status})
	}

	sql, params := s.buildQuery(vendorID, filter)
	iter, err := s.client.Query(ctx, sql, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing orders")
	}

	now := timeNowUTC()
	result := []Order{}
	for {
		var row orderRow
		if err := iter.Next(&row); err != nil {
			if err == iterator.Done {
				break
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading order row")
		}
		result = append(result, project(row, now))
	}
	return result, nil
}

func (s *service) buildQuery(vendorID string, filter Filter) (string, []cloudbigquery.QueryParameter) {
	page := pagination.Normalize(pagination.Page{Limit: filter.Limit, Offset: filter.Offset})

	statuses := make([]string, 0, len(enums.ListableLedgerStatuses))
	if filter.Status != "" {
		statuses = append(statuses, filter.Status)
	} else {
		for _, status := range enums.ListableLedgerStatuses {
			statuses = append(statuses, status.String())
		}
	}

	params := []cloudbigquery.QueryParameter{
		{Name: "vendorID", Value: vendorID},
		{Name: "statuses", Value: statuses},
		{Name: "limit", Value: int64(page.Limit)},
		{Name: "offset", Value: int64(page.Offset)},
	}

	search := ""
	if trimmed := strings.TrimSpace(filter.Search); trimmed != "" {
		search = searchClause
		params = append(params, cloudbigquery.QueryParameter{
			Name:  "search",
			Value: "%" + strings.ToLower(trimmed) + "%",
		})
	}

	sql := fmt.Sprintf(listSQL,
		s.client.TableRef(s.ledgerTable),
		s.client.AnalyticsTableRef(s.catalogTable),
		search,
	)
	return sql, params
}
