package statements

import (
	"context"
	"fmt"
	"strconv"

	cloudbigquery "cloud.google.com/go/bigquery"
	pkgerrors "github.com/fleekhq/seller-finance-backend/pkg/errors"
	"github.com/fleekhq/seller-finance-backend/pkg/money"
	"github.com/fleekhq/seller-finance-backend/pkg/warehouse"
	"google.golang.org/api/iterator"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05Z"

	statementsLimit = 50
)

// Statement numbers are positional: the Nth payout of a year is STMT-YYYY-NNN.
// They are recomputed per request, which is stable because payouts are
// append-only in the feed.
const listSQL = `
SELECT
  CAST(p.id AS STRING) AS payout_id,
  CONCAT('STMT-', CAST(EXTRACT(YEAR FROM p.created_at) AS STRING), '-',
         LPAD(CAST(ROW_NUMBER() OVER (ORDER BY p.created_at) AS STRING), 3, '0')) AS statement_number,
  FORMAT_DATE('%%B %%Y', DATE(p.created_at)) AS statement_period,
  p.created_at AS payout_date,
  p.amount_smallest_unit AS amount,
  p.status,
  COUNT(DISTINCT bt.order_line_id) AS order_count
FROM %s p
LEFT JOIN %s bt
  ON bt.payout_id = p.id AND bt._fivetran_deleted = FALSE
WHERE CAST(p.destination_id AS STRING) = @vendorID
  AND p._fivetran_deleted = FALSE
GROUP BY p.id, p.created_at, p.amount_smallest_unit, p.status
ORDER BY p.created_at DESC
LIMIT @limit
`

const detailSQL = `
SELECT
  CAST(bt.order_line_id AS STRING) AS order_id,
  vp.order_number,
  vp.title AS product_name,
  bt.created_at,
  bt.base_price_smallest_unit,
  bt.chargeable_shipping_smallest_unit,
  bt.discount_amount_smallest_unit,
  bt.final_base_smallest_unit,
  bt.commission_percentage,
  bt.shipping_amount_smallest_unit,
  bt.cancellation_fee_smallest_unit,
  bt.refund_amount_smallest_unit,
  bt.previously_paid_smallest_unit,
  bt.total_smallest_unit,
  bt.total_adjustment_smallest_unit,
  bt.total_payable_smallest_unit,
  bt.status
FROM %s bt
LEFT JOIN %s vp
  ON bt.order_line_id = CAST(vp.order_line_id AS STRING)
WHERE bt.payout_id = @payoutID
  AND bt.destination_id = @vendorID
  AND bt._fivetran_deleted = FALSE
ORDER BY bt.created_at DESC
`

// Service lists income statements and expands one into its fee breakdown.
type Service interface {
	List(ctx context.Context, vendorID string) ([]Statement, error)
	Detail(ctx context.Context, vendorID, payoutID string) (*Detail, error)
}

type service struct {
	client       warehouse.Querier
	ledgerTable  string
	payoutTable  string
	catalogTable string
}

// NewService builds the warehouse-backed statements service.
func NewService(client warehouse.Querier, ledgerTable, payoutTable, catalogTable string) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("warehouse client required")
	}
	if ledgerTable == "" || payoutTable == "" || catalogTable == "" {
		return nil, fmt.Errorf("ledger, payout and catalog tables are required")
	}
	return &service{
		client:       client,
		ledgerTable:  ledgerTable,
		payoutTable:  payoutTable,
		catalogTable: catalogTable,
	}, nil
}

func (s *service) List(ctx context.Context, vendorID string) ([]Statement, error) {
	if vendorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required")
	}

	sql := fmt.Sprintf(listSQL,
		s.client.TableRef(s.payoutTable),
		s.client.TableRef(s.ledgerTable),
	)
	iter, err := s.client.Query(ctx, sql, []cloudbigquery.QueryParameter{
		{Name: "vendorID", Value: vendorID},
		{Name: "limit", Value: int64(statementsLimit)},
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "querying statements")
	}

	result := []Statement{}
	for {
		var row statementRow
		if err := iter.Next(&row); err != nil {
			if err == iterator.Done {
				break
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading statement row")
		}
		result = append(result, Statement{
			PayoutID:        row.PayoutID,
			StatementNumber: row.StatementNumber,
			Period:          row.Period,
			PayoutDate:      row.PayoutDate.UTC().Format(dateLayout),
			Amount:          money.Major(row.Amount),
			Status:          row.Status,
			OrderCount:      row.OrderCount,
		})
	}
	return result, nil
}

func (s *service) Detail(ctx context.Context, vendorID, payoutID string) (*Detail, error) {
	if vendorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required")
	}
	id, err := strconv.ParseInt(payoutID, 10, 64)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid payout id: %s", payoutID))
	}

	sql := fmt.Sprintf(detailSQL,
		s.client.TableRef(s.ledgerTable),
		s.client.AnalyticsTableRef(s.catalogTable),
	)
	iter, err := s.client.Query(ctx, sql, []cloudbigquery.QueryParameter{
		{Name: "payoutID", Value: id},
		{Name: "vendorID", Value: vendorID},
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "querying statement detail")
	}

	var rows []detailRow
	for {
		var row detailRow
		if err := iter.Next(&row); err != nil {
			if err == iterator.Done {
				break
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading statement line")
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("statement not found: %s", payoutID))
	}

	lines := make([]Line, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, projectLine(row))
	}

	return &Detail{
		PayoutID:  payoutID,
		Orders:    lines,
		Breakdown: computeBreakdown(rows),
	}, nil
}
