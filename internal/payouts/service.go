package payouts

import (
	"context"
	"fmt"
	"time"

	cloudbigquery "cloud.google.com/go/bigquery"
	"github.com/fleekhq/seller-finance-backend/internal/trust"
	"github.com/fleekhq/seller-finance-backend/pkg/enums"
	pkgerrors "github.com/fleekhq/seller-finance-backend/pkg/errors"
	"github.com/fleekhq/seller-finance-backend/pkg/money"
	"github.com/fleekhq/seller-finance-backend/pkg/warehouse"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/iterator"
)

const dateLayout = "2006-01-02"

// summarySQL is the canonical upcoming-payout aggregation. Rows already
// linked to a payout batch are settled and never counted again. Eligible
// covers both in_progress and eligible rows so the two upstream feeds agree.
const summarySQL = `
SELECT
  COUNT(DISTINCT IF(status IN ('in_progress', 'eligible'), order_line_id, NULL)) AS eligible_orders,
  SUM(IF(status IN ('in_progress', 'eligible'), total_payable_smallest_unit, 0)) AS eligible_amount,
  COUNT(DISTINCT IF(status = 'pending_eligibility', order_line_id, NULL)) AS pending_orders,
  SUM(IF(status = 'pending_eligibility', total_payable_smallest_unit, 0)) AS pending_amount,
  COUNT(DISTINCT IF(status = 'held', order_line_id, NULL)) AS held_orders
FROM %s
WHERE destination_id = @vendorID
  AND _fivetran_deleted = FALSE
  AND payout_id IS NULL
  AND status IN ('in_progress', 'eligible', 'pending_eligibility', 'held')
`

const latestPayoutSQL = `
SELECT
  p.id AS payout_id,
  p.created_at AS payout_created_at
FROM %s p
WHERE CAST(p.destination_id AS STRING) = @vendorID
  AND p._fivetran_deleted = FALSE
ORDER BY p.created_at DESC
LIMIT 1
`

const historySQL = `
SELECT
  CAST(p.id AS STRING) AS payout_id,
  p.created_at AS payout_date,
  p.amount_smallest_unit AS amount,
  p.status,
  COUNT(DISTINCT bt.order_line_id) AS order_count
FROM %s p
LEFT JOIN %s bt
  ON bt.payout_id = p.id AND bt._fivetran_deleted = FALSE
WHERE CAST(p.destination_id AS STRING) = @vendorID
  AND p._fivetran_deleted = FALSE
  AND p.status = 'completed'
GROUP BY p.id, p.created_at, p.amount_smallest_unit, p.status
ORDER BY p.created_at DESC
LIMIT @limit
`

// Service assembles the seller payout dashboard and history.
type Service interface {
	Dashboard(ctx context.Context, vendorID string, historyLimit int) (*Dashboard, error)
	History(ctx context.Context, vendorID string, limit int) ([]HistoryItem, error)
}

type service struct {
	client         warehouse.Querier
	ledgerTable    string
	payoutTable    string
	trust          trust.Service
	payoutWeekday  time.Weekday
	historyDefault int
	historyMax     int
}

// NewService builds the warehouse-backed payout aggregator.
func NewService(client warehouse.Querier, ledgerTable, payoutTable string, trustSvc trust.Service, payoutWeekday, historyDefault, historyMax int) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("warehouse client required")
	}
	if ledgerTable == "" || payoutTable == "" {
		return nil, fmt.Errorf("ledger and payout tables are required")
	}
	if trustSvc == nil {
		return nil, fmt.Errorf("trust service required")
	}
	return &service{
		client:         client,
		ledgerTable:    ledgerTable,
		payoutTable:    payoutTable,
		trust:          trustSvc,
		payoutWeekday:  time.Weekday(((payoutWeekday % 7) + 7) % 7),
		historyDefault: historyDefault,
		historyMax:     historyMax,
	}, nil
}

// Dashboard fans out the independent read-only queries and assembles the
// payload. Any failing leg fails the whole request; a partially populated
// dashboard would silently misreport the seller's money.
func (s *service) Dashboard(ctx context.Context, vendorID string, historyLimit int) (*Dashboard, error) {
	if vendorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required")
	}

	var (
		summary  summaryRow
		latest   *latestPayoutRow
		history  []HistoryItem
		blockers []trust.Blocker
		score    *trust.Score
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		summary, err = s.querySummary(groupCtx, vendorID)
		return err
	})
	group.Go(func() error {
		var err error
		latest, err = s.queryLatestPayout(groupCtx, vendorID)
		return err
	})
	group.Go(func() error {
		var err error
		history, err = s.History(groupCtx, vendorID, historyLimit)
		return err
	})
	group.Go(func() error {
		var err error
		blockers, err = s.trust.ActiveBlockers(groupCtx, vendorID)
		return err
	})
	group.Go(func() error {
		var err error
		score, err = s.trust.TrustScore(groupCtx, vendorID)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	now := timeNowUTC()
	nextDate, daysUntil := NextPayoutDate(now, s.payoutWeekday)

	return &Dashboard{
		SellerID:            vendorID,
		CurrentCycle:        currentCycle(latest),
		EstimatedPayoutDate: nextDate.Format(dateLayout),
		Confidence:          confidenceLevel(blockers, summary.HeldOrders),
		TotalAmount:         money.Major(summary.EligibleAmount.Int64 + summary.PendingAmount.Int64),
		DaysUntilPayout:     daysUntil,
		EligibleOrders:      summary.EligibleOrders,
		PendingOrders:       summary.PendingOrders,
		HeldOrders:          summary.HeldOrders,
		PayoutHistory:       history,
		TrustScore:          score,
		ActiveBlockers:      blockers,
	}, nil
}

func (s *service) History(ctx context.Context, vendorID string, limit int) ([]HistoryItem, error) {
	if vendorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required")
	}

	sql := fmt.Sprintf(historySQL,
		s.client.TableRef(s.payoutTable),
		s.client.TableRef(s.ledgerTable),
	)
	iter, err := s.client.Query(ctx, sql, []cloudbigquery.QueryParameter{
		{Name: "vendorID", Value: vendorID},
		{Name: "limit", Value: int64(s.normalizeHistoryLimit(limit))},
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "querying payout history")
	}

	items := []HistoryItem{}
	for {
		var row historyRow
		if err := iter.Next(&row); err != nil {
			if err == iterator.Done {
				break
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading payout history row")
		}
		items = append(items, HistoryItem{
			PayoutDate: row.PayoutDate.UTC().Format(dateLayout),
			Amount:     money.Major(row.Amount),
			Status:     historyStatus(row.Status),
			OrderCount: row.OrderCount,
		})
	}
	return items, nil
}

func (s *service) querySummary(ctx context.Context, vendorID string) (summaryRow, error) {
	sql := fmt.Sprintf(summarySQL, s.client.TableRef(s.ledgerTable))
	iter, err := s.client.Query(ctx, sql, []cloudbigquery.QueryParameter{
		{Name: "vendorID", Value: vendorID},
	})
	if err != nil {
		return summaryRow{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "querying payout summary")
	}

	var row summaryRow
	if err := iter.Next(&row); err != nil && err != iterator.Done {
		return summaryRow{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading payout summary row")
	}
	return row, nil
}

func (s *service) queryLatestPayout(ctx context.Context, vendorID string) (*latestPayoutRow, error) {
	sql := fmt.Sprintf(latestPayoutSQL, s.client.TableRef(s.payoutTable))
	iter, err := s.client.Query(ctx, sql, []cloudbigquery.QueryParameter{
		{Name: "vendorID", Value: vendorID},
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "querying latest payout")
	}

	var row latestPayoutRow
	if err := iter.Next(&row); err != nil {
		if err == iterator.Done {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading latest payout row")
	}
	return &row, nil
}

func (s *service) normalizeHistoryLimit(limit int) int {
	if limit <= 0 {
		return s.historyDefault
	}
	if limit > s.historyMax {
		return s.historyMax
	}
	return limit
}

// confidenceLevel ranks the estimate: any high-severity blocker drops it to
// low; medium blockers or held orders cap it at medium.
func confidenceLevel(blockers []trust.Blocker, heldOrders int64) enums.Confidence {
	hasMedium := false
	for _, b := range blockers {
		switch b.Severity {
		case enums.BlockerSeverityHigh:
			return enums.ConfidenceLow
		case enums.BlockerSeverityMedium:
			hasMedium = true
		}
	}
	if hasMedium || heldOrders > 0 {
		return enums.ConfidenceMedium
	}
	return enums.ConfidenceHigh
}

func currentCycle(latest *latestPayoutRow) string {
	if latest == nil {
		return "CURRENT"
	}
	return fmt.Sprintf("PAYOUT-%d", latest.PayoutID)
}

func historyStatus(status string) string {
	if status == "completed" {
		return "completed"
	}
	return "pending"
}
