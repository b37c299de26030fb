package trust

import (
	"context"
	"fmt"

	cloudbigquery "cloud.google.com/go/bigquery"
	pkgerrors "github.com/fleekhq/seller-finance-backend/pkg/errors"
	"github.com/fleekhq/seller-finance-backend/pkg/warehouse"
	"google.golang.org/api/iterator"
)

// Only unlinked held/pending rows can block a payout; anything already linked
// to a payout batch is past the point of blocking.
const blockerRowsSQL = `
SELECT
  CAST(bt.order_line_id AS STRING) AS order_id,
  bt.status,
  vp.qc_status,
  vp.ff_status,
  vp.ff_time
FROM %s bt
LEFT JOIN %s vp
  ON bt.order_line_id = CAST(vp.order_line_id AS STRING)
WHERE bt.destination_id = @vendorID
  AND bt._fivetran_deleted = FALSE
  AND bt.status IN ('held', 'pending_eligibility')
  AND bt.payout_id IS NULL
`

// Service derives payout blockers and trust scores for a vendor.
type Service interface {
	ActiveBlockers(ctx context.Context, vendorID string) ([]Blocker, error)
	TrustScore(ctx context.Context, vendorID string) (*Score, error)
}

type service struct {
	client       warehouse.Querier
	ledgerTable  string
	catalogTable string
	scorer       Scorer
}

// NewService builds the warehouse-backed heuristics service.
func NewService(client warehouse.Querier, ledgerTable, catalogTable string, scorer Scorer) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("warehouse client required")
	}
	if ledgerTable == "" || catalogTable == "" {
		return nil, fmt.Errorf("ledger and catalog tables are required")
	}
	if scorer == nil {
		scorer = StaticScorer{}
	}
	return &service{
		client:       client,
		ledgerTable:  ledgerTable,
		catalogTable: catalogTable,
		scorer:       scorer,
	}, nil
}

func (s *service) ActiveBlockers(ctx context.Context, vendorID string) ([]Blocker, error) {
	if vendorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required")
	}

	sql := fmt.Sprintf(blockerRowsSQL,
		s.client.TableRef(s.ledgerTable),
		s.client.AnalyticsTableRef(s.catalogTable),
	)
	iter, err := s.client.Query(ctx, sql, []cloudbigquery.QueryParameter{
		{Name: "vendorID", Value: vendorID},
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "querying blocker rows")
	}

	var rows []blockerRow
	for {
		var row blockerRow
		if err := iter.Next(&row); err != nil {
			if err == iterator.Done {
				break
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading blocker row")
		}
		rows = append(rows, row)
	}

	return deriveBlockers(rows), nil
}

func (s *service) TrustScore(ctx context.Context, vendorID string) (*Score, error) {
	if vendorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required")
	}
	return s.scorer.Score(ctx, vendorID)
}
