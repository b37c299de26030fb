package payouts

import (
	"time"

	cloudbigquery "cloud.google.com/go/bigquery"
	"github.com/fleekhq/seller-finance-backend/internal/trust"
	"github.com/fleekhq/seller-finance-backend/pkg/enums"
)

// HistoryItem is one completed payout batch annotated with how many order
// lines it covered.
type HistoryItem struct {
	PayoutDate string  `json:"payoutDate"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
	OrderCount int64   `json:"orderCount"`
}

// Dashboard is the full payout payload the portal polls for.
type Dashboard struct {
	SellerID            string           `json:"sellerId"`
	CurrentCycle        string           `json:"currentCycle"`
	EstimatedPayoutDate string           `json:"estimatedPayoutDate"`
	Confidence          enums.Confidence `json:"confidence"`
	TotalAmount         float64          `json:"totalAmount"`
	DaysUntilPayout     int              `json:"daysUntilPayout"`
	EligibleOrders      int64            `json:"eligibleOrders"`
	PendingOrders       int64            `json:"pendingOrders"`
	HeldOrders          int64            `json:"heldOrders"`
	PayoutHistory       []HistoryItem    `json:"payoutHistory"`
	TrustScore          *trust.Score     `json:"trustScore"`
	ActiveBlockers      []trust.Blocker  `json:"activeBlockers"`
}

// summaryRow aggregates the vendor's unlinked ledger rows in one pass. The
// SUMs come back NULL when the vendor has no unlinked rows at all.
type summaryRow struct {
	EligibleOrders int64                   `bigquery:"eligible_orders"`
	EligibleAmount cloudbigquery.NullInt64 `bigquery:"eligible_amount"`
	PendingOrders  int64                   `bigquery:"pending_orders"`
	PendingAmount  cloudbigquery.NullInt64 `bigquery:"pending_amount"`
	HeldOrders     int64                   `bigquery:"held_orders"`
}

type latestPayoutRow struct {
	PayoutID  int64     `bigquery:"payout_id"`
	CreatedAt time.Time `bigquery:"payout_created_at"`
}

type historyRow struct {
	PayoutID   string    `bigquery:"payout_id"`
	PayoutDate time.Time `bigquery:"payout_date"`
	Amount     int64     `bigquery:"amount"`
	Status     string    `bigquery:"status"`
	OrderCount int64     `bigquery:"order_count"`
}
