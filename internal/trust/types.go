package trust

import (
	cloudbigquery "cloud.google.com/go/bigquery"
	"github.com/fleekhq/seller-finance-backend/pkg/enums"
)

const (
	ReasonQCPending = "QC_PENDING"
	ReasonFFPending = "FF_PENDING"
)

// Blocker is a derived, human-readable reason a payout is delayed. Blockers
// are recomputed on every request and never stored.
type Blocker struct {
	ReasonCode          string                `json:"reasonCode"`
	Severity            enums.BlockerSeverity `json:"severity"`
	Title               string                `json:"title"`
	Description         string                `json:"description"`
	ActionRequired      bool                  `json:"actionRequired"`
	EstimatedResolution string                `json:"estimatedResolution"`
}

// ScoreDriver names one factor contributing to the trust score.
type ScoreDriver struct {
	Factor      string `json:"factor"`
	Impact      int    `json:"impact"`
	Description string `json:"description"`
}

// Score is a heuristic 0-100 seller reliability rating.
type Score struct {
	Score      int             `json:"score"`
	RiskLevel  enums.RiskLevel `json:"riskLevel"`
	TopDrivers []ScoreDriver   `json:"topDrivers"`
	Trend      string          `json:"trend"`
}

// blockerRow is one held or pending order line with its catalog flags.
type blockerRow struct {
	OrderID  string                      `bigquery:"order_id"`
	Status   string                      `bigquery:"status"`
	QCStatus cloudbigquery.NullString    `bigquery:"qc_status"`
	FFStatus cloudbigquery.NullString    `bigquery:"ff_status"`
	FFTime   cloudbigquery.NullTimestamp `bigquery:"ff_time"`
}
