package orders

import (
	"time"

	cloudbigquery "cloud.google.com/go/bigquery"
)

// Filter narrows the orders listing. Status must be one of the listable
// ledger statuses; Search matches order number, internal order id, or product
// title (case-insensitive, OR semantics).
type Filter struct {
	Status string `validate:"omitempty,oneof=in_progress completed eligible pending_eligibility held paid"`
	Search string
	Limit  int
	Offset int
}

// Order is the seller-facing projection of one balance transaction joined to
// its optional catalog row. All monetary fields are major currency units;
// computed fields are derived at query time and never persisted.
type Order struct {
	OrderID         string `json:"orderId"`
	OrderNumber     int64  `json:"orderNumber,omitempty"`
	InternalOrderID string `json:"internalOrderId"`
	ProductName     string `json:"productName"`
	Vendor          string `json:"vendor,omitempty"`
	VendorID        int64  `json:"vendorId,omitempty"`
	CustomerName    string `json:"customerName,omitempty"`

	PayoutStatus    string  `json:"payoutStatus"`
	CreatedAt       string  `json:"createdAt"`
	LatestStatus    string  `json:"latestStatus,omitempty"`
	CompletedAt     string  `json:"completedAt"`
	EligibilityDate *string `json:"eligibilityDate"`

	OriginalFinalBase    float64 `json:"originalFinalBase"`
	CommissionPercentage float64 `json:"commissionPercentage"`
	OriginalCommission   float64 `json:"originalCommission"`
	BaseAfterCommission  float64 `json:"baseAfterCommission"`
	VendorShippingCost   float64 `json:"vendorShippingCost"`
	SupplierRefund       float64 `json:"supplierRefund"`
	CancellationFee      float64 `json:"cancellationFee"`
	TotalPaidAmount      float64 `json:"totalPaidAmount"`

	IncludesShipping bool `json:"includesShipping"`

	// Convenience aliases kept for the existing dashboard components.
	Status            string   `json:"status"`
	Amount            float64  `json:"amount"`
	QCStatus          string   `json:"qcStatus,omitempty"`
	FFStatus          string   `json:"ffStatus,omitempty"`
	HoldReasons       []string `json:"holdReasons,omitempty"`
	DaysUntilEligible *int     `json:"daysUntilEligible,omitempty"`
}

// orderRow mirrors the columns of the canonical orders query. The catalog
// side of the join may be absent, so all vp columns are nullable.
type orderRow struct {
	OrderID         string                        `bigquery:"order_id"`
	OrderNumber     cloudbigquery.NullInt64       `bigquery:"order_number"`
	InternalOrderID cloudbigquery.NullString      `bigquery:"internal_order_id"`
	ProductName     cloudbigquery.NullString      `bigquery:"product_name"`
	Vendor          cloudbigquery.NullString      `bigquery:"vendor"`
	VendorID        cloudbigquery.NullInt64       `bigquery:"vendor_id"`
	CustomerName    cloudbigquery.NullString      `bigquery:"customer_name"`
	CreatedAt       time.Time                     `bigquery:"created_at"`
	LatestStatus    cloudbigquery.NullString      `bigquery:"latest_status"`
	PayoutStatus    string                        `bigquery:"payout_status"`
	IncludesShip    cloudbigquery.NullBool        `bigquery:"includes_shipping"`
	FinalBase       int64                         `bigquery:"final_base_smallest_unit"`
	CommissionPct   float64                       `bigquery:"commission_percentage"`
	Shipping        int64                         `bigquery:"shipping_amount_smallest_unit"`
	Refund          int64                         `bigquery:"refund_amount_smallest_unit"`
	CancellationFee int64                         `bigquery:"cancellation_fee_smallest_unit"`
	TotalPayable    int64                         `bigquery:"total_payable_smallest_unit"`
	QCStatus        cloudbigquery.NullString      `bigquery:"qc_status"`
	QCTime          cloudbigquery.NullTimestamp   `bigquery:"qc_time"`
	FFStatus        cloudbigquery.NullString      `bigquery:"ff_status"`
	FFTime          cloudbigquery.NullTimestamp   `bigquery:"ff_time"`
}
