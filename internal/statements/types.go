package statements

import (
	"time"

	cloudbigquery "cloud.google.com/go/bigquery"
)

// Statement is one income statement in the seller's list, derived from a
// payout batch.
type Statement struct {
	PayoutID        string  `json:"payoutId"`
	StatementNumber string  `json:"statementNumber"`
	Period          string  `json:"period"`
	PayoutDate      string  `json:"payoutDate"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status"`
	OrderCount      int64   `json:"orderCount"`
}

// Line is one order line inside a statement, with every fee component
// already converted to major units.
type Line struct {
	OrderID              string   `json:"orderId"`
	OrderNumber          *int64   `json:"orderNumber"`
	ProductName          string   `json:"productName"`
	CreatedAt            string   `json:"createdAt"`
	BasePrice            float64  `json:"basePrice"`
	ShippingChargeable   float64  `json:"shippingChargeable"`
	Discount             float64  `json:"discount"`
	FinalBase            float64  `json:"finalBase"`
	CommissionPercentage float64  `json:"commissionPercentage"`
	BaseAfterCommission  float64  `json:"baseAfterCommission"`
	ShippingPayable      float64  `json:"shippingPayableToVendor"`
	CancellationFee      float64  `json:"cancellationFee"`
	Refund               float64  `json:"refund"`
	PreviouslyPaid       float64  `json:"previouslyPaid"`
	Total                float64  `json:"total"`
	Adjustment           float64  `json:"adjustment"`
	TotalPayable         float64  `json:"totalPayable"`
	Status               string   `json:"status"`
}

// Breakdown reconciles a statement from delivered revenue down to the
// closing balance.
type Breakdown struct {
	OpeningBalance  float64 `json:"openingBalance"`
	DeliveredOrders float64 `json:"deliveredOrders"`
	TransactionFees float64 `json:"transactionFees"`
	Logistics       float64 `json:"logistics"`
	Adjustments     float64 `json:"adjustments"`
	ClosingBalance  float64 `json:"closingBalance"`
}

// Detail is the full statement view: every linked order line plus the
// reconciled fee breakdown.
type Detail struct {
	PayoutID  string    `json:"payoutId"`
	Orders    []Line    `json:"orders"`
	Breakdown Breakdown `json:"breakdown"`
}

type statementRow struct {
	PayoutID        string    `bigquery:"payout_id"`
	StatementNumber string    `bigquery:"statement_number"`
	Period          string    `bigquery:"statement_period"`
	PayoutDate      time.Time `bigquery:"payout_date"`
	Amount          int64     `bigquery:"amount"`
	Status          string    `bigquery:"status"`
	OrderCount      int64     `bigquery:"order_count"`
}

type detailRow struct {
	OrderID              string                   `bigquery:"order_id"`
	OrderNumber          cloudbigquery.NullInt64  `bigquery:"order_number"`
	ProductName          cloudbigquery.NullString `bigquery:"product_name"`
	CreatedAt            time.Time                `bigquery:"created_at"`
	BasePrice            int64                    `bigquery:"base_price_smallest_unit"`
	ChargeableShipping   int64                    `bigquery:"chargeable_shipping_smallest_unit"`
	Discount             int64                    `bigquery:"discount_amount_smallest_unit"`
	FinalBase            int64                    `bigquery:"final_base_smallest_unit"`
	CommissionPercentage float64                  `bigquery:"commission_percentage"`
	ShippingPayable      int64                    `bigquery:"shipping_amount_smallest_unit"`
	CancellationFee      int64                    `bigquery:"cancellation_fee_smallest_unit"`
	Refund               int64                    `bigquery:"refund_amount_smallest_unit"`
	PreviouslyPaid       int64                    `bigquery:"previously_paid_smallest_unit"`
	Total                int64                    `bigquery:"total_smallest_unit"`
	Adjustment           int64                    `bigquery:"total_adjustment_smallest_unit"`
	TotalPayable         int64                    `bigquery:"total_payable_smallest_unit"`
	Status               string                   `bigquery:"status"`
}
