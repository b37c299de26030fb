package orders

import (
	"fmt"
	"math"
	"time"

	"github.com/fleekhq/seller-finance-backend/pkg/enums"
	"github.com/fleekhq/seller-finance-backend/pkg/money"
	"github.com/shopspring/decimal"
)

const (
	dateLayout = "2006-01-02"

	// Eligibility windows: a fulfilled order clears its hold 7 days after the
	// fulfillment timestamp; without one, 14 days after QC.
	fulfillmentHoldDays = 7
	qcHoldDays          = 14

	qcApproved           = "approved"
	fulfillmentCompleted = "completed"
)

var timeNowUTC = func() time.Time {
	return time.Now().UTC()
}

// project maps one warehouse row into the seller-facing order view model.
func project(row orderRow, now time.Time) Order {
	commission, afterCommission := money.CommissionSplit(row.FinalBase, row.CommissionPct)

	order := Order{
		OrderID:         row.OrderID,
		OrderNumber:     row.OrderNumber.Int64,
		InternalOrderID: row.InternalOrderID.StringVal,
		ProductName:     row.ProductName.StringVal,
		Vendor:          row.Vendor.StringVal,
		VendorID:        row.VendorID.Int64,
		CustomerName:    row.CustomerName.StringVal,

		PayoutStatus: row.PayoutStatus,
		CreatedAt:    row.CreatedAt.UTC().Format(time.RFC3339),
		LatestStatus: row.LatestStatus.StringVal,
		CompletedAt:  row.CreatedAt.UTC().Format(time.RFC3339),

		OriginalFinalBase:    money.Major(row.FinalBase),
		CommissionPercentage: row.CommissionPct,
		OriginalCommission:   decimalFloat(commission),
		BaseAfterCommission:  decimalFloat(afterCommission),
		VendorShippingCost:   money.Major(row.Shipping),
		SupplierRefund:       money.Major(row.Refund),
		CancellationFee:      money.Major(row.CancellationFee),
		TotalPaidAmount:      money.Major(row.TotalPayable),

		IncludesShipping: row.IncludesShip.Bool,

		Status:   row.PayoutStatus,
		Amount:   money.Major(row.TotalPayable),
		QCStatus: row.QCStatus.StringVal,
		FFStatus: row.FFStatus.StringVal,
	}

	if eligible := eligibilityDate(row); eligible != nil {
		formatted := eligible.Format(dateLayout)
		order.EligibilityDate = &formatted
		days := daysUntil(*eligible, now)
		order.DaysUntilEligible = &days
	}

	order.HoldReasons = holdReasons(row)

	return order
}

// eligibilityDate estimates when a held order clears: fulfillment time plus
// seven days when present, otherwise QC time plus fourteen, otherwise nil.
func eligibilityDate(row orderRow) *time.Time {
	if row.FFTime.Valid {
		t := row.FFTime.Timestamp.UTC().AddDate(0, 0, fulfillmentHoldDays)
		return &t
	}
	if row.QCTime.Valid {
		t := row.QCTime.Timestamp.UTC().AddDate(0, 0, qcHoldDays)
		return &t
	}
	return nil
}

// daysUntil is the ceiling day count from now to the eligibility date. Zero
// or negative means already eligible.
func daysUntil(date, now time.Time) int {
	return int(math.Ceil(date.Sub(now).Hours() / 24))
}

func decimalFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func holdReasons(row orderRow) []string {
	if row.PayoutStatus != enums.LedgerStatusPendingEligibility.String() &&
		row.PayoutStatus != enums.LedgerStatusHeld.String() {
		return nil
	}

	var reasons []string
	if row.QCStatus.Valid && row.QCStatus.StringVal != qcApproved {
		reasons = append(reasons, fmt.Sprintf("QC Status: %s", row.QCStatus.StringVal))
	}
	if !row.FFTime.Valid {
		reasons = append(reasons, "Awaiting freight flight")
	}
	return reasons
}
