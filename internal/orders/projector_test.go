package orders

import (
	"math"
	"testing"
	"time"

	cloudbigquery "cloud.google.com/go/bigquery"
)

func baseRow() orderRow {
	return orderRow{
		OrderID:         "123456",
		OrderNumber:     cloudbigquery.NullInt64{Int64: 1042, Valid: true},
		InternalOrderID: cloudbigquery.NullString{StringVal: "FLK-1042", Valid: true},
		ProductName:     cloudbigquery.NullString{StringVal: "Vintage Denim Jacket", Valid: true},
		CreatedAt:       time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC),
		PayoutStatus:    "eligible",
		FinalBase:       10000,
		CommissionPct:   10,
		Shipping:        450,
		Refund:          0,
		CancellationFee: 0,
		TotalPayable:    9550,
	}
}

func TestProjectCommissionSplitAddsUp(t *testing.T) {
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	for _, pct := range []float64{0, 7.5, 10, 33.3, 50, 100} {
		row := baseRow()
		row.CommissionPct = pct
		order := project(row, now)

		sum := order.BaseAfterCommission + order.OriginalCommission
		if math.Abs(sum-order.OriginalFinalBase) > 1e-6 {
			t.Fatalf("pct %v: %v + %v != %v", pct, order.BaseAfterCommission, order.OriginalCommission, order.OriginalFinalBase)
		}
	}
}

func TestProjectMoneyFields(t *testing.T) {
	order := project(baseRow(), time.Now().UTC())

	if order.OriginalFinalBase != 100.0 {
		t.Fatalf("expected final base 100.00, got %v", order.OriginalFinalBase)
	}
	if order.OriginalCommission != 10.0 {
		t.Fatalf("expected commission 10.00, got %v", order.OriginalCommission)
	}
	if order.BaseAfterCommission != 90.0 {
		t.Fatalf("expected 90.00 after commission, got %v", order.BaseAfterCommission)
	}
	if order.VendorShippingCost != 4.50 {
		t.Fatalf("expected shipping 4.50, got %v", order.VendorShippingCost)
	}
	if order.TotalPaidAmount != 95.50 || order.Amount != 95.50 {
		t.Fatalf("expected total 95.50, got %v / %v", order.TotalPaidAmount, order.Amount)
	}
	if order.Status != order.PayoutStatus {
		t.Fatal("status alias must mirror payoutStatus")
	}
}

func TestEligibilityDatePrefersFulfillment(t *testing.T) {
	row := baseRow()
	row.QCTime = cloudbigquery.NullTimestamp{
		Timestamp: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC), Valid: true,
	}
	row.FFTime = cloudbigquery.NullTimestamp{
		Timestamp: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC), Valid: true,
	}

	eligible := eligibilityDate(row)
	if eligible == nil {
		t.Fatal("expected an eligibility date")
	}
	if got := eligible.Format(dateLayout); got != "2026-01-22" {
		t.Fatalf("expected ff+7d = 2026-01-22, got %s", got)
	}
}

func TestEligibilityDateFallsBackToQC(t *testing.T) {
	row := baseRow()
	row.QCTime = cloudbigquery.NullTimestamp{
		Timestamp: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC), Valid: true,
	}

	eligible := eligibilityDate(row)
	if eligible == nil {
		t.Fatal("expected an eligibility date")
	}
	if got := eligible.Format(dateLayout); got != "2026-01-24" {
		t.Fatalf("expected qc+14d = 2026-01-24, got %s", got)
	}

	row.QCTime = cloudbigquery.NullTimestamp{}
	if eligibilityDate(row) != nil {
		t.Fatal("expected nil without qc or ff timestamps")
	}
}

func TestDaysUntilEligibleCeils(t *testing.T) {
	now := time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)
	target := time.Date(2026, 1, 22, 9, 0, 0, 0, time.UTC)
	// 1.875 days out rounds up to 2.
	if got := daysUntil(target, now); got != 2 {
		t.Fatalf("expected 2 days, got %d", got)
	}
	// In the past means already eligible.
	if got := daysUntil(now.AddDate(0, 0, -3), now); got > 0 {
		t.Fatalf("expected non-positive days, got %d", got)
	}
}

func TestHoldReasonsOnlyForBlockedStatuses(t *testing.T) {
	row := baseRow()
	row.PayoutStatus = "pending_eligibility"
	row.QCStatus = cloudbigquery.NullString{StringVal: "rejected", Valid: true}

	reasons := holdReasons(row)
	if len(reasons) != 2 {
		t.Fatalf("expected qc + freight reasons, got %v", reasons)
	}
	if reasons[0] != "QC Status: rejected" {
		t.Fatalf("unexpected reason %q", reasons[0])
	}

	row.PayoutStatus = "paid"
	if got := holdReasons(row); got != nil {
		t.Fatalf("paid orders carry no hold reasons, got %v", got)
	}
}
