// Package sample serves deterministic demo data behind the same service
// interfaces the warehouse implementations satisfy. It exists so the portal
// can run end to end without warehouse credentials.
package sample

import (
	"fmt"
	"time"

	"github.com/fleekhq/seller-finance-backend/internal/orders"
	"github.com/fleekhq/seller-finance-backend/internal/payouts"
	"github.com/fleekhq/seller-finance-backend/internal/statements"
	"github.com/fleekhq/seller-finance-backend/internal/trust"
	"github.com/fleekhq/seller-finance-backend/pkg/enums"
)

// VendorID is the identifier every handle resolves to in sample mode.
const VendorID = "789"

const dateLayout = "2006-01-02"

var timeNowUTC = func() time.Time {
	return time.Now().UTC()
}

// Fixture dates are anchored to "now" so the demo dashboard always shows a
// plausible upcoming cycle instead of drifting into the past.
func fixtureOrders(now time.Time) []orders.Order {
	eligibility := now.AddDate(0, 0, 8).Format(dateLayout)
	days := 8
	return []orders.Order{
		{
			OrderID:              "90001",
			OrderNumber:          4821,
			InternalOrderID:      "ord_sample_4821",
			ProductName:          "Vintage denim jacket",
			Vendor:               "vibe-vintage",
			CustomerName:         "A. Customer",
			PayoutStatus:         "eligible",
			CreatedAt:            now.AddDate(0, 0, -14).Format(dateLayout),
			CompletedAt:          now.AddDate(0, 0, -14).Format(dateLayout),
			EligibilityDate:      strPtr(now.AddDate(0, 0, -1).Format(dateLayout)),
			OriginalFinalBase:    150,
			CommissionPercentage: 10,
			OriginalCommission:   15,
			BaseAfterCommission:  135,
			TotalPaidAmount:      150,
			IncludesShipping:     true,
			Status:               "eligible",
			Amount:               150,
			QCStatus:             "approved",
			FFStatus:             "completed",
		},
		{
			OrderID:              "90002",
			OrderNumber:          4822,
			InternalOrderID:      "ord_sample_4822",
			ProductName:          "Retro band tee bundle",
			Vendor:               "vibe-vintage",
			CustomerName:         "B. Customer",
			PayoutStatus:         "pending_eligibility",
			CreatedAt:            now.AddDate(0, 0, -6).Format(dateLayout),
			CompletedAt:          now.AddDate(0, 0, -6).Format(dateLayout),
			EligibilityDate:      &eligibility,
			OriginalFinalBase:    200,
			CommissionPercentage: 10,
			OriginalCommission:   20,
			BaseAfterCommission:  180,
			TotalPaidAmount:      200,
			IncludesShipping:     false,
			Status:               "pending_eligibility",
			Amount:               200,
			QCStatus:             "approved",
			FFStatus:             "completed",
			HoldReasons:          []string{"Awaiting return window"},
			DaysUntilEligible:    &days,
		},
		{
			OrderID:              "90003",
			OrderNumber:          4823,
			InternalOrderID:      "ord_sample_4823",
			ProductName:          "Y2K windbreaker",
			Vendor:               "vibe-vintage",
			CustomerName:         "C. Customer",
			PayoutStatus:         "held",
			CreatedAt:            now.AddDate(0, 0, -4).Format(dateLayout),
			CompletedAt:          now.AddDate(0, 0, -4).Format(dateLayout),
			EligibilityDate:      nil,
			OriginalFinalBase:    85,
			CommissionPercentage: 12.5,
			OriginalCommission:   10.63,
			BaseAfterCommission:  74.37,
			TotalPaidAmount:      85,
			IncludesShipping:     true,
			Status:               "held",
			Amount:               85,
			QCStatus:             "pending",
			FFStatus:             "in_transit",
			HoldReasons:          []string{"QC Status: pending", "Awaiting freight flight"},
		},
		{
			OrderID:              "90004",
			OrderNumber:          4824,
			InternalOrderID:      "ord_sample_4824",
			ProductName:          "Leather crossbody bag",
			Vendor:               "vibe-vintage",
			CustomerName:         "D. Customer",
			PayoutStatus:         "paid",
			CreatedAt:            now.AddDate(0, 0, -30).Format(dateLayout),
			CompletedAt:          now.AddDate(0, 0, -30).Format(dateLayout),
			EligibilityDate:      strPtr(now.AddDate(0, 0, -16).Format(dateLayout)),
			OriginalFinalBase:    120,
			CommissionPercentage: 10,
			OriginalCommission:   12,
			BaseAfterCommission:  108,
			TotalPaidAmount:      120,
			IncludesShipping:     true,
			Status:               "paid",
			Amount:               120,
			QCStatus:             "approved",
			FFStatus:             "completed",
		},
	}
}

func fixtureBlockers() []trust.Blocker {
	return []trust.Blocker{
		{
			ReasonCode:          trust.ReasonQCPending,
			Severity:            enums.BlockerSeverityMedium,
			Title:               "Quality Check Pending",
			Description:         "Order 90003 is awaiting quality approval",
			ActionRequired:      false,
			EstimatedResolution: "2-3 business days",
		},
		{
			ReasonCode:          trust.ReasonFFPending,
			Severity:            enums.BlockerSeverityLow,
			Title:               "Freight Flight Pending",
			Description:         "Order 90003 is awaiting freight flight confirmation",
			ActionRequired:      false,
			EstimatedResolution: "5-7 business days",
		},
	}
}

func fixtureScore() *trust.Score {
	const score = 72
	return &trust.Score{
		Score:     score,
		RiskLevel: enums.RiskLevelForScore(score),
		TopDrivers: []trust.ScoreDriver{
			{Factor: "dispatch_delays", Impact: -15, Description: "3 late dispatches in last 14 days"},
			{Factor: "qc_fail_rate", Impact: -8, Description: "12% QC fail rate vs 5% baseline"},
			{Factor: "bank_change_recent", Impact: -5, Description: "Bank changed 6 days ago"},
		},
		Trend: "declining",
	}
}

func fixtureHistory(now time.Time) []payouts.HistoryItem {
	amounts := []float64{425, 380, 315, 560, 290}
	counts := []int64{3, 2, 2, 4, 2}
	items := make([]payouts.HistoryItem, 0, len(amounts))
	for i := range amounts {
		items = append(items, payouts.HistoryItem{
			PayoutDate: now.AddDate(0, 0, -7*(i+1)).Format(dateLayout),
			Amount:     amounts[i],
			Status:     "completed",
			OrderCount: counts[i],
		})
	}
	return items
}

func fixtureStatements(now time.Time) []statements.Statement {
	history := fixtureHistory(now)
	result := make([]statements.Statement, 0, len(history))
	for i, h := range history {
		date, _ := time.Parse(dateLayout, h.PayoutDate)
		result = append(result, statements.Statement{
			PayoutID:        fmt.Sprintf("%d", 300+len(history)-i),
			StatementNumber: fmt.Sprintf("STMT-%d-%03d", date.Year(), len(history)-i),
			Period:          date.Format("January 2006"),
			PayoutDate:      h.PayoutDate,
			Amount:          h.Amount,
			Status:          "completed",
			OrderCount:      h.OrderCount,
		})
	}
	return result
}

func fixtureDetail(payoutID string, now time.Time) *statements.Detail {
	created := now.AddDate(0, 0, -7).Format("2006-01-02T15:04:05Z")
	orderNumber := int64(4820)
	return &statements.Detail{
		PayoutID: payoutID,
		Orders: []statements.Line{
			{
				OrderID:              "90000",
				OrderNumber:          &orderNumber,
				ProductName:          "Corduroy overshirt",
				CreatedAt:            created,
				BasePrice:            180,
				FinalBase:            160,
				CommissionPercentage: 10,
				BaseAfterCommission:  144,
				ShippingPayable:      6,
				Total:                150,
				TotalPayable:         150,
				Status:               "paid",
			},
		},
		Breakdown: statements.Breakdown{
			OpeningBalance:  0,
			DeliveredOrders: 160,
			TransactionFees: -16,
			Logistics:       -6,
			Adjustments:     0,
			ClosingBalance:  138,
		},
	}
}

func strPtr(s string) *string {
	return &s
}
