package statements

import (
	"github.com/fleekhq/seller-finance-backend/pkg/money"
	"github.com/shopspring/decimal"
)

// computeBreakdown reconciles the statement lines into the seller's view of
// the batch. All arithmetic runs on exact decimals built from the raw pence
// amounts; floats only appear at the view-model boundary. The opening
// balance is always zero because each statement settles in full.
func computeBreakdown(rows []detailRow) Breakdown {
	delivered := decimal.Zero
	fees := decimal.Zero
	logistics := decimal.Zero
	adjustments := decimal.Zero

	for _, row := range rows {
		commission, _ := money.CommissionSplit(row.FinalBase, row.CommissionPercentage)
		delivered = delivered.Add(money.FromSmallestUnit(row.FinalBase))
		fees = fees.Add(commission)
		logistics = logistics.Sub(money.FromSmallestUnit(row.ShippingPayable))
		adjustments = adjustments.Add(money.FromSmallestUnit(row.Adjustment))
	}

	closing := delivered.Sub(fees).Add(logistics).Add(adjustments)

	return Breakdown{
		OpeningBalance:  0,
		DeliveredOrders: decimalFloat(delivered),
		TransactionFees: decimalFloat(fees.Neg()),
		Logistics:       decimalFloat(logistics),
		Adjustments:     decimalFloat(adjustments),
		ClosingBalance:  decimalFloat(closing),
	}
}

func projectLine(row detailRow) Line {
	_, afterCommission := money.CommissionSplit(row.FinalBase, row.CommissionPercentage)

	line := Line{
		OrderID:              row.OrderID,
		CreatedAt:            row.CreatedAt.UTC().Format(dateTimeLayout),
		BasePrice:            money.Major(row.BasePrice),
		ShippingChargeable:   money.Major(row.ChargeableShipping),
		Discount:             money.Major(row.Discount),
		FinalBase:            money.Major(row.FinalBase),
		CommissionPercentage: row.CommissionPercentage,
		BaseAfterCommission:  decimalFloat(afterCommission),
		ShippingPayable:      money.Major(row.ShippingPayable),
		CancellationFee:      money.Major(row.CancellationFee),
		Refund:               money.Major(row.Refund),
		PreviouslyPaid:       money.Major(row.PreviouslyPaid),
		Total:                money.Major(row.Total),
		Adjustment:           money.Major(row.Adjustment),
		TotalPayable:         money.Major(row.TotalPayable),
		Status:               row.Status,
	}
	if row.OrderNumber.Valid {
		n := row.OrderNumber.Int64
		line.OrderNumber = &n
	}
	if row.ProductName.Valid {
		line.ProductName = row.ProductName.StringVal
	}
	return line
}

func decimalFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
