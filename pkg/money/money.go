// Package money converts ledger amounts between the warehouse's smallest
// currency unit (pence) and major units, and computes the commission split.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// FromSmallestUnit converts pence to pounds.
func FromSmallestUnit(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount).Shift(-2)
}

// Major returns the float view-model representation of a pence amount.
func Major(amount int64) float64 {
	f, _ := FromSmallestUnit(amount).Float64()
	return f
}

// CommissionSplit divides a final base amount (pence) into the marketplace
// commission and the vendor remainder, both in major units. commissionPct is
// a 0-100 percentage. The two parts always sum to the original amount.
func CommissionSplit(finalBase int64, commissionPct float64) (commission, afterCommission decimal.Decimal) {
	base := FromSmallestUnit(finalBase)
	pct := decimal.NewFromFloat(commissionPct).Div(hundred)
	commission = base.Mul(pct)
	afterCommission = base.Sub(commission)
	return commission, afterCommission
}
