package enums

// RiskLevel buckets a trust score into a coarse seller risk rating.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// RiskLevelForScore buckets a 0-100 trust score.
func RiskLevelForScore(score int) RiskLevel {
	switch {
	case score >= 80:
		return RiskLevelLow
	case score >= 50:
		return RiskLevelMedium
	default:
		return RiskLevelHigh
	}
}

// String implements fmt.Stringer.
func (r RiskLevel) String() string {
	return string(r)
}
