package enums

// Confidence expresses how likely the estimated payout date is to hold.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// String implements fmt.Stringer.
func (c Confidence) String() string {
	return string(c)
}
