package enums

// BlockerSeverity grades how strongly a blocker delays a payout.
type BlockerSeverity string

const (
	BlockerSeverityLow    BlockerSeverity = "low"
	BlockerSeverityMedium BlockerSeverity = "medium"
	BlockerSeverityHigh   BlockerSeverity = "high"
)

// String implements fmt.Stringer.
func (s BlockerSeverity) String() string {
	return string(s)
}
