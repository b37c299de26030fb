package enums

import "fmt"

// LedgerStatus is the lifecycle status of a balance transaction row.
type LedgerStatus string

const (
	LedgerStatusInProgress         LedgerStatus = "in_progress"
	LedgerStatusCompleted          LedgerStatus = "completed"
	LedgerStatusEligible           LedgerStatus = "eligible"
	LedgerStatusPendingEligibility LedgerStatus = "pending_eligibility"
	LedgerStatusHeld               LedgerStatus = "held"
	LedgerStatusPaid               LedgerStatus = "paid"
	LedgerStatusFailed             LedgerStatus = "failed"
	LedgerStatusCancelled          LedgerStatus = "cancelled"
)

var validLedgerStatuses = []LedgerStatus{
	LedgerStatusInProgress,
	LedgerStatusCompleted,
	LedgerStatusEligible,
	LedgerStatusPendingEligibility,
	LedgerStatusHeld,
	LedgerStatusPaid,
	LedgerStatusFailed,
	LedgerStatusCancelled,
}

// ListableLedgerStatuses are the statuses the orders listing includes by
// default. Failed and cancelled rows never surface to sellers.
var ListableLedgerStatuses = []LedgerStatus{
	LedgerStatusInProgress,
	LedgerStatusCompleted,
	LedgerStatusEligible,
	LedgerStatusPendingEligibility,
	LedgerStatusHeld,
	LedgerStatusPaid,
}

// String implements fmt.Stringer.
func (s LedgerStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is known.
func (s LedgerStatus) IsValid() bool {
	for _, candidate := range validLedgerStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsListable reports whether the status appears in seller order listings.
func (s LedgerStatus) IsListable() bool {
	for _, candidate := range ListableLedgerStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseLedgerStatus converts raw input into a LedgerStatus.
func ParseLedgerStatus(value string) (LedgerStatus, error) {
	for _, candidate := range validLedgerStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid ledger status %q", value)
}
