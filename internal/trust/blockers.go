package trust

import (
	"fmt"

	"github.com/fleekhq/seller-finance-backend/pkg/enums"
)

const (
	qcApproved           = "approved"
	fulfillmentCompleted = "completed"
)

// deriveBlockers turns held/pending order rows into payout blockers,
// deduplicated by reason code: however many orders trip the same rule, the
// seller sees one blocker for it.
func deriveBlockers(rows []blockerRow) []Blocker {
	var blockers []Blocker
	for _, row := range rows {
		if row.QCStatus.Valid && row.QCStatus.StringVal != qcApproved {
			blockers = append(blockers, Blocker{
				ReasonCode:          ReasonQCPending,
				Severity:            enums.BlockerSeverityMedium,
				Title:               "Quality Check Pending",
				Description:         fmt.Sprintf("Order %s is awaiting quality approval", row.OrderID),
				ActionRequired:      false,
				EstimatedResolution: "2-3 business days",
			})
		}
		if !fulfilled(row) {
			blockers = append(blockers, Blocker{
				ReasonCode:          ReasonFFPending,
				Severity:            enums.BlockerSeverityLow,
				Title:               "Freight Flight Pending",
				Description:         fmt.Sprintf("Order %s is awaiting freight flight confirmation", row.OrderID),
				ActionRequired:      false,
				EstimatedResolution: "5-7 business days",
			})
		}
	}
	return dedupeByReason(blockers)
}

func fulfilled(row blockerRow) bool {
	return row.FFStatus.Valid && row.FFStatus.StringVal == fulfillmentCompleted && row.FFTime.Valid
}

func dedupeByReason(blockers []Blocker) []Blocker {
	if len(blockers) == 0 {
		return nil
	}
	seen := map[string]bool{}
	unique := make([]Blocker, 0, len(blockers))
	for _, b := range blockers {
		if seen[b.ReasonCode] {
			continue
		}
		seen[b.ReasonCode] = true
		unique = append(unique, b)
	}
	return unique
}
