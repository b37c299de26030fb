package payouts

import (
	"context"
	"testing"

	"github.com/fleekhq/seller-finance-backend/internal/trust"
	"github.com/fleekhq/seller-finance-backend/pkg/enums"
	pkgerrors "github.com/fleekhq/seller-finance-backend/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestConfidenceLevelLadder(t *testing.T) {
	cases := []struct {
		name     string
		blockers []trust.Blocker
		held     int64
		want     enums.Confidence
	}{
		{
			name: "no blockers and nothing held",
			want: enums.ConfidenceHigh,
		},
		{
			name:     "high severity blocker wins regardless of held",
			blockers: []trust.Blocker{{Severity: enums.BlockerSeverityHigh}},
			want:     enums.ConfidenceLow,
		},
		{
			name: "high severity wins over medium",
			blockers: []trust.Blocker{
				{Severity: enums.BlockerSeverityMedium},
				{Severity: enums.BlockerSeverityHigh},
			},
			want: enums.ConfidenceLow,
		},
		{
			name:     "medium blocker caps at medium",
			blockers: []trust.Blocker{{Severity: enums.BlockerSeverityMedium}},
			want:     enums.ConfidenceMedium,
		},
		{
			name: "held orders cap at medium even without blockers",
			held: 2,
			want: enums.ConfidenceMedium,
		},
		{
			name:     "low severity blockers alone stay high",
			blockers: []trust.Blocker{{Severity: enums.BlockerSeverityLow}},
			want:     enums.ConfidenceHigh,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, confidenceLevel(tc.blockers, tc.held))
		})
	}
}

func TestCurrentCycleLabel(t *testing.T) {
	require.Equal(t, "CURRENT", currentCycle(nil))
	require.Equal(t, "PAYOUT-381", currentCycle(&latestPayoutRow{PayoutID: 381}))
}

func TestHistoryStatusMapsNonCompletedToPending(t *testing.T) {
	require.Equal(t, "completed", historyStatus("completed"))
	require.Equal(t, "pending", historyStatus("in_transit"))
}

func TestNormalizeHistoryLimit(t *testing.T) {
	svc := &service{historyDefault: 5, historyMax: 10}

	require.Equal(t, 5, svc.normalizeHistoryLimit(0))
	require.Equal(t, 5, svc.normalizeHistoryLimit(-3))
	require.Equal(t, 8, svc.normalizeHistoryLimit(8))
	require.Equal(t, 10, svc.normalizeHistoryLimit(25))
}

func TestDashboardRequiresVendorID(t *testing.T) {
	svc := &service{}

	_, err := svc.Dashboard(context.Background(), "", 0)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestHistoryRequiresVendorID(t *testing.T) {
	svc := &service{}

	_, err := svc.History(context.Background(), "", 0)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}
