package enums

import "testing"

func TestParseLedgerStatus(t *testing.T) {
	status, err := ParseLedgerStatus("pending_eligibility")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != LedgerStatusPendingEligibility {
		t.Fatalf("unexpected status %s", status)
	}

	if _, err := ParseLedgerStatus("shipped"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestListableExcludesTerminalFailures(t *testing.T) {
	if LedgerStatusFailed.IsListable() {
		t.Fatal("failed rows must not surface to sellers")
	}
	if LedgerStatusCancelled.IsListable() {
		t.Fatal("cancelled rows must not surface to sellers")
	}
	if !LedgerStatusHeld.IsListable() {
		t.Fatal("held rows belong in listings")
	}
}

func TestRiskLevelForScore(t *testing.T) {
	if RiskLevelForScore(85) != RiskLevelLow {
		t.Fatal("85 should be low risk")
	}
	if RiskLevelForScore(75) != RiskLevelMedium {
		t.Fatal("75 should be medium risk")
	}
	if RiskLevelForScore(20) != RiskLevelHigh {
		t.Fatal("20 should be high risk")
	}
}
