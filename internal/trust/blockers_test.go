package trust

import (
	"context"
	"testing"
	"time"

	cloudbigquery "cloud.google.com/go/bigquery"
	"github.com/fleekhq/seller-finance-backend/pkg/enums"
	pkgerrors "github.com/fleekhq/seller-finance-backend/pkg/errors"
)

func nullStr(s string) cloudbigquery.NullString {
	return cloudbigquery.NullString{StringVal: s, Valid: true}
}

func nullTime(t time.Time) cloudbigquery.NullTimestamp {
	return cloudbigquery.NullTimestamp{Timestamp: t, Valid: true}
}

func TestDeriveBlockersQCPending(t *testing.T) {
	rows := []blockerRow{
		{
			OrderID:  "1001",
			Status:   "pending_eligibility",
			QCStatus: nullStr("pending"),
			FFStatus: nullStr("completed"),
			FFTime:   nullTime(time.Now()),
		},
	}

	blockers := deriveBlockers(rows)
	if len(blockers) != 1 {
		t.Fatalf("expected 1 blocker, got %d", len(blockers))
	}
	b := blockers[0]
	if b.ReasonCode != ReasonQCPending {
		t.Fatalf("expected reason %s, got %s", ReasonQCPending, b.ReasonCode)
	}
	if b.Severity != enums.BlockerSeverityMedium {
		t.Fatalf("expected medium severity, got %s", b.Severity)
	}
	if b.EstimatedResolution != "2-3 business days" {
		t.Fatalf("unexpected resolution estimate %q", b.EstimatedResolution)
	}
}

func TestDeriveBlockersFulfillmentPending(t *testing.T) {
	rows := []blockerRow{
		{
			OrderID:  "1002",
			Status:   "held",
			QCStatus: nullStr("approved"),
			FFStatus: nullStr("in_transit"),
		},
	}

	blockers := deriveBlockers(rows)
	if len(blockers) != 1 {
		t.Fatalf("expected 1 blocker, got %d", len(blockers))
	}
	if blockers[0].ReasonCode != ReasonFFPending {
		t.Fatalf("expected reason %s, got %s", ReasonFFPending, blockers[0].ReasonCode)
	}
	if blockers[0].Severity != enums.BlockerSeverityLow {
		t.Fatalf("expected low severity, got %s", blockers[0].Severity)
	}
}

func TestDeriveBlockersMissingFFTimeCountsAsUnfulfilled(t *testing.T) {
	rows := []blockerRow{
		{
			OrderID:  "1003",
			Status:   "held",
			QCStatus: nullStr("approved"),
			FFStatus: nullStr("completed"),
		},
	}

	blockers := deriveBlockers(rows)
	if len(blockers) != 1 || blockers[0].ReasonCode != ReasonFFPending {
		t.Fatalf("expected a single FF_PENDING blocker, got %+v", blockers)
	}
}

func TestDeriveBlockersDedupesByReasonCode(t *testing.T) {
	var rows []blockerRow
	for i := 0; i < 5; i++ {
		rows = append(rows, blockerRow{
			OrderID:  "200" + string(rune('0'+i)),
			Status:   "pending_eligibility",
			QCStatus: nullStr("pending"),
			FFStatus: nullStr("completed"),
			FFTime:   nullTime(time.Now()),
		})
	}

	blockers := deriveBlockers(rows)
	if len(blockers) != 1 {
		t.Fatalf("expected blockers deduped to 1, got %d", len(blockers))
	}
	if blockers[0].ReasonCode != ReasonQCPending {
		t.Fatalf("expected %s, got %s", ReasonQCPending, blockers[0].ReasonCode)
	}
}

func TestDeriveBlockersEmptyRows(t *testing.T) {
	if blockers := deriveBlockers(nil); blockers != nil {
		t.Fatalf("expected nil for no rows, got %+v", blockers)
	}
}

func TestActiveBlockersRequiresVendorID(t *testing.T) {
	svc := &service{}

	_, err := svc.ActiveBlockers(context.Background(), "")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTrustScoreUsesScorer(t *testing.T) {
	svc := &service{scorer: StaticScorer{}}

	score, err := svc.TrustScore(context.Background(), "42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score.Score != 75 {
		t.Fatalf("expected score 75, got %d", score.Score)
	}
	if score.RiskLevel != enums.RiskLevelMedium {
		t.Fatalf("expected medium risk, got %s", score.RiskLevel)
	}
	if len(score.TopDrivers) != 2 {
		t.Fatalf("expected 2 drivers, got %d", len(score.TopDrivers))
	}
	if score.Trend != "stable" {
		t.Fatalf("expected stable trend, got %s", score.Trend)
	}
}
