package warehouse

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/fleekhq/seller-finance-backend/pkg/config"
	"google.golang.org/api/googleapi"
)

func TestClientOptionsPrioritizesJSON(t *testing.T) {
	gcp := config.GCPConfig{
		CredentialsJSON:        `{"dummy": "value"}`,
		ApplicationCredentials: "/tmp/creds",
	}

	opts := clientOptions(gcp)
	if len(opts) != 1 {
		t.Fatalf("expected 1 option, got %d", len(opts))
	}
}

func TestClientOptionsEmpty(t *testing.T) {
	if opts := clientOptions(config.GCPConfig{}); len(opts) != 0 {
		t.Fatalf("expected no options, got %d", len(opts))
	}
}

func TestTableRefs(t *testing.T) {
	c := &Client{
		projectID: "proj",
		cfg: config.WarehouseConfig{
			LedgerDataset:    "ledger",
			AnalyticsDataset: "analytics",
		},
	}

	if got := c.TableRef("payout"); got != "`proj.ledger.payout`" {
		t.Fatalf("unexpected ledger ref %s", got)
	}
	if got := c.AnalyticsTableRef("vendor_payout"); got != "`proj.analytics.vendor_payout`" {
		t.Fatalf("unexpected analytics ref %s", got)
	}
}

func TestIsTransient(t *testing.T) {
	transient := []int{
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout,
	}
	for _, code := range transient {
		err := fmt.Errorf("wrapped: %w", &googleapi.Error{Code: code})
		if !isTransient(err) {
			t.Fatalf("expected %d to be transient", code)
		}
	}

	if isTransient(&googleapi.Error{Code: http.StatusBadRequest}) {
		t.Fatal("malformed query must not be retried")
	}
	if isTransient(errors.New("plain error")) {
		t.Fatal("non-api errors must not be retried")
	}
}

func TestTruncateCollapsesWhitespace(t *testing.T) {
	sql := "SELECT id\n  FROM `proj.ledger.vendors`\n  WHERE handle = @handle"
	got := truncate(sql, logQueryMaxLen)
	if got != "SELECT id FROM `proj.ledger.vendors` WHERE handle = @handle" {
		t.Fatalf("unexpected truncation: %q", got)
	}

	long := truncate("SELECT "+stringOfLen(300), 200)
	if len(long) != 203 {
		t.Fatalf("expected 200 chars plus ellipsis, got %d", len(long))
	}
}

func stringOfLen(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}
