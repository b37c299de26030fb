package validators

import (
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/fleekhq/seller-finance-backend/pkg/errors"
)

func TestParseQueryIntDefault(t *testing.T) {
	r := httptest.NewRequest("GET", "/?other=1", nil)

	got, err := ParseQueryInt(r, "limit", 25, 0, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 25 {
		t.Fatalf("expected default 25, got %d", got)
	}
}

func TestParseQueryIntParses(t *testing.T) {
	r := httptest.NewRequest("GET", "/?limit=42", nil)

	got, err := ParseQueryInt(r, "limit", 25, 0, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestParseQueryIntRejectsNonNumeric(t *testing.T) {
	r := httptest.NewRequest("GET", "/?limit=abc", nil)

	_, err := ParseQueryInt(r, "limit", 25, 0, 100)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseQueryIntRejectsOutOfRange(t *testing.T) {
	r := httptest.NewRequest("GET", "/?limit=101", nil)

	_, err := ParseQueryInt(r, "limit", 25, 0, 100)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
