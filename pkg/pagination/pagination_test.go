package pagination

import "testing"

func TestNormalizeDefaults(t *testing.T) {
	p := Normalize(Page{})
	if p.Limit != DefaultLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultLimit, p.Limit)
	}
	if p.Offset != 0 {
		t.Fatalf("expected offset 0, got %d", p.Offset)
	}
}

func TestNormalizeCapsLimit(t *testing.T) {
	p := Normalize(Page{Limit: 10_000, Offset: -5})
	if p.Limit != MaxLimit {
		t.Fatalf("expected capped limit %d, got %d", MaxLimit, p.Limit)
	}
	if p.Offset != 0 {
		t.Fatalf("expected clamped offset, got %d", p.Offset)
	}
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	p := Normalize(Page{Limit: 25, Offset: 50})
	if p.Limit != 25 || p.Offset != 50 {
		t.Fatalf("unexpected page %+v", p)
	}
}
