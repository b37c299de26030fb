package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func passthrough() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestIDKeepsForwardedUUID(t *testing.T) {
	forwarded := uuid.NewString()
	r := httptest.NewRequest("GET", "/api/health", nil)
	r.Header.Set("X-Request-Id", forwarded)

	w := httptest.NewRecorder()
	RequestID(nil)(passthrough()).ServeHTTP(w, r)

	if got := w.Header().Get("X-Request-Id"); got != forwarded {
		t.Fatalf("expected forwarded id %s, got %s", forwarded, got)
	}
}

func TestRequestIDReplacesNonUUID(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/health", nil)
	r.Header.Set("X-Request-Id", "not-a-uuid'; DROP TABLE")

	w := httptest.NewRecorder()
	RequestID(nil)(passthrough()).ServeHTTP(w, r)

	got := w.Header().Get("X-Request-Id")
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("expected a fresh uuid, got %q", got)
	}
}

func TestRequestIDGeneratesWhenAbsent(t *testing.T) {
	w := httptest.NewRecorder()
	RequestID(nil)(passthrough()).ServeHTTP(w, httptest.NewRequest("GET", "/api/health", nil))

	if _, err := uuid.Parse(w.Header().Get("X-Request-Id")); err != nil {
		t.Fatalf("expected a generated uuid: %v", err)
	}
}

func TestRecovererConvertsPanicToInternalError(t *testing.T) {
	boom := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	Recoverer(nil)(boom).ServeHTTP(w, httptest.NewRequest("GET", "/api/sellers/789/payout", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestRoutePatternFallsBackToPath(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/sellers/789/payout", nil)
	if got := routePattern(r); got != "/api/sellers/789/payout" {
		t.Fatalf("unexpected pattern %s", got)
	}
}
