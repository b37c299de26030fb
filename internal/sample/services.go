package sample

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fleekhq/seller-finance-backend/internal/orders"
	"github.com/fleekhq/seller-finance-backend/internal/payouts"
	"github.com/fleekhq/seller-finance-backend/internal/statements"
	"github.com/fleekhq/seller-finance-backend/internal/trust"
	"github.com/fleekhq/seller-finance-backend/pkg/enums"
	pkgerrors "github.com/fleekhq/seller-finance-backend/pkg/errors"
	"github.com/fleekhq/seller-finance-backend/pkg/pagination"
)

// Vendors resolves every handle to the demo vendor.
type Vendors struct{}

func (Vendors) Resolve(_ context.Context, handle string) (string, error) {
	if handle == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "vendor handle is required")
	}
	return VendorID, nil
}

// Orders serves the fixture order list with the same filter semantics as the
// warehouse implementation.
type Orders struct{}

func (Orders) List(_ context.Context, vendorID string, filter orders.Filter) ([]orders.Order, error) {
	if vendorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required")
	}

	all := fixtureOrders(timeNowUTC())
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	matched := []orders.Order{}
	for _, o := range all {
		if filter.Status != "" && o.PayoutStatus != filter.Status {
			continue
		}
		if search != "" && !matchesSearch(o, search) {
			continue
		}
		matched = append(matched, o)
	}

	page := pagination.Normalize(pagination.Page{Limit: filter.Limit, Offset: filter.Offset})
	if page.Offset >= len(matched) {
		return []orders.Order{}, nil
	}
	end := page.Offset + page.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[page.Offset:end], nil
}

func matchesSearch(o orders.Order, search string) bool {
	return strings.Contains(strings.ToLower(o.ProductName), search) ||
		strings.Contains(strings.ToLower(o.InternalOrderID), search) ||
		strings.Contains(fmt.Sprintf("%d", o.OrderNumber), search)
}

// Payouts serves a fixture dashboard anchored to the real payout calendar.
type Payouts struct {
	PayoutWeekday  time.Weekday
	HistoryDefault int
	HistoryMax     int
}

func (p Payouts) Dashboard(_ context.Context, vendorID string, historyLimit int) (*payouts.Dashboard, error) {
	if vendorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required")
	}

	now := timeNowUTC()
	nextDate, daysUntil := payouts.NextPayoutDate(now, p.PayoutWeekday)
	history := clampHistory(fixtureHistory(now), p.normalizeLimit(historyLimit))

	// One held fixture order keeps the demo confidence at medium, matching
	// what the blockers panel shows.
	return &payouts.Dashboard{
		SellerID:            vendorID,
		CurrentCycle:        "CURRENT",
		EstimatedPayoutDate: nextDate.Format(dateLayout),
		Confidence:          enums.ConfidenceMedium,
		TotalAmount:         350,
		DaysUntilPayout:     daysUntil,
		EligibleOrders:      1,
		PendingOrders:       1,
		HeldOrders:          1,
		PayoutHistory:       history,
		TrustScore:          fixtureScore(),
		ActiveBlockers:      fixtureBlockers(),
	}, nil
}

func (p Payouts) History(_ context.Context, vendorID string, limit int) ([]payouts.HistoryItem, error) {
	if vendorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required")
	}
	return clampHistory(fixtureHistory(timeNowUTC()), p.normalizeLimit(limit)), nil
}

func (p Payouts) normalizeLimit(limit int) int {
	if limit <= 0 {
		return p.HistoryDefault
	}
	if limit > p.HistoryMax {
		return p.HistoryMax
	}
	return limit
}

func clampHistory(items []payouts.HistoryItem, limit int) []payouts.HistoryItem {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

// Statements serves fixture income statements.
type Statements struct{}

func (Statements) List(_ context.Context, vendorID string) ([]statements.Statement, error) {
	if vendorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required")
	}
	return fixtureStatements(timeNowUTC()), nil
}

func (Statements) Detail(_ context.Context, vendorID, payoutID string) (*statements.Detail, error) {
	if vendorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required")
	}
	for _, st := range fixtureStatements(timeNowUTC()) {
		if st.PayoutID == payoutID {
			return fixtureDetail(payoutID, timeNowUTC()), nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("statement not found: %s", payoutID))
}

// Trust serves fixture blockers and a fixed declining score.
type Trust struct{}

func (Trust) ActiveBlockers(_ context.Context, vendorID string) ([]trust.Blocker, error) {
	if vendorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required")
	}
	return fixtureBlockers(), nil
}

func (Trust) TrustScore(_ context.Context, vendorID string) (*trust.Score, error) {
	if vendorID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required")
	}
	return fixtureScore(), nil
}
