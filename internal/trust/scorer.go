package trust

import (
	"context"

	"github.com/fleekhq/seller-finance-backend/pkg/enums"
)

// Scorer computes a seller trust score. The production implementation is a
// deliberate placeholder so a real scoring model can be substituted without
// touching call sites.
type Scorer interface {
	Score(ctx context.Context, vendorID string) (*Score, error)
}

// StaticScorer returns a fixed heuristic rating with named drivers.
type StaticScorer struct{}

func (StaticScorer) Score(_ context.Context, _ string) (*Score, error) {
	const score = 75
	return &Score{
		Score:     score,
		RiskLevel: enums.RiskLevelForScore(score),
		TopDrivers: []ScoreDriver{
			{Factor: "Return rate", Impact: -15, Description: "Higher than average"},
			{Factor: "Delivery time", Impact: -10, Description: "Delayed shipments"},
		},
		Trend: "stable",
	}, nil
}
