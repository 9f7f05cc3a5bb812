package ai

import (
	"context"
	"errors"

	"farecast/internal/modules/fare"
)

var ErrInsightUnavailable = errors.New("insight provider not configured")

// Narrator turns a fare forecast into traveller-facing advice. The interface
// keeps the HTTP layer independent of the model vendor.
type Narrator interface {
	// ExplainPrediction summarises forecast. tripContext carries request
	// labels such as "location", "vehicle" and "currency".
	ExplainPrediction(ctx context.Context, forecast fare.Forecast, tripContext map[string]string) (*Insight, error)
}
