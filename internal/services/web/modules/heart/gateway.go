package heart

import (
	"context"
	"errors"

	"github.com/aiml-healthguard/healthguard/internal/services/web/assessment"
	"github.com/aiml-healthguard/healthguard/internal/services/web/integration/inference"
	apperrors "github.com/aiml-healthguard/healthguard/internal/services/web/platform/errors"
)

// RiskGateway submits one heart payload to the heart model.
type RiskGateway interface {
	PredictRisk(context.Context, map[string]float64) (assessment.RiskResult, error)
}

// RiskClient is the inference client surface used by the heart gateway.
type RiskClient interface {
	PredictJSON(ctx context.Context, payload any) ([]byte, error)
}

type inferenceGateway struct {
	client RiskClient
}

// NewInferenceGateway returns a gateway backed by the heart model client, or
// an unavailable gateway when client is nil.
func NewInferenceGateway(client *inference.Client) RiskGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return inferenceGateway{client: client}
}

func (g inferenceGateway) PredictRisk(ctx context.Context, payload map[string]float64) (assessment.RiskResult, error) {
	body, err := g.client.PredictJSON(ctx, payload)
	if err != nil {
		return assessment.RiskResult{}, mapInferenceError(err)
	}
	result, err := assessment.DecodeRiskResponse(body)
	if err != nil {
		return assessment.RiskResult{}, apperrors.Wrap(apperrors.KindUnavailable, "assessment.error.connect", err)
	}
	return result, nil
}

// mapInferenceError folds transport outcomes into the two user-visible kinds.
// Only a non-success status is a server error; anything else, an unreadable
// body included, reads as a connectivity failure.
func mapInferenceError(err error) error {
	switch {
	case errors.Is(err, inference.ErrServerStatus):
		return apperrors.Wrap(apperrors.KindUpstream, "assessment.error.server", err)
	default:
		return apperrors.Wrap(apperrors.KindUnavailable, "assessment.error.connect", err)
	}
}
