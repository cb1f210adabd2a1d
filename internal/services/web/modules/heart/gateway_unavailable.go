package heart

import (
	"context"

	"github.com/aiml-healthguard/healthguard/internal/services/web/assessment"
	apperrors "github.com/aiml-healthguard/healthguard/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) PredictRisk(context.Context, map[string]float64) (assessment.RiskResult, error) {
	return assessment.RiskResult{}, apperrors.EK(apperrors.KindUnavailable, "assessment.error.connect", "heart model service is not configured")
}
