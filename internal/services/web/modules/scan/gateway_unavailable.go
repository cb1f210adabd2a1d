package scan

import (
	"context"

	"github.com/aiml-healthguard/healthguard/internal/services/web/assessment"
	apperrors "github.com/aiml-healthguard/healthguard/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) PredictImage(context.Context, assessment.Upload) (assessment.ImageResult, error) {
	return assessment.ImageResult{}, apperrors.EK(apperrors.KindUnavailable, "assessment.error.connect", "image model service is not configured")
}
