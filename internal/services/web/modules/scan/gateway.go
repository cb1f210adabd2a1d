package scan

import (
	"context"
	"errors"

	"github.com/aiml-healthguard/healthguard/internal/services/web/assessment"
	"github.com/aiml-healthguard/healthguard/internal/services/web/integration/inference"
	apperrors "github.com/aiml-healthguard/healthguard/internal/services/web/platform/errors"
)

// ImageGateway submits one image to an image model.
type ImageGateway interface {
	PredictImage(context.Context, assessment.Upload) (assessment.ImageResult, error)
}

type inferenceGateway struct {
	client *inference.Client
}

// NewInferenceGateway returns a gateway backed by an image model client, or
// an unavailable gateway when client is nil.
func NewInferenceGateway(client *inference.Client) ImageGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return inferenceGateway{client: client}
}

func (g inferenceGateway) PredictImage(ctx context.Context, upload assessment.Upload) (assessment.ImageResult, error) {
	body, err := g.client.PredictFile(ctx, inference.File{
		Name:        upload.FileName,
		ContentType: upload.MediaType(),
		Data:        upload.Data,
	})
	if err != nil {
		if errors.Is(err, inference.ErrServerStatus) {
			return assessment.ImageResult{}, apperrors.Wrap(apperrors.KindUpstream, "assessment.error.server", err)
		}
		return assessment.ImageResult{}, apperrors.Wrap(apperrors.KindUnavailable, "assessment.error.connect", err)
	}
	result, err := assessment.DecodeImageResponse(body)
	if err != nil {
		return assessment.ImageResult{}, apperrors.Wrap(apperrors.KindUnavailable, "assessment.error.connect", err)
	}
	return result, nil
}
