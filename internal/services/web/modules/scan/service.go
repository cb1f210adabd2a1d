package scan

import (
	"context"
	"errors"
	"strings"

	"github.com/aiml-healthguard/healthguard/internal/services/web/assessment"
	apperrors "github.com/aiml-healthguard/healthguard/internal/services/web/platform/errors"
)

// analysis is the outcome of one upload round trip.
type analysis struct {
	kind  scanKind
	state *assessment.UploadState
	err   error
}

type service struct {
	kinds map[string]scanKind
}

func newService(gateways Gateways) service {
	return service{kinds: kindTable(gateways)}
}

// accepted reports whether the upload passed selection and was forwarded.
func (a analysis) accepted() bool {
	if a.state == nil {
		return false
	}
	_, ok := a.state.Preview()
	return ok
}

func (s service) lookup(key string) (scanKind, error) {
	kind, ok := s.kinds[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return scanKind{}, apperrors.E(apperrors.KindNotFound, "unknown scan kind")
	}
	return kind, nil
}

// analyze selects upload and, when it is an image, forwards it once. A nil
// upload means no file was chosen.
func (s service) analyze(ctx context.Context, kind scanKind, upload *assessment.Upload) analysis {
	state := assessment.NewUploadState()
	if upload != nil {
		if err := state.Select(*upload); err != nil {
			return analysis{kind: kind, state: state, err: selectError(err)}
		}
	}
	selected, err := state.Submit()
	if err != nil {
		if errors.Is(err, assessment.ErrNoImage) {
			err = apperrors.Wrap(apperrors.KindValidation, "assessment.error.no_image", err)
		}
		return analysis{kind: kind, state: state, err: err}
	}

	result, err := kind.gateway.PredictImage(ctx, selected)
	if err != nil {
		_ = state.Fail(err)
		return analysis{kind: kind, state: state, err: err}
	}
	_ = state.Succeed(result)
	return analysis{kind: kind, state: state}
}

func selectError(err error) error {
	if errors.Is(err, assessment.ErrNotImage) {
		return apperrors.Wrap(apperrors.KindInvalidInput, "assessment.error.image", err)
	}
	return err
}
