package heart

import (
	"context"
	"errors"

	"github.com/aiml-healthguard/healthguard/internal/services/web/assessment"
	apperrors "github.com/aiml-healthguard/healthguard/internal/services/web/platform/errors"
)

// submission is the outcome of one form round trip.
type submission struct {
	state   *assessment.FormState
	invalid *assessment.ValidationError
	err     error
}

type service struct {
	gateway RiskGateway
	fields  []assessment.Field
}

func newService(gateway RiskGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway, fields: assessment.HeartFields()}
}

// edit applies values without submitting.
func (s service) edit(values assessment.Values) *assessment.FormState {
	state := assessment.NewFormState(s.fields)
	state.Edit(values)
	return state
}

// submit validates values and, when complete, issues exactly one prediction.
func (s service) submit(ctx context.Context, values assessment.Values) submission {
	state := s.edit(values)
	payload, err := state.Submit()
	if err != nil {
		var invalid *assessment.ValidationError
		switch {
		case errors.As(err, &invalid):
			return submission{state: state, invalid: invalid, err: apperrors.Wrap(apperrors.KindInvalidInput, "assessment.error.invalid", err)}
		case errors.Is(err, assessment.ErrIncomplete):
			return submission{state: state, err: apperrors.Wrap(apperrors.KindValidation, "assessment.error.incomplete", err)}
		default:
			return submission{state: state, err: err}
		}
	}

	result, err := s.gateway.PredictRisk(ctx, payload)
	if err != nil {
		_ = state.Fail(err)
		return submission{state: state, err: err}
	}
	_ = state.Succeed(result)
	return submission{state: state}
}
