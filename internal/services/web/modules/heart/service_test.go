package heart

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/aiml-healthguard/healthguard/internal/services/web/assessment"
	apperrors "github.com/aiml-healthguard/healthguard/internal/services/web/platform/errors"
)

func TestServiceSubmitSendsOnePayload(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{result: assessment.RiskResult{Label: "High Risk", Probability: "0.87"}}
	result := newService(gateway).submit(context.Background(), completeValues())
	if result.err != nil {
		t.Fatalf("submit() error = %v", result.err)
	}
	if gateway.calls() != 1 {
		t.Fatalf("gateway calls = %d, want 1", gateway.calls())
	}
	payload := gateway.payloads[0]
	if len(payload) != 13 {
		t.Fatalf("payload has %d fields, want 13", len(payload))
	}
	if payload["oldpeak"] != 1.0 || payload["age"] != 54 {
		t.Fatalf("payload = %v", payload)
	}
	if got := result.state.Status(); got != assessment.StatusSucceeded {
		t.Fatalf("status = %v, want succeeded", got)
	}
	if got, ok := result.state.Result(); !ok || got.Label != "High Risk" {
		t.Fatalf("result = %+v, %v", got, ok)
	}
}

func TestServiceSubmitRejectsWithoutCallingModel(t *testing.T) {
	t.Parallel()

	incomplete := completeValues()
	delete(incomplete, "thal")
	invalid := completeValues()
	invalid["age"] = "fifty"
	outOfTable := completeValues()
	outOfTable["cp"] = "7"

	tests := []struct {
		name        string
		values      assessment.Values
		wantKind    apperrors.Kind
		wantInvalid string
	}{
		{name: "incomplete", values: incomplete, wantKind: apperrors.KindValidation},
		{name: "unparseable number", values: invalid, wantKind: apperrors.KindInvalidInput, wantInvalid: "age"},
		{name: "unknown option", values: outOfTable, wantKind: apperrors.KindInvalidInput, wantInvalid: "cp"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gateway := &fakeGateway{}
			result := newService(gateway).submit(context.Background(), tc.values)
			if got := apperrors.KindOf(result.err); got != tc.wantKind {
				t.Fatalf("kind = %q, want %q", got, tc.wantKind)
			}
			if gateway.calls() != 0 {
				t.Fatalf("gateway calls = %d, want 0", gateway.calls())
			}
			if tc.wantInvalid != "" && !result.invalid.Has(tc.wantInvalid) {
				t.Fatalf("invalid fields = %+v, want %q", result.invalid, tc.wantInvalid)
			}
		})
	}
}

func TestServiceSubmitRecordsGatewayFailure(t *testing.T) {
	t.Parallel()

	failure := apperrors.EK(apperrors.KindUpstream, "assessment.error.server", "boom")
	result := newService(&fakeGateway{err: failure}).submit(context.Background(), completeValues())
	if !errors.Is(result.err, failure) {
		t.Fatalf("err = %v, want %v", result.err, failure)
	}
	if got := result.state.Status(); got != assessment.StatusFailed {
		t.Fatalf("status = %v, want failed", got)
	}
	if !result.state.SubmitEnabled() {
		t.Fatalf("form should stay resubmittable after a failure")
	}
	if got := apperrors.HTTPStatus(result.err); got != http.StatusBadGateway {
		t.Fatalf("HTTPStatus = %d, want %d", got, http.StatusBadGateway)
	}
}

func TestNewServiceDefaultsToUnavailableGateway(t *testing.T) {
	t.Parallel()

	result := newService(nil).submit(context.Background(), completeValues())
	if got := apperrors.KindOf(result.err); got != apperrors.KindUnavailable {
		t.Fatalf("kind = %q, want %q", got, apperrors.KindUnavailable)
	}
}
