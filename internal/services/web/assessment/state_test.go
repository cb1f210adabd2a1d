package assessment

import (
	"errors"
	"testing"
)

func TestFormStateTransitions(t *testing.T) {
	t.Parallel()

	state := NewFormState(HeartFields())
	if state.Status() != StatusIdle || state.SubmitEnabled() {
		t.Fatalf("new state = %v enabled=%v", state.Status(), state.SubmitEnabled())
	}

	partial := completeHeartValues()
	partial["thal"] = ""
	state.Edit(partial)
	if state.Status() != StatusValidating {
		t.Fatalf("status = %v, want validating", state.Status())
	}
	if state.SubmitEnabled() {
		t.Fatal("submit enabled with an empty field")
	}
	if _, err := state.Submit(); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("Submit() err = %v, want ErrIncomplete", err)
	}

	state.Edit(completeHeartValues())
	if !state.SubmitEnabled() {
		t.Fatal("submit disabled with complete values")
	}
	payload, err := state.Submit()
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if len(payload) != 13 {
		t.Fatalf("len(payload) = %d", len(payload))
	}
	if state.Status() != StatusSubmitting || state.SubmitEnabled() {
		t.Fatalf("status = %v enabled=%v, want submitting/disabled", state.Status(), state.SubmitEnabled())
	}
	if _, err := state.Submit(); !errors.Is(err, ErrInFlight) {
		t.Fatalf("second Submit() err = %v, want ErrInFlight", err)
	}

	if err := state.Succeed(RiskResult{Label: HighRisk, Probability: "82%"}); err != nil {
		t.Fatalf("Succeed() error = %v", err)
	}
	result, ok := state.Result()
	if !ok || result.Label != HighRisk || state.Err() != nil {
		t.Fatalf("result = %+v ok=%v err=%v", result, ok, state.Err())
	}

	state.Edit(completeHeartValues())
	if _, ok := state.Result(); ok {
		t.Fatal("result survived an edit")
	}
}

func TestFormStateFailureIsResubmittable(t *testing.T) {
	t.Parallel()

	state := NewFormState(HeartFields())
	state.Edit(completeHeartValues())
	if _, err := state.Submit(); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	boom := errors.New("boom")
	if err := state.Fail(boom); err != nil {
		t.Fatalf("Fail() error = %v", err)
	}
	if state.Status() != StatusFailed || !errors.Is(state.Err(), boom) {
		t.Fatalf("status = %v err = %v", state.Status(), state.Err())
	}
	if _, ok := state.Result(); ok {
		t.Fatal("failed state carries a result")
	}
	if !state.SubmitEnabled() {
		t.Fatal("failed form must stay resubmittable")
	}
}

func TestLifecycleRejectsOutcomeWithoutSubmit(t *testing.T) {
	t.Parallel()

	state := NewFormState(HeartFields())
	if err := state.Succeed(RiskResult{}); !errors.Is(err, ErrNotSubmitting) {
		t.Fatalf("Succeed() err = %v, want ErrNotSubmitting", err)
	}
	if err := state.Fail(errors.New("x")); !errors.Is(err, ErrNotSubmitting) {
		t.Fatalf("Fail() err = %v, want ErrNotSubmitting", err)
	}
}

func TestStatusString(t *testing.T) {
	t.Parallel()

	for status, want := range map[Status]string{
		StatusIdle: "idle", StatusValidating: "validating", StatusSubmitting: "submitting",
		StatusSucceeded: "succeeded", StatusFailed: "failed", Status(99): "unknown",
	} {
		if got := status.String(); got != want {
			t.Fatalf("Status(%d).String() = %q, want %q", status, got, want)
		}
	}
}
