package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapsKnownKinds(t *testing.T) {
	t.Parallel()

	tests := map[Kind]int{
		KindInvalidInput: http.StatusBadRequest,
		KindValidation:   http.StatusUnprocessableEntity,
		KindForbidden:    http.StatusForbidden,
		KindNotFound:     http.StatusNotFound,
		KindTooLarge:     http.StatusRequestEntityTooLarge,
		KindUpstream:     http.StatusBadGateway,
		KindUnavailable:  http.StatusServiceUnavailable,
		KindUnknown:      http.StatusInternalServerError,
	}
	for kind, want := range tests {
		if got := HTTPStatus(E(kind, "x")); got != want {
			t.Fatalf("HTTPStatus(%s) = %d, want %d", kind, got, want)
		}
	}
}

func TestHTTPStatusDefaultsToInternalError(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(errors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", got, http.StatusInternalServerError)
	}
	if got := HTTPStatus(nil); got != http.StatusOK {
		t.Fatalf("HTTPStatus(nil) = %d, want %d", got, http.StatusOK)
	}
}

func TestErrorStringFallsBackToKindWhenMessageEmpty(t *testing.T) {
	t.Parallel()

	err := Error{Kind: KindForbidden}
	if got := err.Error(); got != string(KindForbidden) {
		t.Fatalf("Error() = %q, want %q", got, string(KindForbidden))
	}
}

func TestWrapKeepsCauseAndKey(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: refused")
	err := fmt.Errorf("heart: %w", Wrap(KindUnavailable, " assessment.error.connect ", cause))
	if !errors.Is(err, cause) {
		t.Fatal("wrapped cause lost")
	}
	if got := LocalizationKey(err); got != "assessment.error.connect" {
		t.Fatalf("LocalizationKey() = %q", got)
	}
	if got := KindOf(err); got != KindUnavailable {
		t.Fatalf("KindOf() = %q", got)
	}
	if got := LocalizationKey(errors.New("plain")); got != "" {
		t.Fatalf("LocalizationKey(plain) = %q", got)
	}
}
