package heart

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/aiml-healthguard/healthguard/internal/services/web/assessment"
	apperrors "github.com/aiml-healthguard/healthguard/internal/services/web/platform/errors"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/publichandler"
	"github.com/aiml-healthguard/healthguard/internal/services/web/routepath"
)

func serveWith(t *testing.T, gateway RiskGateway, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := NewWithGateway(gateway, publichandler.NewBase()).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

func postForm(path string, form url.Values, htmx bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return req
}

func TestPageRendersDisabledForm(t *testing.T) {
	t.Parallel()

	rr := serveWith(t, &fakeGateway{}, httptest.NewRequest(http.MethodGet, routepath.AssessHeart, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Fatalf("expected full page layout")
	}
	if !strings.Contains(body, `id="heart-form"`) {
		t.Fatalf("heart form missing")
	}
	if !strings.Contains(body, "13 remaining") {
		t.Fatalf("remaining hint missing: %s", body)
	}
	for _, field := range assessment.HeartFields() {
		if !strings.Contains(body, `name="`+field.Name+`"`) {
			t.Fatalf("field %q missing", field.Name)
		}
	}
}

func TestValidateRendersSubmitControl(t *testing.T) {
	t.Parallel()

	partial := completeForm()
	partial.Del("ca")

	tests := []struct {
		name        string
		form        url.Values
		wantEnabled bool
	}{
		{name: "incomplete", form: partial, wantEnabled: false},
		{name: "complete", form: completeForm(), wantEnabled: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			gateway := &fakeGateway{}
			rr := serveWith(t, gateway, postForm(routepath.AssessHeartCheck, tc.form, true))
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
			}
			body := rr.Body.String()
			if strings.Contains(body, "<html") {
				t.Fatalf("validate must return a fragment")
			}
			if !strings.Contains(body, `id="heart-submit"`) {
				t.Fatalf("submit control missing: %s", body)
			}
			disabled := strings.Contains(body, "disabled")
			if disabled == tc.wantEnabled {
				t.Fatalf("disabled = %v, want enabled %v", disabled, tc.wantEnabled)
			}
			if gateway.calls() != 0 {
				t.Fatalf("validate must not call the model")
			}
		})
	}
}

func TestValidateClearsPreviousOutcome(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{result: assessment.RiskResult{Label: "High Risk", Probability: "0.87"}}
	first := serveWith(t, gateway, postForm(routepath.AssessHeart, completeForm(), true))
	if !strings.Contains(first.Body.String(), `id="heart-result"`) {
		t.Fatalf("submit did not render a result: %s", first.Body.String())
	}

	edited := completeForm()
	edited.Set("age", "62")
	rr := serveWith(t, gateway, postForm(routepath.AssessHeartCheck, edited, true))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `<div id="heart-outcome" class="form-outcome" aria-live="polite" hx-swap-oob="true"></div>`) {
		t.Fatalf("validate must empty the outcome region out of band: %s", body)
	}
	for _, stale := range []string{`id="heart-result"`, "High Risk", `role="alert"`} {
		if strings.Contains(body, stale) {
			t.Fatalf("validate response carries stale %q", stale)
		}
	}
	if gateway.calls() != 1 {
		t.Fatalf("gateway calls = %d, want 1", gateway.calls())
	}
}

func TestSubmitRendersResultFragment(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{result: assessment.RiskResult{Label: "High Risk", Probability: "0.87"}}
	rr := serveWith(t, gateway, postForm(routepath.AssessHeart, completeForm(), true))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if strings.Contains(body, "<html") {
		t.Fatalf("htmx submit must return a fragment")
	}
	for _, want := range []string{`id="heart-result"`, `data-level="high"`, "High Risk", "0.87", `value="246"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q: %s", want, body)
		}
	}
	if gateway.calls() != 1 {
		t.Fatalf("gateway calls = %d, want 1", gateway.calls())
	}
}

func TestSubmitWithoutHTMXRendersFullPage(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{result: assessment.RiskResult{Label: "Low Risk", Probability: "N/A"}}
	rr := serveWith(t, gateway, postForm(routepath.AssessHeart, completeForm(), false))
	body := rr.Body.String()
	if !strings.Contains(body, "<!DOCTYPE html>") || !strings.Contains(body, `data-level="low"`) {
		t.Fatalf("expected full page with result: %s", body)
	}
}

func TestSubmitRendersInlineErrors(t *testing.T) {
	t.Parallel()

	invalid := completeForm()
	invalid.Set("trestbps", "high")
	incomplete := completeForm()
	incomplete.Del("age")

	tests := []struct {
		name       string
		gateway    *fakeGateway
		form       url.Values
		wantStatus int
		wantText   string
	}{
		{
			name:       "server error",
			gateway:    &fakeGateway{err: apperrors.EK(apperrors.KindUpstream, "assessment.error.server", "status 500")},
			form:       completeForm(),
			wantStatus: http.StatusBadGateway,
			wantText:   "Model server error. Make sure Streamlit app is running.",
		},
		{
			name:       "connect error",
			gateway:    &fakeGateway{err: apperrors.EK(apperrors.KindUnavailable, "assessment.error.connect", "dial")},
			form:       completeForm(),
			wantStatus: http.StatusServiceUnavailable,
			wantText:   "Failed to connect to model server. Please ensure Streamlit is running.",
		},
		{
			name:       "invalid value",
			gateway:    &fakeGateway{},
			form:       invalid,
			wantStatus: http.StatusBadRequest,
			wantText:   "Check the highlighted fields.",
		},
		{
			name:       "incomplete",
			gateway:    &fakeGateway{},
			form:       incomplete,
			wantStatus: http.StatusUnprocessableEntity,
			wantText:   "Complete every field before running the analysis.",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := serveWith(t, tc.gateway, postForm(routepath.AssessHeart, tc.form, true))
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			body := rr.Body.String()
			if !strings.Contains(body, `role="alert"`) || !strings.Contains(body, tc.wantText) {
				t.Fatalf("inline error missing %q: %s", tc.wantText, body)
			}
			if !strings.Contains(body, `id="heart-form"`) {
				t.Fatalf("form should be re-rendered with the error")
			}
		})
	}
}

func TestSubmitMarksInvalidField(t *testing.T) {
	t.Parallel()

	form := completeForm()
	form.Set("chol", "lots")
	rr := serveWith(t, &fakeGateway{}, postForm(routepath.AssessHeart, form, true))
	if !strings.Contains(rr.Body.String(), "Enter a valid value.") {
		t.Fatalf("field error missing: %s", rr.Body.String())
	}
}
