package scan

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aiml-healthguard/healthguard/internal/services/web/assessment"
	apperrors "github.com/aiml-healthguard/healthguard/internal/services/web/platform/errors"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/publichandler"
	"github.com/aiml-healthguard/healthguard/internal/services/web/routepath"
)

func serveWith(t *testing.T, m Module, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

func withGateways(brain *fakeGateway, lung *fakeGateway) Module {
	return NewWithGateways(Gateways{Brain: brain, Lung: lung}, publichandler.NewBase(), 0)
}

func TestPageRendersEmptyUploader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind  string
		label string
	}{
		{kind: KindBrain, label: "MRI Scan"},
		{kind: KindLung, label: "Chest X-Ray"},
	}
	for _, tc := range tests {
		t.Run(tc.kind, func(t *testing.T) {
			t.Parallel()
			rr := serveWith(t, withGateways(&fakeGateway{}, &fakeGateway{}), httptest.NewRequest(http.MethodGet, routepath.AssessScan(tc.kind), nil))
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
			}
			body := rr.Body.String()
			for _, want := range []string{"<!DOCTYPE html>", `id="scan-` + tc.kind + `"`, `name="file"`, "Upload " + tc.label} {
				if !strings.Contains(body, want) {
					t.Fatalf("body missing %q", want)
				}
			}
			if strings.Contains(body, `id="scan-result"`) || strings.Contains(body, `role="alert"`) {
				t.Fatalf("empty uploader must not show a result or error")
			}
		})
	}
}

func TestAnalyzeRendersPreviewAndResult(t *testing.T) {
	t.Parallel()

	brain := &fakeGateway{result: assessment.ImageResult{Label: "Meningioma", Confidence: "0.88"}}
	req := multipartRequest(t, routepath.AssessScan(KindBrain), "mri.png", "image/png", pngBytes(t, 16, 12))
	req.Header.Set("HX-Request", "true")

	rr := serveWith(t, withGateways(brain, &fakeGateway{}), req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
	body := rr.Body.String()
	if strings.Contains(body, "<html") {
		t.Fatalf("htmx analyze must return a fragment")
	}
	for _, want := range []string{`role="status"`, "Meningioma", "0.88"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q: %s", want, body)
		}
	}
	if strings.Contains(body, `type="file"`) || strings.Contains(body, "data:image") {
		t.Fatalf("accepted analyze must only replace the outcome region: %s", body)
	}
	if got := rr.Header().Get("HX-Retarget"); got != "" {
		t.Fatalf("HX-Retarget = %q, want none", got)
	}
	if brain.calls() != 1 {
		t.Fatalf("brain calls = %d, want 1", brain.calls())
	}
}

func TestAnalyzeRendersInlineErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        func(t *testing.T) *http.Request
		gateway      *fakeGateway
		wantStatus   int
		wantText     string
		wantCalls    int
		wantRetarget string
	}{
		{
			name: "not an image",
			req: func(t *testing.T) *http.Request {
				return multipartRequest(t, routepath.AssessScan(KindLung), "notes.txt", "text/plain", []byte("plain text"))
			},
			gateway:    &fakeGateway{},
			wantStatus:   http.StatusBadRequest,
			wantText:     "Please upload a valid image file.",
			wantRetarget: "#scan-lung",
		},
		{
			name: "no file",
			req: func(t *testing.T) *http.Request {
				return multipartRequest(t, routepath.AssessScan(KindLung), "", "", nil)
			},
			gateway:    &fakeGateway{},
			wantStatus:   http.StatusUnprocessableEntity,
			wantText:     "Select an image before running the analysis.",
			wantRetarget: "#scan-lung",
		},
		{
			name: "model unreachable",
			req: func(t *testing.T) *http.Request {
				return multipartRequest(t, routepath.AssessScan(KindLung), "xray.png", "image/png", pngBytes(t, 4, 4))
			},
			gateway:    &fakeGateway{err: apperrors.EK(apperrors.KindUnavailable, "assessment.error.connect", "dial tcp")},
			wantStatus: http.StatusServiceUnavailable,
			wantText:   "Failed to connect to model server. Please ensure Streamlit is running.",
			wantCalls:  1,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := tc.req(t)
			req.Header.Set("HX-Request", "true")
			rr := serveWith(t, withGateways(&fakeGateway{}, tc.gateway), req)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			body := rr.Body.String()
			if !strings.Contains(body, `role="alert"`) || !strings.Contains(body, tc.wantText) {
				t.Fatalf("inline error missing %q: %s", tc.wantText, body)
			}
			if tc.gateway.calls() != tc.wantCalls {
				t.Fatalf("gateway calls = %d, want %d", tc.gateway.calls(), tc.wantCalls)
			}
			if got := rr.Header().Get("HX-Retarget"); got != tc.wantRetarget {
				t.Fatalf("HX-Retarget = %q, want %q", got, tc.wantRetarget)
			}
			// Only rejected uploads replace the file input.
			if hasInput := strings.Contains(body, `type="file"`); hasInput != (tc.wantRetarget != "") {
				t.Fatalf("file input present = %v, want %v", hasInput, tc.wantRetarget != "")
			}
		})
	}
}

func TestAnalyzeRetryAfterModelFailure(t *testing.T) {
	t.Parallel()

	brain := &fakeGateway{err: apperrors.EK(apperrors.KindUpstream, "assessment.error.server", "status 500")}
	m := withGateways(brain, &fakeGateway{})
	data := pngBytes(t, 8, 8)
	send := func() *httptest.ResponseRecorder {
		req := multipartRequest(t, routepath.AssessScan(KindBrain), "mri.png", "image/png", data)
		req.Header.Set("HX-Request", "true")
		return serveWith(t, m, req)
	}

	failed := send()
	if failed.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", failed.Code, http.StatusBadGateway)
	}
	body := failed.Body.String()
	if !strings.Contains(body, `role="alert"`) {
		t.Fatalf("model error missing: %s", body)
	}
	// The form keeps its file input, so the same file can be sent again.
	if strings.Contains(body, `type="file"`) || failed.Header().Get("HX-Retarget") != "" {
		t.Fatalf("failed analyze must leave the chosen file in place: %s", body)
	}

	brain.mu.Lock()
	brain.err = nil
	brain.result = assessment.ImageResult{Label: "Glioma", Confidence: "0.71"}
	brain.mu.Unlock()

	retried := send()
	if retried.Code != http.StatusOK {
		t.Fatalf("retry status = %d, want %d: %s", retried.Code, http.StatusOK, retried.Body.String())
	}
	body = retried.Body.String()
	if !strings.Contains(body, "Glioma") || strings.Contains(body, `role="alert"`) {
		t.Fatalf("retry must replace the error with the result: %s", body)
	}
	if brain.calls() != 2 {
		t.Fatalf("brain calls = %d, want 2", brain.calls())
	}
}

func TestAnalyzeWithoutHTMXDisablesResubmit(t *testing.T) {
	t.Parallel()

	brain := &fakeGateway{result: assessment.ImageResult{Label: "No Tumor", Confidence: "0.95"}}
	req := multipartRequest(t, routepath.AssessScan(KindBrain), "mri.png", "image/png", pngBytes(t, 6, 6))
	rr := serveWith(t, withGateways(brain, &fakeGateway{}), req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{"<!DOCTYPE html>", `src="data:image/jpeg;base64,`, "No Tumor"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q", want)
		}
	}
	if !strings.Contains(body, `type="submit" class="btn btn-primary btn-block" disabled`) {
		t.Fatalf("submit must be disabled once the page reloads without the file: %s", body)
	}
}

func TestAnalyzeRejectsOversizedUpload(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{}
	m := NewWithGateways(Gateways{Brain: gateway, Lung: gateway}, publichandler.NewBase(), 1024)
	req := multipartRequest(t, routepath.AssessScan(KindBrain), "big.png", "image/png", bytes.Repeat([]byte{0x89}, 4096))
	req.Header.Set("HX-Request", "true")

	rr := serveWith(t, m, req)
	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusRequestEntityTooLarge)
	}
	if body := rr.Body.String(); !strings.Contains(body, "The limit is 1.0 KiB.") {
		t.Fatalf("too large message missing: %s", body)
	}
	if gateway.calls() != 0 {
		t.Fatalf("oversized upload must not reach the model")
	}
}

func TestClearReturnsEmptyUploader(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, routepath.AssessScanClearFor(KindBrain), nil)
	req.Header.Set("HX-Request", "true")
	rr := serveWith(t, withGateways(&fakeGateway{}, &fakeGateway{}), req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="scan-brain"`) {
		t.Fatalf("uploader missing: %s", body)
	}
	if strings.Contains(body, "data:image") || strings.Contains(body, `role="alert"`) {
		t.Fatalf("cleared uploader must be empty: %s", body)
	}
}

func TestClearWithoutHTMXRedirectsToPage(t *testing.T) {
	t.Parallel()

	rr := serveWith(t, withGateways(&fakeGateway{}, &fakeGateway{}), httptest.NewRequest(http.MethodPost, routepath.AssessScanClearFor(KindLung), nil))
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != routepath.AssessScan(KindLung) {
		t.Fatalf("Location = %q", got)
	}
}
