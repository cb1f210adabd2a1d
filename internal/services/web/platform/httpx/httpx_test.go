package httpx

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	apperrors "github.com/aiml-healthguard/healthguard/internal/services/web/platform/errors"
)

func TestChainAppliesMiddlewareInOrder(t *testing.T) {
	t.Parallel()

	called := ""
	mw1 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called += "1"
			next.ServeHTTP(w, r)
		})
	}
	mw2 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called += "2"
			next.ServeHTTP(w, r)
		})
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called += "h"
		w.WriteHeader(http.StatusNoContent)
	}), mw1, nil, mw2)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if called != "12h" {
		t.Fatalf("call order = %q, want %q", called, "12h")
	}
}

func TestMethodNotAllowedWritesAllowHeaderAndStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	MethodNotAllowed(http.MethodPost).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/disclaimer/accept", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != http.MethodPost {
		t.Fatalf("Allow = %q, want %q", got, http.MethodPost)
	}
}

func TestRequestIDAddsUUIDWhenMissing(t *testing.T) {
	t.Parallel()

	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r)
		w.WriteHeader(http.StatusNoContent)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	got := rr.Header().Get("X-Request-ID")
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("X-Request-ID = %q is not a uuid: %v", got, err)
	}
	if seen != got {
		t.Fatalf("handler saw %q, response echoed %q", seen, got)
	}
}

func TestRequestIDPreservesIncomingHeader(t *testing.T) {
	t.Parallel()

	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("X-Request-ID"); got != "req-123" {
		t.Fatalf("X-Request-ID = %q, want %q", got, "req-123")
	}
}

func TestRequestIDFromFallsBackToDash(t *testing.T) {
	t.Parallel()

	if got := RequestIDFrom(nil); got != "-" {
		t.Fatalf("RequestIDFrom(nil) = %q, want -", got)
	}
	if got := RequestIDFrom(httptest.NewRequest(http.MethodGet, "/", nil)); got != "-" {
		t.Fatalf("RequestIDFrom(no header) = %q, want -", got)
	}
}

type recordingReporter struct {
	mu   sync.Mutex
	errs []error
	tags []map[string]string
}

func (r *recordingReporter) Report(_ *http.Request, err error, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
	r.tags = append(r.tags, tags)
}

func (*recordingReporter) Close() {}

func TestRecoverPanicReturnsInternalServerErrorAndReports(t *testing.T) {
	t.Parallel()

	reporter := &recordingReporter{}
	h := RecoverPanic(reporter)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	req := httptest.NewRequest(http.MethodGet, "/assess/heart", nil)
	req.Header.Set("X-Request-ID", "req-panic")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if len(reporter.errs) != 1 {
		t.Fatalf("reported %d errors, want 1", len(reporter.errs))
	}
	if !strings.Contains(reporter.errs[0].Error(), "boom") {
		t.Fatalf("reported error = %v, want panic value", reporter.errs[0])
	}
	if reporter.tags[0]["request_id"] != "req-panic" {
		t.Fatalf("request_id tag = %q, want req-panic", reporter.tags[0]["request_id"])
	}
}

func TestRecoverPanicPassesThroughWithNilReporter(t *testing.T) {
	t.Parallel()

	h := RecoverPanic(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}
}

func TestLimitBodyRejectsOversizedReads(t *testing.T) {
	t.Parallel()

	var readErr error
	h := LimitBody(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/assess/lung", strings.NewReader("too long")))

	var maxErr *http.MaxBytesError
	if !errors.As(readErr, &maxErr) {
		t.Fatalf("read error = %v, want *http.MaxBytesError", readErr)
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WriteJSON(rr, http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != `{"status":"ok"}` {
		t.Fatalf("body = %q", got)
	}
}

func TestWriteErrorMapsKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "validation", err: apperrors.E(apperrors.KindValidation, "bad"), want: http.StatusUnprocessableEntity},
		{name: "upstream", err: apperrors.E(apperrors.KindUpstream, "down"), want: http.StatusBadGateway},
		{name: "plain", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			WriteError(rr, tc.err)
			if rr.Code != tc.want {
				t.Fatalf("status = %d, want %d", rr.Code, tc.want)
			}
		})
	}
}

func TestIsHTMXRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if IsHTMXRequest(req) {
		t.Fatal("plain request reported as htmx")
	}
	req.Header.Set("HX-Request", "true")
	if !IsHTMXRequest(req) {
		t.Fatal("htmx request not detected")
	}
	if IsHTMXRequest(nil) {
		t.Fatal("nil request reported as htmx")
	}
}

func TestWriteHTML(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WriteHTML(rr, http.StatusUnprocessableEntity, "<p>x</p>"); err != nil {
		t.Fatalf("WriteHTML() error = %v", err)
	}
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}
	if err := WriteHTML(nil, http.StatusOK, ""); err == nil {
		t.Fatal("WriteHTML(nil) expected error")
	}
}

func TestSetHXRetarget(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	SetHXRetarget(rr, "#scan-lung", "outerHTML")
	if got := rr.Header().Get("HX-Retarget"); got != "#scan-lung" {
		t.Fatalf("HX-Retarget = %q", got)
	}
	if got := rr.Header().Get("HX-Reswap"); got != "outerHTML" {
		t.Fatalf("HX-Reswap = %q", got)
	}
	SetHXRetarget(nil, "#x", "innerHTML")
}

func TestWriteRedirect(t *testing.T) {
	t.Parallel()

	t.Run("browser", func(t *testing.T) {
		t.Parallel()
		rr := httptest.NewRecorder()
		WriteRedirect(rr, httptest.NewRequest(http.MethodPost, "/disclaimer/accept", nil), "/#diagnosis")
		if rr.Code != http.StatusSeeOther {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
		}
		if got := rr.Header().Get("Location"); got != "/#diagnosis" {
			t.Fatalf("Location = %q", got)
		}
	})
	t.Run("htmx", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/disclaimer/accept", nil)
		req.Header.Set("HX-Request", "true")
		rr := httptest.NewRecorder()
		WriteRedirect(rr, req, "/#diagnosis")
		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
		}
		if got := rr.Header().Get("HX-Redirect"); got != "/#diagnosis" {
			t.Fatalf("HX-Redirect = %q", got)
		}
	})
}

func TestRequestContextNilFallback(t *testing.T) {
	t.Parallel()

	if RequestContext(nil) == nil {
		t.Fatal("RequestContext(nil) returned nil")
	}
}
