package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/requestmeta"
)

func TestRead(t *testing.T) {
	t.Parallel()

	if _, ok := Read(nil); ok {
		t.Fatalf("expected nil request to have no cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	if _, ok := Read(req); ok {
		t.Fatalf("expected missing cookie")
	}

	req.AddCookie(&http.Cookie{Name: Name, Value: "  accepted  "})
	value, ok := Read(req)
	if !ok {
		t.Fatalf("expected cookie to be present")
	}
	if value != AcceptedValue {
		t.Fatalf("value = %q, want %q", value, AcceptedValue)
	}
}

func TestAccepted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "missing", want: false},
		{name: "accepted", value: "accepted", want: true},
		{name: "other value", value: "maybe", want: false},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
		if tc.value != "" {
			req.AddCookie(&http.Cookie{Name: Name, Value: tc.value})
		}
		if got := Accepted(req); got != tc.want {
			t.Fatalf("%s: Accepted() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestWriteAcceptedIsSessionScoped(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteAccepted(rr, httptest.NewRequest(http.MethodPost, "http://example.com/disclaimer/accept", nil), requestmeta.SchemePolicy{})
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != Name || cookie.Value != AcceptedValue {
		t.Fatalf("cookie = %s=%s", cookie.Name, cookie.Value)
	}
	if cookie.MaxAge != 0 || !cookie.Expires.IsZero() {
		t.Fatalf("cookie must not persist beyond the browser session")
	}
	if !cookie.HttpOnly || cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie flags = httponly:%v samesite:%v", cookie.HttpOnly, cookie.SameSite)
	}
	if cookie.Secure {
		t.Fatalf("plain http request produced secure cookie")
	}
}

func TestWriteAcceptedSecureBehindTrustedProxy(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "http://example.com/disclaimer/accept", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rr := httptest.NewRecorder()
	WriteAccepted(rr, req, requestmeta.SchemePolicy{TrustForwardedProto: true})
	if cookies := rr.Result().Cookies(); len(cookies) != 1 || !cookies[0].Secure {
		t.Fatalf("expected secure cookie behind trusted proxy")
	}
}
