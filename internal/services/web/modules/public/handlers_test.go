package public

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/publichandler"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/sessioncookie"
	"github.com/aiml-healthguard/healthguard/internal/services/web/routepath"
)

func serve(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := New().Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

func acceptedRequest(method string, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: sessioncookie.AcceptedValue})
	return req
}

func TestLandingShowsDisclaimerUntilAccepted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       *http.Request
		wantModal bool
	}{
		{name: "first visit", req: httptest.NewRequest(http.MethodGet, routepath.Root, nil), wantModal: true},
		{name: "accepted", req: acceptedRequest(http.MethodGet, routepath.Root), wantModal: false},
		{name: "accepted but requested", req: acceptedRequest(http.MethodGet, routepath.RootWithDisclaimer()), wantModal: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := serve(t, tc.req)
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
			}
			body := rr.Body.String()
			if got := strings.Contains(body, `id="disclaimer"`); got != tc.wantModal {
				t.Fatalf("modal rendered = %v, want %v", got, tc.wantModal)
			}
			if !strings.Contains(body, `id="diagnosis"`) {
				t.Fatalf("diagnosis panel missing")
			}
		})
	}
}

func TestLandingRendersDiagnosisLinks(t *testing.T) {
	t.Parallel()

	rr := serve(t, acceptedRequest(http.MethodGet, routepath.Root))
	body := rr.Body.String()
	for _, link := range []string{DefaultHeartAppURL, DefaultBrainAppURL, DefaultLungAppURL} {
		if !strings.Contains(body, `href="`+link+`"`) {
			t.Fatalf("body missing link %q", link)
		}
	}
}

func TestLandingUsesConfiguredLinks(t *testing.T) {
	t.Parallel()

	m := NewWithLinks(DiagnosisLinks{Heart: "https://heart.example.test/"}, publichandler.NewBase())
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, acceptedRequest(http.MethodGet, routepath.Root))
	body := rr.Body.String()
	if !strings.Contains(body, `href="https://heart.example.test/"`) {
		t.Fatalf("configured heart link missing")
	}
	if !strings.Contains(body, `href="`+DefaultLungAppURL+`"`) {
		t.Fatalf("default lung link missing")
	}
}

func TestAcceptDisclaimerSetsSessionCookieAndRedirects(t *testing.T) {
	t.Parallel()

	rr := serve(t, httptest.NewRequest(http.MethodPost, routepath.DisclaimerAccept, nil))
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != "/#diagnosis" {
		t.Fatalf("Location = %q, want %q", got, "/#diagnosis")
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != sessioncookie.Name || cookies[0].Value != sessioncookie.AcceptedValue {
		t.Fatalf("cookies = %v", cookies)
	}
}

func TestAcceptDisclaimerUsesHXRedirectForHTMX(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, routepath.DisclaimerAccept, nil)
	req.Header.Set("HX-Request", "true")
	rr := serve(t, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("HX-Redirect"); got != "/#diagnosis" {
		t.Fatalf("HX-Redirect = %q", got)
	}
}

func TestStartRedirectFollowsAcceptance(t *testing.T) {
	t.Parallel()

	rr := serve(t, httptest.NewRequest(http.MethodGet, routepath.Start, nil))
	if got := rr.Header().Get("Location"); got != "/?disclaimer=show" {
		t.Fatalf("Location (not accepted) = %q", got)
	}
	rr = serve(t, acceptedRequest(http.MethodGet, routepath.Start))
	if got := rr.Header().Get("Location"); got != "/#diagnosis" {
		t.Fatalf("Location (accepted) = %q", got)
	}
}

func TestAboutRendersLocalizedPage(t *testing.T) {
	t.Parallel()

	rr := serve(t, httptest.NewRequest(http.MethodGet, routepath.About+"?lang=pt-BR", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `lang="pt-BR"`) {
		t.Fatalf("document language not pt-BR")
	}
	if !strings.Contains(rr.Header().Get("Set-Cookie"), "hg_lang=pt-BR") {
		t.Fatalf("language choice not persisted")
	}
}

func TestHealthReturnsOK(t *testing.T) {
	t.Parallel()

	rr := serve(t, httptest.NewRequest(http.MethodGet, routepath.Health, nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("health = %d %q", rr.Code, rr.Body.String())
	}
}

func TestUnknownPathRendersNotFoundPage(t *testing.T) {
	t.Parallel()

	rr := serve(t, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), "Page not found") {
		t.Fatalf("body missing not-found copy")
	}
}
