package heart

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/publichandler"
	"github.com/aiml-healthguard/healthguard/internal/services/web/routepath"
)

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(newService(nil), publichandler.NewBase()))
}

func TestRegisterRoutesPathAndMethodContracts(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(&fakeGateway{}), publichandler.NewBase()))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  string
	}{
		{name: "page", method: http.MethodGet, path: routepath.AssessHeart, wantStatus: http.StatusOK},
		{name: "page with slash", method: http.MethodGet, path: routepath.AssessHeartPrefix, wantStatus: http.StatusOK},
		{name: "submit empty", method: http.MethodPost, path: routepath.AssessHeart, wantStatus: http.StatusUnprocessableEntity},
		{name: "validate", method: http.MethodPost, path: routepath.AssessHeartCheck, wantStatus: http.StatusOK},
		{name: "validate get rejected", method: http.MethodGet, path: routepath.AssessHeartCheck, wantStatus: http.StatusMethodNotAllowed, wantAllow: http.MethodPost},
		{name: "unknown nested path", method: http.MethodGet, path: routepath.AssessHeartPrefix + "missing", wantStatus: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if tc.wantAllow != "" {
				if got := rr.Header().Get("Allow"); got != tc.wantAllow {
					t.Fatalf("Allow = %q, want %q", got, tc.wantAllow)
				}
			}
		})
	}
}
