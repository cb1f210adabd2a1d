package public

import (
	"net/http"

	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/httpx"
	"github.com/aiml-healthguard/healthguard/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleLanding)
	mux.HandleFunc(http.MethodGet+" "+routepath.About, h.handleAbout)
	mux.HandleFunc(http.MethodGet+" "+routepath.Start, h.handleStart)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(http.MethodPost+" "+routepath.DisclaimerAccept, h.handleAcceptDisclaimer)
	mux.HandleFunc(http.MethodGet+" "+routepath.DisclaimerAccept, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(routepath.Root, h.WriteNotFound)
}
