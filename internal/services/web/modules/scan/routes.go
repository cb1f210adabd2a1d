package scan

import (
	"net/http"

	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/httpx"
	"github.com/aiml-healthguard/healthguard/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AssessScanPattern, h.handlePage)
	mux.HandleFunc(http.MethodPost+" "+routepath.AssessScanPattern, h.handleAnalyze)
	mux.HandleFunc(http.MethodPost+" "+routepath.AssessScanClear, h.handleClear)
	mux.HandleFunc(http.MethodGet+" "+routepath.AssessScanClear, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(routepath.AssessRestPattern, h.WriteNotFound)
}
