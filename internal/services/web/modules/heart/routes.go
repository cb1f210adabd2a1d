package heart

import (
	"net/http"

	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/httpx"
	"github.com/aiml-healthguard/healthguard/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AssessHeart, h.handlePage)
	mux.HandleFunc(http.MethodPost+" "+routepath.AssessHeart, h.handleSubmit)
	mux.HandleFunc(http.MethodGet+" "+routepath.AssessHeartPrefix+"{$}", h.handlePage)
	mux.HandleFunc(http.MethodPost+" "+routepath.AssessHeartCheck, h.handleValidate)
	mux.HandleFunc(http.MethodGet+" "+routepath.AssessHeartCheck, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(routepath.AssessHeartRest, h.WriteNotFound)
}
