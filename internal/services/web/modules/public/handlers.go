package public

import (
	"io"
	"net/http"

	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/publichandler"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/sessioncookie"
	"github.com/aiml-healthguard/healthguard/internal/services/web/routepath"
	webtemplates "github.com/aiml-healthguard/healthguard/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
	service service
}

func newHandlers(s service, base publichandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.Localize(w, r)
	requested := r.URL.Query().Get(routepath.DisclaimerQuery) == routepath.DisclaimerShow
	view := h.service.landing(sessioncookie.Accepted(r), requested)
	h.WritePage(w, r, loc, lang, webtemplates.T(loc, "landing.title"), http.StatusOK, webtemplates.LandingPage(view, loc))
}

func (h handlers) handleAbout(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.Localize(w, r)
	h.WritePage(w, r, loc, lang, webtemplates.T(loc, "about.title"), http.StatusOK, webtemplates.AboutPage(loc))
}

func (h handlers) handleStart(w http.ResponseWriter, r *http.Request) {
	h.WriteRedirect(w, r, h.service.startTarget(sessioncookie.Accepted(r)))
}

func (h handlers) handleAcceptDisclaimer(w http.ResponseWriter, r *http.Request) {
	sessioncookie.WriteAccepted(w, r, h.SchemePolicy())
	h.WriteRedirect(w, r, routepath.Diagnosis())
}

func (handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}
