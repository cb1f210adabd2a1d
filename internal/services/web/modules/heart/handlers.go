package heart

import (
	"net/http"

	"github.com/aiml-healthguard/healthguard/internal/services/web/assessment"
	apperrors "github.com/aiml-healthguard/healthguard/internal/services/web/platform/errors"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/httpx"
	webi18n "github.com/aiml-healthguard/healthguard/internal/services/web/platform/i18n"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/publichandler"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/weberror"
	webtemplates "github.com/aiml-healthguard/healthguard/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
	service service
}

func newHandlers(s service, base publichandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.Localize(w, r)
	state := h.service.edit(nil)
	h.writeForm(w, r, loc, lang, http.StatusOK, heartView(state, nil, "", loc), true)
}

// handleValidate re-renders the submit control for the current values and
// empties any earlier result or error. It never contacts the model.
func (h handlers) handleValidate(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.Localize(w, r)
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "assessment.error.invalid", err))
		return
	}
	state := h.service.edit(assessment.ValuesFromForm(r.PostForm, h.service.fields))
	h.WriteFragment(w, r, http.StatusOK, webtemplates.HeartEdited(heartView(state, nil, "", loc), loc))
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.Localize(w, r)
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "assessment.error.invalid", err))
		return
	}
	result := h.service.submit(httpx.RequestContext(r), assessment.ValuesFromForm(r.PostForm, h.service.fields))
	status := http.StatusOK
	message := ""
	if result.err != nil {
		status = apperrors.HTTPStatus(result.err)
		message = weberror.PublicMessage(loc, result.err)
	}
	h.writeForm(w, r, loc, lang, status, heartView(result.state, result.invalid, message, loc), false)
}

// writeForm answers HTMX with the form fragment and browsers with the page.
func (h handlers) writeForm(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer, lang string, status int, view webtemplates.HeartView, page bool) {
	if !page && httpx.IsHTMXRequest(r) {
		h.WriteFragment(w, r, status, webtemplates.HeartForm(view, loc))
		return
	}
	h.WritePage(w, r, loc, lang, webtemplates.T(loc, "assessment.heart.page_title"), status, webtemplates.HeartPage(view, loc))
}
