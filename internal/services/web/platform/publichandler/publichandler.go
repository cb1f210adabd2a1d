// Package publichandler provides a shared base for web module handlers.
// It centralizes error handling, localization, and page rendering that would
// otherwise be duplicated across modules.
package publichandler

import (
	"net/http"

	"github.com/a-h/templ"
	log "github.com/sirupsen/logrus"

	apperrors "github.com/aiml-healthguard/healthguard/internal/services/web/platform/errors"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/httpx"
	webi18n "github.com/aiml-healthguard/healthguard/internal/services/web/platform/i18n"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/pagerender"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/requestmeta"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/weberror"
)

// Base provides shared error handling and page rendering for modules. Embed
// this in handler structs to get WritePage, WriteFragment, WriteNotFound and
// WriteError.
type Base struct {
	policy requestmeta.SchemePolicy
}

// Option configures a Base.
type Option func(*Base)

// WithSchemePolicy sets how the request scheme is derived for cookies.
func WithSchemePolicy(policy requestmeta.SchemePolicy) Option {
	return func(b *Base) { b.policy = policy }
}

// NewBase builds a handler base with the given options.
func NewBase(opts ...Option) Base {
	var b Base
	for _, o := range opts {
		o(&b)
	}
	return b
}

// SchemePolicy returns the configured scheme policy.
func (b Base) SchemePolicy() requestmeta.SchemePolicy {
	return b.policy
}

// Localize resolves the request printer and language tag.
func (Base) Localize(w http.ResponseWriter, r *http.Request) (webi18n.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r)
}

// WritePage renders body inside the site layout, or alone for HTMX requests.
func (Base) WritePage(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer, lang string, title string, statusCode int, body templ.Component) {
	err := pagerender.WritePage(w, r, loc, lang, pagerender.Page{Title: title, StatusCode: statusCode, Body: body})
	if err != nil {
		renderFailed(w, r, err)
	}
}

// WriteFragment renders a partial response.
func (Base) WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component) {
	if err := pagerender.WriteFragment(w, r, statusCode, fragment); err != nil {
		renderFailed(w, r, err)
	}
}

// WriteNotFound renders a localized 404 error page.
func (Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}

// WriteError renders a user-safe error response: error pages for not-found
// and server errors, plain-text status messages for everything else.
func (Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err)
}

// WriteRedirect writes an HTMX-aware redirect.
func (Base) WriteRedirect(w http.ResponseWriter, r *http.Request, location string) {
	httpx.WriteRedirect(w, r, location)
}

func renderFailed(w http.ResponseWriter, r *http.Request, err error) {
	log.WithError(err).WithField("request_id", httpx.RequestIDFrom(r)).Error("render page")
	http.Error(w, http.StatusText(apperrors.HTTPStatus(err)), http.StatusInternalServerError)
}
