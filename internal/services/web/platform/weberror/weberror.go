// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	apperrors "github.com/aiml-healthguard/healthguard/internal/services/web/platform/errors"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/httpx"
	webi18n "github.com/aiml-healthguard/healthguard/internal/services/web/platform/i18n"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/pagerender"
	webtemplates "github.com/aiml-healthguard/healthguard/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a localized error page for full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, lang := webi18n.ResolveLocalizer(w, r)
	page := pagerender.Page{
		Title:      webtemplates.ErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Body:       webtemplates.ErrorPage(webtemplates.ErrorView{StatusCode: statusCode}, loc),
	}
	if err := pagerender.WritePage(w, r, loc, lang, page); err != nil {
		log.WithError(err).WithField("request_id", httpx.RequestIDFrom(r)).Error("render error page")
		http.Error(w, PublicMessage(loc, err), statusCode)
	}
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		if statusCode >= http.StatusInternalServerError {
			log.WithError(err).WithField("request_id", httpx.RequestIDFrom(r)).Warn("module error")
		}
		WriteAppError(w, r, statusCode)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}
