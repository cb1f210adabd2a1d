package templates

import (
	"net/http"
)

// ErrorView carries a full-page error.
type ErrorView struct {
	StatusCode int
	Message    string
}

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	return errorHeading(statusCode, loc) + " · " + T(loc, "core.brand")
}

func errorHeading(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, "core.error.not_found.title")
	}
	return T(loc, "core.error.server.title")
}

// errorMessage prefers the view's message over the generic status copy.
func errorMessage(view ErrorView, loc Localizer) string {
	if view.Message != "" {
		return view.Message
	}
	if normalizeErrorStatus(view.StatusCode) == http.StatusNotFound {
		return T(loc, "core.error.not_found.body")
	}
	return T(loc, "core.error.server.body")
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
