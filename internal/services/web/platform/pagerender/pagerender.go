// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"

	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/httpx"
	webi18n "github.com/aiml-healthguard/healthguard/internal/services/web/platform/i18n"
	webtemplates "github.com/aiml-healthguard/healthguard/internal/services/web/templates"
)

// Page describes a module page response for both full-page and HTMX flows.
type Page struct {
	Title      string
	StatusCode int
	Body       templ.Component
}

// WritePage writes the page body inside the site layout. HTMX requests get
// the body alone.
func WritePage(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer, lang string, page Page) error {
	if w == nil {
		return nil
	}
	if httpx.IsHTMXRequest(r) {
		return WriteFragment(w, r, page.StatusCode, page.Body)
	}
	body := page.Body
	if body == nil {
		body = templ.NopComponent
	}

	path, query := "", ""
	if r != nil && r.URL != nil {
		path = r.URL.Path
		query = r.URL.RawQuery
	}
	layout := webtemplates.Layout(webtemplates.PageContext{
		Lang:         lang,
		Loc:          loc,
		CurrentPath:  path,
		CurrentQuery: query,
		Title:        page.Title,
		Languages:    webi18n.LanguageOptions(loc, lang, path, query),
	})

	var buf bytes.Buffer
	if err := layout.Render(templ.WithChildren(httpx.RequestContext(r), body), &buf); err != nil {
		return err
	}
	return httpx.WriteHTML(w, statusOrOK(page.StatusCode), buf.String())
}

// WriteFragment writes a component without the layout.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component) error {
	if w == nil {
		return nil
	}
	if fragment == nil {
		fragment = templ.NopComponent
	}
	var buf bytes.Buffer
	if err := fragment.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	return httpx.WriteHTML(w, statusOrOK(statusCode), buf.String())
}

func statusOrOK(statusCode int) int {
	if statusCode <= 0 {
		return http.StatusOK
	}
	return statusCode
}
