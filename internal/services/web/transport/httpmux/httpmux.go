package httpmux

import (
	"io/fs"
	"net/http"
	"strings"

	routepath "github.com/aiml-healthguard/healthguard/internal/services/web/routepath"
)

// MountStatic wires the shared static route into the root mux.
func MountStatic(rootMux *http.ServeMux, staticFS fs.FS, withStaticMime func(http.Handler) http.Handler) {
	if rootMux == nil || staticFS == nil {
		return
	}
	staticHandler := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(staticFS)))
	if withStaticMime != nil {
		staticHandler = withStaticMime(staticHandler)
	}
	rootMux.Handle(routepath.StaticPrefix, staticHandler)
}

// MountPrefix wires handler under prefix and, for non-root prefixes, under
// the same path without its trailing slash so "/assess/heart" does not
// redirect.
func MountPrefix(rootMux *http.ServeMux, prefix string, handler http.Handler) {
	if rootMux == nil || handler == nil {
		return
	}
	rootMux.Handle(prefix, handler)
	if alias := SlashlessAlias(prefix); alias != "" {
		rootMux.Handle(alias, handler)
	}
}

// SlashlessAlias returns prefix without its trailing slash, or "" for the
// root prefix and for prefixes that are not subtrees.
func SlashlessAlias(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == routepath.Root || !strings.HasSuffix(prefix, "/") {
		return ""
	}
	return strings.TrimSuffix(prefix, "/")
}
