package public

import (
	"net/http"

	module "github.com/aiml-healthguard/healthguard/internal/services/web/module"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/publichandler"
	"github.com/aiml-healthguard/healthguard/internal/services/web/routepath"
)

// Module provides the landing, disclaimer, about and health routes.
type Module struct {
	links DiagnosisLinks
	base  publichandler.Base
}

// New returns a public module linking to the default screening apps.
func New() Module {
	return Module{}
}

// NewWithLinks returns a public module with explicit diagnosis links and
// handler dependencies.
func NewWithLinks(links DiagnosisLinks, base publichandler.Base) Module {
	return Module{links: links, base: base}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return "public" }

// Mount wires public routes under the root prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.links), m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
