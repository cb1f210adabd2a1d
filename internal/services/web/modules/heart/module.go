package heart

import (
	"net/http"

	module "github.com/aiml-healthguard/healthguard/internal/services/web/module"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/publichandler"
	"github.com/aiml-healthguard/healthguard/internal/services/web/routepath"
)

// Module provides the structured heart disease screening form.
type Module struct {
	gateway RiskGateway
	base    publichandler.Base
}

// New returns a heart module without a model backend.
func New() Module {
	return Module{}
}

// NewWithGateway returns a heart module with explicit dependencies.
func NewWithGateway(gateway RiskGateway, base publichandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return "heart" }

// Healthy reports whether the module has a model backend.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires heart routes under the heart assessment prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.base))
	return module.Mount{Prefix: routepath.AssessHeartPrefix, Handler: mux}, nil
}
