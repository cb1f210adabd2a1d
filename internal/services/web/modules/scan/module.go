package scan

import (
	"net/http"

	module "github.com/aiml-healthguard/healthguard/internal/services/web/module"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/publichandler"
	"github.com/aiml-healthguard/healthguard/internal/services/web/routepath"
)

// Module provides the brain and lung image screening forms.
type Module struct {
	gateways       Gateways
	base           publichandler.Base
	maxUploadBytes int64
}

// New returns a scan module without model backends.
func New() Module {
	return Module{}
}

// NewWithGateways returns a scan module with explicit dependencies. A
// non-positive maxUploadBytes selects DefaultMaxUploadBytes.
func NewWithGateways(gateways Gateways, base publichandler.Base, maxUploadBytes int64) Module {
	return Module{gateways: gateways, base: base, maxUploadBytes: maxUploadBytes}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return "scan" }

// Healthy reports whether every scan kind has a model backend.
func (m Module) Healthy() bool {
	for _, gateway := range []ImageGateway{m.gateways.Brain, m.gateways.Lung} {
		if gateway == nil {
			return false
		}
		if _, unavailable := gateway.(unavailableGateway); unavailable {
			return false
		}
	}
	return true
}

// Mount wires scan routes under the assessment prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateways), m.base, m.maxUploadBytes))
	return module.Mount{Prefix: routepath.AssessPrefix, Handler: mux}, nil
}
