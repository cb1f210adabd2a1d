// Package modules defines web module registry helpers.
package modules

import (
	"github.com/aiml-healthguard/healthguard/internal/services/web/integration/inference"
	module "github.com/aiml-healthguard/healthguard/internal/services/web/module"
	"github.com/aiml-healthguard/healthguard/internal/services/web/modules/public"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/publichandler"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the model clients and shared config required to
// compose the web module registry. Gateways are built here so module Mount
// functions never construct clients themselves.
type Dependencies struct {
	// Inference holds one client per model; nil clients render the
	// connectivity error on submit.
	Inference inference.Services

	// Links are the external screening application URLs.
	Links public.DiagnosisLinks

	// Base is shared by every module's handlers.
	Base publichandler.Base

	MaxUploadBytes int64
}
