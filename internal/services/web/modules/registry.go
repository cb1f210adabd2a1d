package modules

import (
	"github.com/aiml-healthguard/healthguard/internal/services/web/modules/heart"
	"github.com/aiml-healthguard/healthguard/internal/services/web/modules/public"
	"github.com/aiml-healthguard/healthguard/internal/services/web/modules/scan"
)

// DefaultModules returns every web module in mount order.
func DefaultModules(deps Dependencies) []Module {
	return []Module{
		public.NewWithLinks(deps.Links, deps.Base),
		heart.NewWithGateway(heart.NewInferenceGateway(deps.Inference.Heart), deps.Base),
		scan.NewWithGateways(scan.Gateways{
			Brain: scan.NewInferenceGateway(deps.Inference.Brain),
			Lung:  scan.NewInferenceGateway(deps.Inference.Lung),
		}, deps.Base, deps.MaxUploadBytes),
	}
}
