package scan

import "github.com/aiml-healthguard/healthguard/internal/platform/icons"

// Scan kinds served by this module.
const (
	KindBrain = "brain"
	KindLung  = "lung"
)

// Gateways holds one image gateway per scan kind.
type Gateways struct {
	Brain ImageGateway
	Lung  ImageGateway
}

// scanKind is one row of the image assessment table. Copy lives under
// "assessment.scan.<key>.*".
type scanKind struct {
	key     string
	icon    icons.ID
	accent  string
	gateway ImageGateway
}

func kindTable(gateways Gateways) map[string]scanKind {
	return map[string]scanKind{
		KindBrain: {key: KindBrain, icon: icons.Brain, accent: "brain", gateway: orUnavailable(gateways.Brain)},
		KindLung:  {key: KindLung, icon: icons.Lung, accent: "lung", gateway: orUnavailable(gateways.Lung)},
	}
}

func orUnavailable(gateway ImageGateway) ImageGateway {
	if gateway == nil {
		return unavailableGateway{}
	}
	return gateway
}
