package public

import (
	"strings"

	"github.com/aiml-healthguard/healthguard/internal/platform/icons"
	"github.com/aiml-healthguard/healthguard/internal/services/web/routepath"
	webtemplates "github.com/aiml-healthguard/healthguard/internal/services/web/templates"
)

const (
	DefaultHeartAppURL = "https://healthguardheart.streamlit.app/"
	DefaultBrainAppURL = "https://healthguardbrain.streamlit.app/"
	DefaultLungAppURL  = "https://healthguardlungs.streamlit.app/"
)

// DiagnosisLinks holds the external screening application URLs.
type DiagnosisLinks struct {
	Heart string
	Brain string
	Lung  string
}

func (l DiagnosisLinks) withDefaults() DiagnosisLinks {
	return DiagnosisLinks{
		Heart: orDefault(l.Heart, DefaultHeartAppURL),
		Brain: orDefault(l.Brain, DefaultBrainAppURL),
		Lung:  orDefault(l.Lung, DefaultLungAppURL),
	}
}

func orDefault(value string, fallback string) string {
	if value = strings.TrimSpace(value); value != "" {
		return value
	}
	return fallback
}

type service struct {
	links DiagnosisLinks
}

func newService(links DiagnosisLinks) service {
	return service{links: links.withDefaults()}
}

// landing builds the landing view. The modal shows until the session accepts
// it, and again whenever it is explicitly requested.
func (s service) landing(accepted bool, requested bool) webtemplates.LandingView {
	return webtemplates.LandingView{
		ShowDisclaimer: requested || !accepted,
		Accepted:       accepted,
		Assessments: []webtemplates.AssessmentCard{
			{Key: "heart", Icon: icons.Heart, Accent: "heart", Path: routepath.AssessHeart},
			{Key: "brain", Icon: icons.Brain, Accent: "brain", Path: routepath.AssessScan("brain")},
			{Key: "lung", Icon: icons.Lung, Accent: "lung", Path: routepath.AssessScan("lung")},
		},
		Diagnoses: []webtemplates.DiagnosisCard{
			{Key: "heart", Icon: icons.Heart, Accent: "heart", ExternalURL: s.links.Heart, Path: routepath.AssessHeart},
			{Key: "brain", Icon: icons.Brain, Accent: "brain", ExternalURL: s.links.Brain, Path: routepath.AssessScan("brain")},
			{Key: "lung", Icon: icons.Lung, Accent: "lung", ExternalURL: s.links.Lung, Path: routepath.AssessScan("lung")},
		},
	}
}

// startTarget is where "Start Analysis" leads.
func (service) startTarget(accepted bool) string {
	if accepted {
		return routepath.Diagnosis()
	}
	return routepath.RootWithDisclaimer()
}
