package templates

import (
	"github.com/aiml-healthguard/healthguard/internal/platform/icons"
	"github.com/aiml-healthguard/healthguard/internal/services/web/routepath"
)

// LandingView carries the landing page state.
type LandingView struct {
	ShowDisclaimer bool
	Accepted       bool
	Assessments    []AssessmentCard
	Diagnoses      []DiagnosisCard
}

// AssessmentCard is one entry of the health risk assessments grid.
// Key selects the "landing.assessments.<key>.*" copy.
type AssessmentCard struct {
	Key    string
	Icon   icons.ID
	Accent string
	Path   string
}

// DiagnosisCard is one entry of the diagnosis panel.
// Key selects the "landing.diagnosis.<key>.*" copy.
type DiagnosisCard struct {
	Key         string
	Icon        icons.ID
	Accent      string
	ExternalURL string
	Path        string
}

type featureCard struct {
	key  string
	icon icons.ID
}

var platformFeatures = []featureCard{
	{key: "detection", icon: icons.Detection},
	{key: "xai", icon: icons.Eye},
	{key: "privacy", icon: icons.ShieldCheck},
}

var disclaimerItems = []string{"1", "2", "3", "4"}

// heroStart scrolls to the panel once accepted; otherwise the server
// decides whether to show the disclaimer first.
func heroStart(accepted bool) string {
	if accepted {
		return "#" + routepath.DiagnosisAnchor
	}
	return routepath.Start
}
