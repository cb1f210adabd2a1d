package templates

import "github.com/aiml-healthguard/healthguard/internal/platform/icons"

// aboutCard is one card of an about page section. Key selects the copy
// under the section's prefix.
type aboutCard struct {
	key    string
	icon   icons.ID
	accent string
}

var aboutModels = []aboutCard{
	{key: "heart", icon: icons.Heart, accent: "heart"},
	{key: "lung", icon: icons.Lung, accent: "lung"},
	{key: "brain", icon: icons.Brain, accent: "brain"},
}

var aboutExplainers = []string{"shap", "gradcam"}

var aboutArchitecture = []aboutCard{
	{key: "frontend", icon: icons.Layout},
	{key: "backend", icon: icons.Server},
}
