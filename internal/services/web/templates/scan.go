package templates

import "github.com/aiml-healthguard/healthguard/internal/platform/icons"

// ScanView carries one image assessment form. Key selects the
// "assessment.scan.<key>.*" copy.
type ScanView struct {
	Key           string
	Icon          icons.ID
	Accent        string
	FileName      string
	Preview       *PreviewView
	Result        *ImageView
	Error         string
	SubmitEnabled bool
}

// PreviewView is the thumbnail of the analysed image.
type PreviewView struct {
	Src    string
	Width  int
	Height int
}

// ImageView is a decoded image model response.
type ImageView struct {
	Label      string
	Confidence string
}

// ScanFormID returns the DOM id of a scan kind's uploader form.
func ScanFormID(key string) string { return "scan-" + key }

func scanOutcomeID(key string) string { return ScanFormID(key) + "-outcome" }

func scanKey(view ScanView, suffix string) string {
	return "assessment.scan." + view.Key + "." + suffix
}

func scanLabel(view ScanView, loc Localizer) string {
	return T(loc, scanKey(view, "label"))
}

func previewClass(hasPreview bool) string {
	if hasPreview {
		return "has-preview"
	}
	return ""
}
