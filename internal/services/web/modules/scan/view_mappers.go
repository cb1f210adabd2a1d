package scan

import (
	"github.com/aiml-healthguard/healthguard/internal/services/web/assessment"
	webtemplates "github.com/aiml-healthguard/healthguard/internal/services/web/templates"
)

func scanView(kind scanKind, state *assessment.UploadState, errMessage string) webtemplates.ScanView {
	view := webtemplates.ScanView{
		Key:    kind.key,
		Icon:   kind.icon,
		Accent: kind.accent,
		Error:  errMessage,
	}
	if state == nil {
		return view
	}
	view.FileName = state.FileName()
	view.SubmitEnabled = state.SubmitEnabled()
	if preview, ok := state.Preview(); ok {
		view.Preview = &webtemplates.PreviewView{Src: preview.DataURI, Width: preview.Width, Height: preview.Height}
	}
	if result, ok := state.Result(); ok {
		view.Result = &webtemplates.ImageView{Label: result.Label, Confidence: result.Confidence}
	}
	return view
}
