package heart

import (
	"context"
	"net/url"
	"sync"

	"github.com/aiml-healthguard/healthguard/internal/services/web/assessment"
)

type fakeGateway struct {
	mu       sync.Mutex
	result   assessment.RiskResult
	err      error
	payloads []map[string]float64
}

func (f *fakeGateway) PredictRisk(_ context.Context, payload map[string]float64) (assessment.RiskResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payloads = append(f.payloads, payload)
	return f.result, f.err
}

func (f *fakeGateway) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.payloads)
}

// completeForm is one valid heart submission.
func completeForm() url.Values {
	return url.Values{
		"age":      {"54"},
		"sex":      {"1"},
		"cp":       {"0"},
		"trestbps": {"130"},
		"chol":     {"246"},
		"fbs":      {"0"},
		"restecg":  {"1"},
		"thalach":  {"150"},
		"exang":    {"0"},
		"oldpeak":  {"1.0"},
		"slope":    {"2"},
		"ca":       {"0"},
		"thal":     {"2"},
	}
}

func completeValues() assessment.Values {
	return assessment.ValuesFromForm(completeForm(), assessment.HeartFields())
}
