package assessment

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	// NotAvailable is shown when a response carries no probability or confidence.
	NotAvailable = "N/A"
	// UnknownLabel is shown when an image response carries no label.
	UnknownLabel = "Unknown"
	HighRisk     = "High Risk"
	LowRisk      = "Low Risk"
)

// ErrMalformedResponse reports a 2xx body that does not match any accepted shape.
var ErrMalformedResponse = errors.New("assessment: malformed model response")

// RiskLevel classifies a risk label for presentation.
type RiskLevel int

const (
	RiskOther RiskLevel = iota
	RiskHigh
	RiskLow
)

// LabelSource records which response key produced a label.
type LabelSource string

const (
	SourcePrediction LabelSource = "prediction"
	SourceRisk       LabelSource = "risk"
	SourceResult     LabelSource = "result"
	SourceClass      LabelSource = "class"
	SourceNone       LabelSource = ""
)

// RiskResult is the decoded structured-form response.
type RiskResult struct {
	Label       string
	Probability string
	Source      LabelSource
}

// Level derives the presentation class from the label text.
func (r RiskResult) Level() RiskLevel {
	label := strings.ToLower(r.Label)
	switch {
	case strings.Contains(label, "high"):
		return RiskHigh
	case strings.Contains(label, "low"):
		return RiskLow
	default:
		return RiskOther
	}
}

// ImageResult is the decoded image-form response.
type ImageResult struct {
	Label      string
	Confidence string
	Source     LabelSource
}

// DecodeRiskResponse accepts, in order: a "prediction" label, a "risk"
// label, or a binary "result" (1/true is high risk, 0/false low risk).
// Probability comes from "probability" then "confidence", else N/A.
func DecodeRiskResponse(body []byte) (RiskResult, error) {
	root, err := parseObject(body)
	if err != nil {
		return RiskResult{}, err
	}
	probability, err := firstText(root, "probability", "confidence")
	if err != nil {
		return RiskResult{}, err
	}
	if probability == "" {
		probability = NotAvailable
	}

	for _, source := range []LabelSource{SourcePrediction, SourceRisk} {
		label, err := firstText(root, string(source))
		if err != nil {
			return RiskResult{}, err
		}
		if label != "" {
			return RiskResult{Label: label, Probability: probability, Source: source}, nil
		}
	}

	// A body with no label source is rejected rather than read as low risk.
	label, err := binaryRisk(root.Get(string(SourceResult)))
	if err != nil {
		return RiskResult{}, err
	}
	return RiskResult{Label: label, Probability: probability, Source: SourceResult}, nil
}

// DecodeImageResponse accepts a "prediction" or "class" label, else Unknown,
// and a "confidence" or "probability" value, else N/A.
func DecodeImageResponse(body []byte) (ImageResult, error) {
	root, err := parseObject(body)
	if err != nil {
		return ImageResult{}, err
	}
	confidence, err := firstText(root, "confidence", "probability")
	if err != nil {
		return ImageResult{}, err
	}
	if confidence == "" {
		confidence = NotAvailable
	}
	for _, source := range []LabelSource{SourcePrediction, SourceClass} {
		label, err := firstText(root, string(source))
		if err != nil {
			return ImageResult{}, err
		}
		if label != "" {
			return ImageResult{Label: label, Confidence: confidence, Source: source}, nil
		}
	}
	return ImageResult{Label: UnknownLabel, Confidence: confidence, Source: SourceNone}, nil
}

func parseObject(body []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("%w: body is not JSON", ErrMalformedResponse)
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return gjson.Result{}, fmt.Errorf("%w: body is not a JSON object", ErrMalformedResponse)
	}
	return root, nil
}

// firstText returns the display text of the first present key. Missing,
// null and blank values are skipped; objects and arrays are rejected.
func firstText(root gjson.Result, keys ...string) (string, error) {
	for _, key := range keys {
		value := root.Get(key)
		text, err := displayText(key, value)
		if err != nil {
			return "", err
		}
		if text != "" {
			return text, nil
		}
	}
	return "", nil
}

func displayText(key string, value gjson.Result) (string, error) {
	if !value.Exists() {
		return "", nil
	}
	switch value.Type {
	case gjson.Null:
		return "", nil
	case gjson.String:
		return strings.TrimSpace(value.Str), nil
	case gjson.Number:
		return strconv.FormatFloat(value.Num, 'f', -1, 64), nil
	case gjson.True, gjson.False:
		return strconv.FormatBool(value.Bool()), nil
	default:
		return "", fmt.Errorf("%w: %q must be a scalar", ErrMalformedResponse, key)
	}
}

func binaryRisk(value gjson.Result) (string, error) {
	switch value.Type {
	case gjson.True:
		return HighRisk, nil
	case gjson.False:
		return LowRisk, nil
	case gjson.Number:
		switch value.Num {
		case 1:
			return HighRisk, nil
		case 0:
			return LowRisk, nil
		}
		return "", fmt.Errorf("%w: result %s is not 0 or 1", ErrMalformedResponse, value.Raw)
	default:
		return "", fmt.Errorf("%w: no prediction, risk or result", ErrMalformedResponse)
	}
}
