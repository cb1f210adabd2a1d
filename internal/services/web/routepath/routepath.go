// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root              = "/"
	Health            = "/up"
	About             = "/about"
	Start             = "/start"
	DisclaimerAccept  = "/disclaimer/accept"
	StaticPrefix      = "/static/"
	DiagnosisAnchor   = "diagnosis"
	DisclaimerQuery   = "disclaimer"
	DisclaimerShow    = "show"
	AssessPrefix      = "/assess/"
	AssessHeart       = "/assess/heart"
	AssessHeartPrefix = AssessHeart + "/"
	AssessHeartRest   = AssessHeartPrefix + "{rest...}"
	AssessHeartCheck  = "/assess/heart/validate"
	AssessScanPattern = AssessPrefix + "{kind}"
	AssessScanClear   = AssessPrefix + "{kind}/clear"
	AssessRestPattern = AssessPrefix + "{rest...}"
)

// Diagnosis returns the landing page anchored at the diagnosis panel.
func Diagnosis() string {
	return Root + "#" + DiagnosisAnchor
}

// RootWithDisclaimer returns the landing page with the disclaimer modal open.
func RootWithDisclaimer() string {
	return Root + "?" + DisclaimerQuery + "=" + DisclaimerShow
}

// AssessScan returns the image assessment route for a scan kind.
func AssessScan(kind string) string {
	return AssessPrefix + escapeSegment(kind)
}

// AssessScanClearFor returns the clear route for a scan kind.
func AssessScanClearFor(kind string) string {
	return AssessScan(kind) + "/clear"
}

// WithQuery appends an encoded query to path.
func WithQuery(path string, values url.Values) string {
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
