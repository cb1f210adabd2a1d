// Package sessioncookie centralizes the browser-session cookie that records
// disclaimer acceptance.
package sessioncookie

import (
	"net/http"
	"strings"

	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/requestmeta"
)

const (
	// Name is the disclaimer acceptance cookie name.
	Name = "hg_disclaimer"
	// AcceptedValue marks an accepted disclaimer.
	AcceptedValue = "accepted"
)

// Read returns the trimmed cookie value when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Accepted reports whether the browser session accepted the disclaimer.
func Accepted(r *http.Request) bool {
	value, ok := Read(r)
	return ok && value == AcceptedValue
}

// WriteAccepted records acceptance for the lifetime of the browser session.
func WriteAccepted(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    AcceptedValue,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, policy),
		SameSite: http.SameSiteLaxMode,
	})
}
