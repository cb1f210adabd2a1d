// Package web owns the browser-facing HealthGuard screening site.
//
// It renders the landing, about and assessment pages, and forwards each
// assessment submission to the matching externally hosted model service as
// a single outbound request.
package web
