package routepath

import (
	"net/url"
	"testing"
)

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		Root:             "/",
		Health:           "/up",
		About:            "/about",
		Start:            "/start",
		DisclaimerAccept: "/disclaimer/accept",
		AssessHeart:      "/assess/heart",
		AssessHeartCheck: "/assess/heart/validate",
	}
	for got, want := range tests {
		if got != want {
			t.Fatalf("route = %q, want %q", got, want)
		}
	}
}

func TestBuilders(t *testing.T) {
	t.Parallel()

	if got := Diagnosis(); got != "/#diagnosis" {
		t.Fatalf("Diagnosis() = %q", got)
	}
	if got := RootWithDisclaimer(); got != "/?disclaimer=show" {
		t.Fatalf("RootWithDisclaimer() = %q", got)
	}
	if got := AssessScan("brain"); got != "/assess/brain" {
		t.Fatalf("AssessScan(brain) = %q", got)
	}
	if got := AssessScanClearFor(" lung "); got != "/assess/lung/clear" {
		t.Fatalf("AssessScanClearFor(lung) = %q", got)
	}
	if got := AssessScan("a/b"); got != "/assess/a%2Fb" {
		t.Fatalf("AssessScan escapes segments, got %q", got)
	}
	if got := WithQuery(About, url.Values{"lang": {"pt-BR"}}); got != "/about?lang=pt-BR" {
		t.Fatalf("WithQuery() = %q", got)
	}
	if got := WithQuery(About, nil); got != About {
		t.Fatalf("WithQuery(nil) = %q", got)
	}
}
