package public

import "testing"

func TestNewServiceFillsDefaultLinks(t *testing.T) {
	t.Parallel()

	svc := newService(DiagnosisLinks{Brain: "  https://brain.example.test/  "})
	if svc.links.Heart != DefaultHeartAppURL {
		t.Fatalf("heart = %q", svc.links.Heart)
	}
	if svc.links.Brain != "https://brain.example.test/" {
		t.Fatalf("brain = %q", svc.links.Brain)
	}
	if svc.links.Lung != DefaultLungAppURL {
		t.Fatalf("lung = %q", svc.links.Lung)
	}
}

func TestLandingDisclaimerVisibility(t *testing.T) {
	t.Parallel()

	svc := newService(DiagnosisLinks{})
	tests := []struct {
		accepted  bool
		requested bool
		want      bool
	}{
		{accepted: false, requested: false, want: true},
		{accepted: false, requested: true, want: true},
		{accepted: true, requested: false, want: false},
		{accepted: true, requested: true, want: true},
	}
	for _, tc := range tests {
		view := svc.landing(tc.accepted, tc.requested)
		if view.ShowDisclaimer != tc.want {
			t.Fatalf("landing(%v, %v).ShowDisclaimer = %v, want %v", tc.accepted, tc.requested, view.ShowDisclaimer, tc.want)
		}
		if view.Accepted != tc.accepted {
			t.Fatalf("Accepted = %v, want %v", view.Accepted, tc.accepted)
		}
	}
}

func TestLandingListsThreeDiagnoses(t *testing.T) {
	t.Parallel()

	view := newService(DiagnosisLinks{}).landing(true, false)
	if len(view.Diagnoses) != 3 || len(view.Assessments) != 3 {
		t.Fatalf("diagnoses = %d, assessments = %d", len(view.Diagnoses), len(view.Assessments))
	}
	want := []string{DefaultHeartAppURL, DefaultBrainAppURL, DefaultLungAppURL}
	for i, card := range view.Diagnoses {
		if card.ExternalURL != want[i] {
			t.Fatalf("diagnosis %d url = %q, want %q", i, card.ExternalURL, want[i])
		}
	}
}

func TestStartTarget(t *testing.T) {
	t.Parallel()

	svc := newService(DiagnosisLinks{})
	if got := svc.startTarget(false); got != "/?disclaimer=show" {
		t.Fatalf("startTarget(false) = %q", got)
	}
	if got := svc.startTarget(true); got != "/#diagnosis" {
		t.Fatalf("startTarget(true) = %q", got)
	}
}
