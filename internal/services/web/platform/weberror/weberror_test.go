package weberror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	apperrors "github.com/aiml-healthguard/healthguard/internal/services/web/platform/errors"
)

func TestShouldRenderAppError(t *testing.T) {
	t.Parallel()

	tests := map[int]bool{
		http.StatusBadRequest:            false,
		http.StatusForbidden:             false,
		http.StatusNotFound:              true,
		http.StatusRequestEntityTooLarge: false,
		http.StatusInternalServerError:   true,
		http.StatusBadGateway:            true,
	}
	for status, want := range tests {
		if got := ShouldRenderAppError(status); got != want {
			t.Fatalf("ShouldRenderAppError(%d) = %v, want %v", status, got, want)
		}
	}
}

func TestPublicMessageUsesLocalizationKey(t *testing.T) {
	t.Parallel()

	loc := message.NewPrinter(language.AmericanEnglish)
	err := apperrors.EK(apperrors.KindUpstream, "assessment.error.server", "status 500")
	if got := PublicMessage(loc, err); got != "Model server error. Make sure Streamlit app is running." {
		t.Fatalf("PublicMessage() = %q", got)
	}
	if got := PublicMessage(loc, errors.New("raw internal detail")); got != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("PublicMessage(untyped) = %q", got)
	}
	if got := PublicMessage(loc, nil); got != "" {
		t.Fatalf("PublicMessage(nil) = %q", got)
	}
}

func TestWriteModuleErrorRendersErrorPageForNotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/assess/missing", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.E(apperrors.KindNotFound, "missing"))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `data-status="404"`) || !strings.Contains(body, "<!DOCTYPE html>") {
		t.Fatalf("body missing error page markers: %q", body)
	}
}

func TestWriteModuleErrorRendersFragmentForHTMX(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/assess/heart", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, errors.New("boom"))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	body := rr.Body.String()
	if strings.Contains(body, "<!DOCTYPE html>") || !strings.Contains(body, `data-status="500"`) {
		t.Fatalf("body = %q, want error fragment", body)
	}
	if strings.Contains(body, "boom") {
		t.Fatalf("body leaked internal error text: %q", body)
	}
}

func TestWriteModuleErrorWritesPlainTextForBadRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/assess/heart", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.E(apperrors.KindInvalidInput, "bad form"))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	body := rr.Body.String()
	if !strings.Contains(body, http.StatusText(http.StatusBadRequest)) {
		t.Fatalf("body = %q, want generic bad-request message", body)
	}
	if strings.Contains(body, "bad form") {
		t.Fatalf("body leaked internal error text: %q", body)
	}
}
