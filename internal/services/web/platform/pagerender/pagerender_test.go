package pagerender

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func textComponent(markup string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)
		return err
	})
}

func englishPrinter() *message.Printer {
	return message.NewPrinter(language.AmericanEnglish)
}

func TestWritePageRendersHTMXFragmentWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/assess/heart", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()

	err := WritePage(rr, req, englishPrinter(), "en-US", Page{
		Title:      "Heart",
		StatusCode: http.StatusBadGateway,
		Body:       textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadGateway)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="fragment-root"`) {
		t.Fatalf("body missing fragment marker: %q", body)
	}
	if strings.Contains(strings.ToLower(body), "<!doctype html") {
		t.Fatalf("expected htmx fragment without full document wrapper")
	}
}

func TestWritePageRendersFullDocument(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/about?lang=en-US", nil)
	rr := httptest.NewRecorder()

	err := WritePage(rr, req, englishPrinter(), "en-US", Page{
		Title: "About · HealthGuard",
		Body:  textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q", got)
	}
	body := rr.Body.String()
	for _, marker := range []string{"<!DOCTYPE html>", `id="fragment-root"`, "<title>About · HealthGuard</title>", `hreflang="pt-BR"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}
}

func TestWriteFragmentPropagatesRenderError(t *testing.T) {
	t.Parallel()

	failing := templ.ComponentFunc(func(context.Context, io.Writer) error {
		return errors.New("boom")
	})
	rr := httptest.NewRecorder()
	err := WriteFragment(rr, httptest.NewRequest(http.MethodGet, "/", nil), 0, failing)
	if err == nil {
		t.Fatalf("WriteFragment() error = nil, want error")
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("partial body written: %q", rr.Body.String())
	}
}

func TestWriteFragmentDefaultsToOK(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WriteFragment(rr, nil, 0, nil); err != nil {
		t.Fatalf("WriteFragment() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
}
