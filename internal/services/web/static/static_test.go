package static

import (
	"io/fs"
	"strings"
	"testing"
)

func TestFSContainsAppAssets(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"app.css", "app.js"} {
		data, err := fs.ReadFile(FS, name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("%s is empty", name)
		}
	}
}

func TestAppScriptConfiguresErrorSwaps(t *testing.T) {
	t.Parallel()

	data, err := fs.ReadFile(FS, "app.js")
	if err != nil {
		t.Fatalf("read app.js: %v", err)
	}
	if !strings.Contains(string(data), "responseHandling") {
		t.Fatalf("app.js does not configure htmx response handling")
	}
}

func TestAppScriptRejectsNonImagesLocally(t *testing.T) {
	t.Parallel()

	data, err := fs.ReadFile(FS, "app.js")
	if err != nil {
		t.Fatalf("read app.js: %v", err)
	}
	script := string(data)
	// The localized rejection comes from the form, and a rejected file is
	// never submitted with an emptied input.
	if !strings.Contains(script, "form.dataset.imageError") {
		t.Fatalf("app.js does not render the form's image error")
	}
	if strings.Contains(script, `trigger(form, "submit")`) {
		t.Fatalf("app.js submits the form after clearing the file input")
	}
}
