package inference

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestParseBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "https://healthguardheart.streamlit.app/", want: "https://healthguardheart.streamlit.app"},
		{raw: " http://localhost:8501 ", want: "http://localhost:8501"},
		{raw: "", wantErr: true},
		{raw: "ftp://models.example", wantErr: true},
		{raw: "https://", wantErr: true},
		{raw: "::bad", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseBaseURL(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseBaseURL(%q) expected error", tc.raw)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseBaseURL(%q) = %q, %v; want %q", tc.raw, got, err, tc.want)
		}
	}
}

func TestPredictJSONPostsOneObjectToPredict(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	bodies := make(chan map[string]float64, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Method != http.MethodPost || r.URL.Path != "/predict" {
			t.Errorf("request = %s %s, want POST /predict", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("Content-Type = %q", ct)
		}
		var decoded map[string]float64
		if err := json.NewDecoder(r.Body).Decode(&decoded); err != nil {
			t.Errorf("decode body: %v", err)
		}
		bodies <- decoded
		_, _ = io.WriteString(w, `{"prediction":"High Risk","probability":"82%"}`)
	}))
	defer server.Close()

	client, err := New(Config{Name: ModelHeart, BaseURL: server.URL + "/"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	body, err := client.PredictJSON(context.Background(), map[string]float64{"age": 54, "oldpeak": 1.5})
	if err != nil {
		t.Fatalf("PredictJSON() error = %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("calls = %d, want 1", got)
	}
	gotBody := <-bodies
	if gotBody["age"] != 54 || gotBody["oldpeak"] != 1.5 || len(gotBody) != 2 {
		t.Fatalf("body = %v", gotBody)
	}
	if !strings.Contains(string(body), "High Risk") {
		t.Fatalf("body = %q", body)
	}
}

func TestPredictFileSendsMultipartFilePart(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		if header.Filename != "scan.png" || string(data) != "png-bytes" {
			t.Errorf("file = %q (%q)", header.Filename, data)
		}
		if got := header.Header.Get("Content-Type"); got != "image/png" {
			t.Errorf("part Content-Type = %q", got)
		}
		if len(r.MultipartForm.File) != 1 || len(r.MultipartForm.Value) != 0 {
			t.Errorf("multipart parts = %d files, %d values", len(r.MultipartForm.File), len(r.MultipartForm.Value))
		}
		_, _ = io.WriteString(w, `{"class":"Tumor","confidence":0.93}`)
	}))
	defer server.Close()

	client, err := New(Config{Name: ModelBrain, BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := client.PredictFile(context.Background(), File{Name: "scan.png", ContentType: "image/png", Data: []byte("png-bytes")}); err != nil {
		t.Fatalf("PredictFile() error = %v", err)
	}
}

func TestPredictReturnsServerStatusError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := New(Config{Name: ModelLung, BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	_, err = client.PredictJSON(context.Background(), map[string]float64{})
	if !errors.Is(err, ErrServerStatus) {
		t.Fatalf("err = %v, want ErrServerStatus", err)
	}
}

func TestPredictReturnsUnreachableOnTransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client, err := New(Config{Name: ModelHeart, BaseURL: baseURL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	_, err = client.PredictJSON(context.Background(), map[string]float64{"age": 1})
	if !errors.Is(err, ErrUnreachable) {
		t.Fatalf("err = %v, want ErrUnreachable", err)
	}
}

func TestPredictHonoursConfiguredTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client, err := New(Config{Name: ModelHeart, BaseURL: server.URL, Timeout: 50 * time.Millisecond})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	_, err = client.PredictJSON(context.Background(), map[string]float64{"age": 1})
	if !errors.Is(err, ErrUnreachable) {
		t.Fatalf("err = %v, want ErrUnreachable", err)
	}
}

func TestPredictFileRejectsEmptyFile(t *testing.T) {
	t.Parallel()

	client, err := New(Config{Name: ModelBrain, BaseURL: "http://127.0.0.1:1"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := client.PredictFile(context.Background(), File{Name: "empty.png"}); err == nil {
		t.Fatal("expected empty file error")
	}
}

func TestNewServicesBuildsAllModels(t *testing.T) {
	t.Parallel()

	services, err := NewServices(ServicesConfig{
		HeartURL: "https://healthguardheart.streamlit.app/",
		BrainURL: "https://healthguardbrain.streamlit.app/",
		LungURL:  "https://healthguardlungs.streamlit.app/",
	})
	if err != nil {
		t.Fatalf("NewServices() error = %v", err)
	}
	if services.Heart.Endpoint() != "https://healthguardheart.streamlit.app/predict" {
		t.Fatalf("heart endpoint = %q", services.Heart.Endpoint())
	}
	if services.Lung.Name() != ModelLung || services.Brain.Name() != ModelBrain {
		t.Fatalf("names = %q/%q", services.Brain.Name(), services.Lung.Name())
	}

	if _, err := NewServices(ServicesConfig{HeartURL: "https://a.example", BrainURL: "nope", LungURL: "https://c.example"}); err == nil {
		t.Fatal("expected invalid brain URL error")
	}
}
