// Package inference calls the externally hosted model services.
//
// Every model exposes POST <base>/predict. The heart model takes a JSON
// object; the image models take multipart form data with one "file" part.
// Calls are made once with no retry; the only deadline is the caller's
// context plus the optional configured timeout.
package inference

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	predictPath   = "/predict"
	fileFieldName = "file"
	tracerName    = "github.com/aiml-healthguard/healthguard/internal/services/web/integration/inference"
)

var (
	// ErrServerStatus reports a non-2xx response from a model server.
	ErrServerStatus = errors.New("inference: model server returned a non-success status")
	// ErrUnreachable reports a transport failure before any response arrived.
	ErrUnreachable = errors.New("inference: model server unreachable")
)

// Config describes one model service.
type Config struct {
	// Name identifies the model in logs, spans and health reports.
	Name    string
	BaseURL string
	// Timeout bounds one call; zero leaves only the caller's context.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// File is one multipart upload.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Client posts prediction requests to one model service.
type Client struct {
	name     string
	endpoint string
	http     *resty.Client
}

// ParseBaseURL validates a service base URL and strips trailing slashes.
func ParseBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.New("base URL is required")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("parse base URL %q: %w", trimmed, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("base URL %q must use http or https", trimmed)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("base URL %q must include a host", trimmed)
	}
	return strings.TrimRight(trimmed, "/"), nil
}

// New builds a client for one model service.
func New(cfg Config) (*Client, error) {
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		return nil, errors.New("model name is required")
	}
	base, err := ParseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	var rc *resty.Client
	if cfg.HTTPClient != nil {
		rc = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rc = resty.New()
	}
	rc.SetRetryCount(0)
	rc.SetLogger(log.WithField("model", name))
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}

	return &Client{name: name, endpoint: base + predictPath, http: rc}, nil
}

// Name returns the model name.
func (c *Client) Name() string { return c.name }

// Endpoint returns the absolute predict URL.
func (c *Client) Endpoint() string { return c.endpoint }

// PredictJSON posts payload as a JSON object and returns the raw 2xx body.
func (c *Client) PredictJSON(ctx context.Context, payload any) ([]byte, error) {
	return c.post(ctx, "json", func(req *resty.Request) {
		req.SetHeader("Content-Type", "application/json").SetBody(payload)
	})
}

// PredictFile posts file as multipart form data under the "file" field.
func (c *Client) PredictFile(ctx context.Context, file File) ([]byte, error) {
	if len(file.Data) == 0 {
		return nil, errors.New("inference: file is empty")
	}
	name := strings.TrimSpace(file.Name)
	if name == "" {
		name = "upload"
	}
	contentType := strings.TrimSpace(file.ContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return c.post(ctx, "multipart", func(req *resty.Request) {
		req.SetMultipartField(fileFieldName, name, contentType, bytes.NewReader(file.Data))
	})
}

func (c *Client) post(ctx context.Context, encoding string, build func(*resty.Request)) ([]byte, error) {
	if c == nil || c.http == nil {
		return nil, fmt.Errorf("%w: client is not configured", ErrUnreachable)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "inference.predict",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("healthguard.model", c.name),
			attribute.String("healthguard.encoding", encoding),
			attribute.String("url.full", c.endpoint),
		),
	)
	defer span.End()

	req := c.http.R().SetContext(ctx)
	build(req)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	started := time.Now()
	fields := log.Fields{"model": c.name, "encoding": encoding}
	resp, err := req.Post(c.endpoint)
	fields["duration"] = time.Since(started).String()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		log.WithFields(fields).WithError(err).Warn("model server unreachable")
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreachable, c.name, err)
	}

	status := resp.StatusCode()
	fields["status"] = status
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if !resp.IsSuccess() {
		span.SetStatus(codes.Error, http.StatusText(status))
		log.WithFields(fields).Warn("model server returned an error status")
		return nil, fmt.Errorf("%w: %s responded %d", ErrServerStatus, c.name, status)
	}

	log.WithFields(fields).Info("model prediction")
	return resp.Body(), nil
}
