// Package errorreport forwards unexpected failures to Sentry when configured.
package errorreport

import (
	"fmt"
	"net/http"
	"strings"

	raven "github.com/getsentry/raven-go"
)

// Reporter receives unexpected failures worth alerting on.
type Reporter interface {
	Report(r *http.Request, err error, tags map[string]string)
	Close()
}

// Nop discards every report.
type Nop struct{}

// Report does nothing.
func (Nop) Report(*http.Request, error, map[string]string) {}

// Close does nothing.
func (Nop) Close() {}

type sentryReporter struct {
	client *raven.Client
}

// New returns a Sentry-backed reporter, or Nop when dsn is empty.
func New(dsn string, tags map[string]string) (Reporter, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return Nop{}, nil
	}
	client, err := raven.NewClient(dsn, tags)
	if err != nil {
		return nil, fmt.Errorf("init sentry client: %w", err)
	}
	return sentryReporter{client: client}, nil
}

func (s sentryReporter) Report(r *http.Request, err error, tags map[string]string) {
	if s.client == nil || err == nil {
		return
	}
	var interfaces []raven.Interface
	if r != nil {
		interfaces = append(interfaces, raven.NewHttp(r))
	}
	s.client.CaptureError(err, tags, interfaces...)
}

func (s sentryReporter) Close() {
	if s.client == nil {
		return
	}
	s.client.Wait()
	s.client.Close()
}
