// Package web parses web command flags and launches the screening site.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/aiml-healthguard/healthguard/internal/platform/cmd"
	"github.com/aiml-healthguard/healthguard/internal/platform/errorreport"
	"github.com/aiml-healthguard/healthguard/internal/platform/logging"
	"github.com/aiml-healthguard/healthguard/internal/services/web"
	"github.com/aiml-healthguard/healthguard/internal/services/web/integration/inference"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/requestmeta"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"HEALTHGUARD_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	HealthAddr          string        `env:"HEALTHGUARD_WEB_HEALTH_ADDR"`
	HeartServiceURL     string        `env:"HEALTHGUARD_HEART_SERVICE_URL" envDefault:"https://healthguardheart.streamlit.app"`
	BrainServiceURL     string        `env:"HEALTHGUARD_BRAIN_SERVICE_URL" envDefault:"https://healthguardbrain.streamlit.app"`
	LungServiceURL      string        `env:"HEALTHGUARD_LUNG_SERVICE_URL" envDefault:"https://healthguardlungs.streamlit.app"`
	InferenceTimeout    time.Duration `env:"HEALTHGUARD_INFERENCE_TIMEOUT" envDefault:"0s"`
	MaxUploadBytes      int64         `env:"HEALTHGUARD_MAX_UPLOAD_BYTES" envDefault:"10485760"`
	TrustForwardedProto bool          `env:"HEALTHGUARD_TRUST_FORWARDED_PROTO" envDefault:"false"`
	LogLevel            string        `env:"HEALTHGUARD_LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"HEALTHGUARD_LOG_FORMAT" envDefault:"text"`
	SentryDSN           string        `env:"HEALTHGUARD_SENTRY_DSN"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.HealthAddr, "health-addr", cfg.HealthAddr, "gRPC health listen address (disabled when empty)")
	fs.StringVar(&cfg.HeartServiceURL, "heart-service-url", cfg.HeartServiceURL, "Heart disease model base URL")
	fs.StringVar(&cfg.BrainServiceURL, "brain-service-url", cfg.BrainServiceURL, "Brain tumour model base URL")
	fs.StringVar(&cfg.LungServiceURL, "lung-service-url", cfg.LungServiceURL, "Lung disease model base URL")
	fs.DurationVar(&cfg.InferenceTimeout, "inference-timeout", cfg.InferenceTimeout, "Outbound model call timeout (0 disables)")
	fs.Int64Var(&cfg.MaxUploadBytes, "max-upload-bytes", cfg.MaxUploadBytes, "Maximum request body size in bytes")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Honour X-Forwarded-Proto when deriving the request scheme")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.SentryDSN, "sentry-dsn", cfg.SentryDSN, "Sentry DSN for panic reports")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server inside the telemetry entrypoint.
func Run(ctx context.Context, cfg Config) error {
	if err := logging.Configure(logging.Options{Level: cfg.LogLevel, Format: logging.Format(cfg.LogFormat)}); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	reporter, err := errorreport.New(cfg.SentryDSN, map[string]string{"service": entrypoint.ServiceWeb})
	if err != nil {
		return err
	}
	defer reporter.Close()

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(serverConfig(cfg, reporter))
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

func serverConfig(cfg Config, reporter errorreport.Reporter) web.Config {
	return web.Config{
		HTTPAddr:   cfg.HTTPAddr,
		HealthAddr: cfg.HealthAddr,
		Inference: inference.ServicesConfig{
			HeartURL: cfg.HeartServiceURL,
			BrainURL: cfg.BrainServiceURL,
			LungURL:  cfg.LungServiceURL,
			Timeout:  cfg.InferenceTimeout,
		},
		MaxUploadBytes:      cfg.MaxUploadBytes,
		RequestSchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		Reporter:            reporter,
	}
}
