package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/aiml-healthguard/healthguard/internal/platform/errorreport"
	platformgrpc "github.com/aiml-healthguard/healthguard/internal/platform/grpc"
	"github.com/aiml-healthguard/healthguard/internal/platform/timeouts"
	"github.com/aiml-healthguard/healthguard/internal/services/web/app"
	"github.com/aiml-healthguard/healthguard/internal/services/web/integration/inference"
	module "github.com/aiml-healthguard/healthguard/internal/services/web/module"
	"github.com/aiml-healthguard/healthguard/internal/services/web/modules"
	"github.com/aiml-healthguard/healthguard/internal/services/web/modules/public"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/httpx"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/observability"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/publichandler"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/requestmeta"
	"github.com/aiml-healthguard/healthguard/internal/services/web/static"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// HealthAddr enables the gRPC health listener when set.
	HealthAddr string
	Inference  inference.ServicesConfig
	// MaxUploadBytes caps request bodies, uploads included.
	MaxUploadBytes      int64
	RequestSchemePolicy requestmeta.SchemePolicy
	// Reporter receives recovered panics. Nil disables reporting.
	Reporter errorreport.Reporter
	// Logger receives access logs. Nil uses the standard logger.
	Logger log.FieldLogger
}

// Server hosts the web handler and the optional health listener.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	health     *platformgrpc.HealthServer
	modules    []module.Module
}

// NewServer builds a configured web server. Model base URLs are validated
// here so a bad deployment fails at startup rather than on first submit.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, mods, err := NewHandler(config)
	if err != nil {
		return nil, err
	}

	var health *platformgrpc.HealthServer
	if addr := strings.TrimSpace(config.HealthAddr); addr != "" {
		health, err = platformgrpc.NewHealthServer(addr, inference.ModelHeart, inference.ModelBrain, inference.ModelLung)
		if err != nil {
			return nil, fmt.Errorf("start health server: %w", err)
		}
	}

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		health:  health,
		modules: mods,
	}, nil
}

// NewHandler composes the root handler and returns the mounted modules.
func NewHandler(config Config) (http.Handler, []module.Module, error) {
	services, err := inference.NewServices(config.Inference)
	if err != nil {
		return nil, nil, err
	}
	base := publichandler.NewBase(publichandler.WithSchemePolicy(config.RequestSchemePolicy))
	mods := modules.DefaultModules(modules.Dependencies{
		Inference: services,
		Links: public.DiagnosisLinks{
			Heart: config.Inference.HeartURL,
			Brain: config.Inference.BrainURL,
			Lung:  config.Inference.LungURL,
		},
		Base:           base,
		MaxUploadBytes: config.MaxUploadBytes,
	})

	root, err := app.BuildRootHandler(app.Config{
		Modules:             mods,
		StaticFS:            static.FS,
		RequestSchemePolicy: config.RequestSchemePolicy,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("build handler: %w", err)
	}
	handler := httpx.Chain(root,
		httpx.RequestID(),
		observability.RequestLogger(config.Logger),
		httpx.RecoverPanic(config.Reporter),
		httpx.LimitBody(config.MaxUploadBytes),
	)
	return handler, mods, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, health turns NOT_SERVING first, then in-flight requests
// are drained within a bounded shutdown.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	healthErr := make(chan error, 1)
	if s.health != nil {
		s.reportModelHealth(true)
		go func() {
			healthErr <- s.health.Serve(ctx)
		}()
	}

	serveErr := make(chan error, 1)
	log.WithField("addr", s.httpAddr).Info("web listening")
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.reportModelHealth(false)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-healthErr:
		_ = s.httpServer.Close()
		if err != nil {
			return err
		}
		return errors.New("health server stopped")
	case err := <-serveErr:
		s.reportModelHealth(false)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// reportModelHealth maps module health onto the per-model health services.
func (s *Server) reportModelHealth(running bool) {
	if s.health == nil {
		return
	}
	heart, scan := false, false
	for _, m := range s.modules {
		reporter, ok := m.(module.HealthReporter)
		if !ok {
			continue
		}
		switch m.ID() {
		case "heart":
			heart = reporter.Healthy()
		case "scan":
			scan = reporter.Healthy()
		}
	}
	s.health.SetServing(inference.ModelHeart, running && heart)
	s.health.SetServing(inference.ModelBrain, running && scan)
	s.health.SetServing(inference.ModelLung, running && scan)
}

// Close releases the health listener.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Close()
	}
}
