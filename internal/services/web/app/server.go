package app

import (
	"errors"
	"net/http"
)

// BuildRootHandler composes a root mux from the configured modules.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	if len(cfg.Modules) == 0 {
		return nil, errors.New("at least one module is required")
	}
	return Compose(ComposeInput{
		Modules:             cfg.Modules,
		StaticFS:            cfg.StaticFS,
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	})
}
