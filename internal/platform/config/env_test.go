package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Port    int           `env:"HEALTHGUARD_TEST_PORT" envDefault:"123"`
	Timeout time.Duration `env:"HEALTHGUARD_TEST_TIMEOUT" envDefault:"0s"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.Timeout != 0 {
		t.Fatalf("expected zero timeout, got %v", cfg.Timeout)
	}
}

func TestParseEnvReadsDurations(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("HEALTHGUARD_TEST_TIMEOUT", "1500ms")

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Timeout != 1500*time.Millisecond {
		t.Fatalf("timeout = %v, want 1.5s", cfg.Timeout)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("HEALTHGUARD_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
