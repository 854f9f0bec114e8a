package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Port    int           `env:"CAREERPATH_TEST_PORT" envDefault:"123"`
	Timeout time.Duration `env:"CAREERPATH_TEST_TIMEOUT" envDefault:"2s"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("port = %d, want 123", cfg.Port)
	}
	if cfg.Timeout != 2*time.Second {
		t.Fatalf("timeout = %v, want 2s", cfg.Timeout)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("CAREERPATH_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvFrom(t *testing.T) {
	t.Setenv("CAREERPATH_TEST_PORT", "999")

	var cfg envTestConfig
	if err := ParseEnvFrom(&cfg, map[string]string{"CAREERPATH_TEST_PORT": "456"}); err != nil {
		t.Fatalf("parse env from: %v", err)
	}
	if cfg.Port != 456 {
		t.Fatalf("port = %d, want 456", cfg.Port)
	}

	var defaults envTestConfig
	if err := ParseEnvFrom(&defaults, nil); err != nil {
		t.Fatalf("parse env from nil: %v", err)
	}
	if defaults.Port != 123 {
		t.Fatalf("port = %d, want default 123", defaults.Port)
	}
}
