package config

import (
	"testing"
)

func TestApplyEnvOverridesFile(t *testing.T) {
	d := t.TempDir()
	p := writeTempFile(t, d, "cfg.yaml", "addr: :9999\nepsilon: 0.001\nline_prefix: g\n")
	t.Setenv("HOMOGEBRA_ADDR", ":7000")
	t.Setenv("HOMOGEBRA_JOURNAL_SIZE", "77")
	t.Setenv("HOMOGEBRA_CORS_ENABLED", "true")
	t.Setenv("HOMOGEBRA_CORS_ALLOWED_ORIGINS", "http://a,http://b")

	cfg, err := Resolve(p)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Addr != ":7000" || cfg.JournalSize != 77 || !cfg.CORSEnabled {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "http://b" {
		t.Fatalf("origins=%v", cfg.CORSAllowedOrigins)
	}
	if cfg.Epsilon != 0.001 || cfg.LinePrefix != "g" {
		t.Fatalf("file values lost: %+v", cfg)
	}
	if cfg.LogLevel != DefaultLogLevel || cfg.MaxBodyBytes != DefaultMaxBodyBytes {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestApplyEnvRejectsBadNumber(t *testing.T) {
	t.Setenv("HOMOGEBRA_EPSILON", "tiny")
	var cfg Config
	if err := ApplyEnv(&cfg); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := Resolve("")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Addr != DefaultAddr || cfg.Epsilon != DefaultEpsilon || cfg.JournalSize != DefaultJournalSize || cfg.NearbyDefaultRadius != DefaultNearbyRadius {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	bad := []Config{
		{Epsilon: 2},
		{Epsilon: -1},
		{JournalSize: -1},
		{MaxBodyBytes: -1},
		{NearbyDefaultRadius: -0.5},
		{PointPrefix: "A B"},
		{CORSEnabled: true},
	}
	for _, c := range bad {
		if err := c.Validate(); err == nil {
			t.Errorf("expected error for %+v", c)
		}
	}
	if err := (Config{Epsilon: 1e-6, CORSEnabled: true, CORSAllowedOrigins: []string{"*"}}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
