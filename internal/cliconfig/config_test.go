package cliconfig

import (
	"errors"
	"testing"

	"github.com/bft-labs/statship/internal/domain"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty host", func(c *Config) { c.Host = "" }},
		{"port zero", func(c *Config) { c.Port = 0 }},
		{"port too large", func(c *Config) { c.Port = 65536 }},
		{"negative capacity", func(c *Config) { c.Capacity = -1 }},
		{"bad unresolved policy", func(c *Config) { c.Unresolved = "retry" }},
		{"bad kind", func(c *Config) { c.Kind = "histogram" }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "", "WARN", "warning", "error"} {
		if _, err := ParseLevel(lvl); err != nil {
			t.Errorf("ParseLevel(%q) unexpected error: %v", lvl, err)
		}
	}
	if _, err := ParseLevel("trace-ish"); err == nil {
		t.Error("ParseLevel(trace-ish) expected error")
	}
}
