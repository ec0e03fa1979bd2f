package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"STATSHIP_HOST":          "env-host",
				"STATSHIP_PORT":          "9999",
				"STATSHIP_CAPACITY":      "256",
				"STATSHIP_UNRESOLVED":    "fail",
				"STATSHIP_POLL_INTERVAL": "2s",
				"STATSHIP_FROM_START":    "1",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Host:         "env-host",
				Port:         9999,
				Capacity:     256,
				Unresolved:   "fail",
				PollInterval: 2 * time.Second,
				FromStart:    true,
			},
		},
		{
			name:     "respects changed flags",
			envVars:  map[string]string{"STATSHIP_HOST": "env-host"},
			changed:  map[string]bool{"host": true},
			initial:  Config{Host: "flag-host"},
			expected: Config{Host: "flag-host"},
		},
		{
			name:    "returns error for invalid int",
			envVars: map[string]string{"STATSHIP_PORT": "eighty"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "returns error for invalid duration",
			envVars: map[string]string{"STATSHIP_WAIT_TIMEOUT": "forever"},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("ApplyEnvConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}
