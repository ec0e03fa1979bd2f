package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	Capacity     int    `toml:"capacity"`
	Unresolved   string `toml:"unresolved"`
	Kind         string `toml:"kind"`
	LogLevel     string `toml:"log_level"`
	File         string `toml:"file"`
	FromStart    *bool  `toml:"from_start"`
	WaitTimeout  string `toml:"wait_timeout"`
	PollInterval string `toml:"poll_interval"`
	StateDir     string `toml:"state_dir"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.statship/config.toml, or "" if the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".statship", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("host", fc.Host, &cfg.Host)
	s.setString("unresolved", fc.Unresolved, &cfg.Unresolved)
	s.setString("type", fc.Kind, &cfg.Kind)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("file", fc.File, &cfg.File)
	s.setString("state-dir", fc.StateDir, &cfg.StateDir)

	s.setInt("port", fc.Port, &cfg.Port)
	s.setInt("capacity", fc.Capacity, &cfg.Capacity)

	if err := s.setDuration("wait-timeout", fc.WaitTimeout, &cfg.WaitTimeout); err != nil {
		return err
	}
	if err := s.setDuration("poll", fc.PollInterval, &cfg.PollInterval); err != nil {
		return err
	}

	s.setBool("from-start", fc.FromStart, &cfg.FromStart)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
