package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (STATSHIP_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("host", os.Getenv("STATSHIP_HOST"), &cfg.Host)
	s.setString("unresolved", os.Getenv("STATSHIP_UNRESOLVED"), &cfg.Unresolved)
	s.setString("type", os.Getenv("STATSHIP_KIND"), &cfg.Kind)
	s.setString("log-level", os.Getenv("STATSHIP_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("file", os.Getenv("STATSHIP_FILE"), &cfg.File)
	s.setString("state-dir", os.Getenv("STATSHIP_STATE_DIR"), &cfg.StateDir)

	if err := s.setIntFromString("port", os.Getenv("STATSHIP_PORT"), &cfg.Port); err != nil {
		return err
	}
	if err := s.setIntFromString("capacity", os.Getenv("STATSHIP_CAPACITY"), &cfg.Capacity); err != nil {
		return err
	}
	if err := s.setDuration("wait-timeout", os.Getenv("STATSHIP_WAIT_TIMEOUT"), &cfg.WaitTimeout); err != nil {
		return err
	}
	if err := s.setDuration("poll", os.Getenv("STATSHIP_POLL_INTERVAL"), &cfg.PollInterval); err != nil {
		return err
	}

	s.setBoolFromString("from-start", os.Getenv("STATSHIP_FROM_START"), &cfg.FromStart)

	return nil
}
