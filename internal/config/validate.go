package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.RequestsPerMinute < 0 {
		return fmt.Errorf("server.requests_per_minute must be >= 0 (got %d)", c.Server.RequestsPerMinute)
	}

	if err := c.Voting.validate(); err != nil {
		return fmt.Errorf("voting: %w", err)
	}

	if err := c.Menu.validate(); err != nil {
		return fmt.Errorf("menu: %w", err)
	}

	if err := validateLogFormat(c.Log.Format); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	return nil
}

func (v *VotingConfig) validate() error {
	if v.RateLimit <= 0 {
		return fmt.Errorf("rate_limit must be > 0 (got %d)", v.RateLimit)
	}
	if v.RateWindow < time.Second {
		return fmt.Errorf("rate_window must be at least 1s (got %s)", v.RateWindow)
	}
	if v.CleanupInterval < 0 {
		return fmt.Errorf("cleanup_interval must be >= 0 (got %s)", v.CleanupInterval)
	}
	return nil
}

func (m *MenuConfig) validate() error {
	if _, err := time.LoadLocation(m.DefaultTimezone); err != nil {
		return fmt.Errorf("default_timezone %q: %w", m.DefaultTimezone, err)
	}
	if m.ArchiveAfterWeeks < 1 {
		return fmt.Errorf("archive_after_weeks must be >= 1 (got %d)", m.ArchiveAfterWeeks)
	}
	return nil
}

func validateLogFormat(format string) error {
	switch strings.ToLower(format) {
	case "", "json", "text":
		return nil
	}
	return fmt.Errorf("format must be json or text (got %q)", format)
}
