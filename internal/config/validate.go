package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMatcher(); err != nil {
		return err
	}
	if err := c.validateRuns(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateMatcher() error {
	switch c.Matcher.Method {
	case "cluster", "overlap", "dp":
	default:
		return fmt.Errorf("matcher.method must be one of cluster, dp, overlap (got %q)", c.Matcher.Method)
	}
	if c.Matcher.MinOverlapSec < 0 {
		return errors.New("matcher.min_overlap_sec must not be negative")
	}
	if c.Matcher.WTime < 0 || c.Matcher.WText < 0 {
		return errors.New("matcher.w_time and matcher.w_text must not be negative")
	}
	if c.Matcher.TimeScale <= 0 {
		return errors.New("matcher.time_scale must be positive")
	}
	return nil
}

func (c *Config) validateRuns() error {
	if !c.Runs.Enabled {
		return nil
	}
	if c.Runs.Dir == "" {
		return errors.New("runs.dir must be set when runs.enabled is true")
	}
	if c.Runs.Keep < 0 {
		return errors.New("runs.keep must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error (got %q)", c.Logging.Level)
	}
	return nil
}
