package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.Matcher.Method = strings.ToLower(strings.TrimSpace(c.Matcher.Method))
	if c.Matcher.Method == "" {
		c.Matcher.Method = defaultMatcherMethod
	}

	var err error
	if c.Output.Dir != "" {
		if c.Output.Dir, err = expandPath(c.Output.Dir); err != nil {
			return fmt.Errorf("output.dir: %w", err)
		}
	}

	if strings.TrimSpace(c.Runs.Dir) == "" {
		c.Runs.Dir = defaultRunsDir
	}
	if c.Runs.Dir, err = expandPath(c.Runs.Dir); err != nil {
		return fmt.Errorf("runs.dir: %w", err)
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}
