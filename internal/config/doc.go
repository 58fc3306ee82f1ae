// Package config loads and validates adeval's TOML configuration.
//
// Load resolves the config path (explicit flag, then the user config dir,
// then adeval.toml in the working directory), layers file values over
// Default(), normalizes paths, and validates the result. Matcher tuning from
// the [matcher] table can be overridden per run by CLI flags.
package config
