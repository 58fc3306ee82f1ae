// Package logging assembles the structured slog loggers used by the adeval
// CLI. It centralizes level and format plumbing so every command emits log
// lines with the same shape, and provides a no-op logger for tests. The
// matching engine itself never logs; only the surrounding pipeline does.
package logging
