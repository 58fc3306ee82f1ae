package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"adeval/internal/config"
)

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("matched", slog.Int("records", 3))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "matched" {
		t.Errorf("msg = %v", entry["msg"])
	}
}

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Debug("loading reference")
	if !strings.Contains(buf.String(), "loading reference") {
		t.Errorf("console output missing message: %q", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Error("unknown format should be rejected")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info line should be filtered at warn level")
	}
	if !strings.Contains(out, "visible") {
		t.Error("warn line should pass at warn level")
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	if _, err := NewFromConfig(&cfg); err != nil {
		t.Errorf("NewFromConfig: %v", err)
	}
	if _, err := NewFromConfig(nil); err != nil {
		t.Errorf("NewFromConfig(nil): %v", err)
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	// Must not panic and must report disabled levels.
	logger.Info("ignored")
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("nop logger should report all levels disabled")
	}
}
