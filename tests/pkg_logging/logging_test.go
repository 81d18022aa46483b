package pkg_logging_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/studynova/ingest/pkg/logging"
)

func TestLevel_Validate(t *testing.T) {
	valid := []logging.Level{logging.LevelDebug, logging.LevelInfo, logging.LevelWarn, logging.LevelError}
	for _, l := range valid {
		if err := l.Validate(); err != nil {
			t.Errorf("Validate(%s) = %v, want nil", l, err)
		}
	}

	if err := logging.Level("verbose").Validate(); err == nil {
		t.Error("Validate(verbose) = nil, want error")
	}
}

func TestLevel_ToSlogLevel(t *testing.T) {
	tests := []struct {
		level logging.Level
		want  slog.Level
	}{
		{logging.LevelDebug, slog.LevelDebug},
		{logging.LevelInfo, slog.LevelInfo},
		{logging.LevelWarn, slog.LevelWarn},
		{logging.LevelError, slog.LevelError},
		{logging.Level("bogus"), slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := tt.level.ToSlogLevel(); got != tt.want {
			t.Errorf("ToSlogLevel(%s) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestFormat_Validate(t *testing.T) {
	if err := logging.FormatText.Validate(); err != nil {
		t.Errorf("Validate(text) = %v, want nil", err)
	}
	if err := logging.FormatJSON.Validate(); err != nil {
		t.Errorf("Validate(json) = %v, want nil", err)
	}
	if err := logging.Format("xml").Validate(); err == nil {
		t.Error("Validate(xml) = nil, want error")
	}
}

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := &logging.Config{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() = %v", err)
	}

	if cfg.Level != logging.LevelInfo {
		t.Errorf("Level = %s, want info", cfg.Level)
	}
	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %s, want text", cfg.Format)
	}
}

func TestConfig_Finalize_EnvOverride(t *testing.T) {
	t.Setenv(logging.EnvLogLevel, "debug")
	t.Setenv(logging.EnvLogFormat, "json")

	cfg := &logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() = %v", err)
	}

	if cfg.Level != logging.LevelDebug {
		t.Errorf("Level = %s, want debug", cfg.Level)
	}
	if cfg.Format != logging.FormatJSON {
		t.Errorf("Format = %s, want json", cfg.Format)
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := &logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}
	cfg.Merge(&logging.Config{Level: logging.LevelError})

	if cfg.Level != logging.LevelError {
		t.Errorf("Level = %s, want error", cfg.Level)
	}
	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %s, want text unchanged", cfg.Format)
	}
}

func TestNew(t *testing.T) {
	cfg := &logging.Config{Level: logging.LevelDebug, Format: logging.FormatJSON}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() = %v", err)
	}

	logger := logging.New(cfg)
	if logger == nil {
		t.Fatal("New() returned nil")
	}
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug level not enabled")
	}
}
