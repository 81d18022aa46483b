package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// EnvWatcherEnabled overrides the inbox watcher enabled flag.
	EnvWatcherEnabled = "WATCHER_ENABLED"

	// EnvWatcherInboxPath overrides the inbox directory path.
	EnvWatcherInboxPath = "WATCHER_INBOX_PATH"

	// EnvWatcherSettleDelay overrides the delay before a dropped file is picked up.
	EnvWatcherSettleDelay = "WATCHER_SETTLE_DELAY"
)

// WatcherConfig contains inbox directory watcher configuration.
type WatcherConfig struct {
	Enabled bool `toml:"enabled"`

	// InboxPath is the root directory watched for dropped PDFs, laid out as
	// <inbox>/<board>/<class>/<subject>/<chapter>/file.pdf.
	InboxPath string `toml:"inbox_path"`

	// SettleDelay is how long a file must be quiet before ingestion starts,
	// so partially copied files are not picked up.
	SettleDelay string `toml:"settle_delay"`
}

// SettleDelayDuration parses and returns the settle delay as a time.Duration.
func (c *WatcherConfig) SettleDelayDuration() time.Duration {
	d, _ := time.ParseDuration(c.SettleDelay)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the watcher configuration.
func (c *WatcherConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration.
func (c *WatcherConfig) Merge(overlay *WatcherConfig) {
	c.Enabled = overlay.Enabled
	if overlay.InboxPath != "" {
		c.InboxPath = overlay.InboxPath
	}
	if overlay.SettleDelay != "" {
		c.SettleDelay = overlay.SettleDelay
	}
}

func (c *WatcherConfig) loadDefaults() {
	if c.InboxPath == "" {
		c.InboxPath = ".data/inbox"
	}
	if c.SettleDelay == "" {
		c.SettleDelay = "2s"
	}
}

func (c *WatcherConfig) loadEnv() {
	if v := os.Getenv(EnvWatcherEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Enabled = enabled
		}
	}
	if v := os.Getenv(EnvWatcherInboxPath); v != "" {
		c.InboxPath = v
	}
	if v := os.Getenv(EnvWatcherSettleDelay); v != "" {
		c.SettleDelay = v
	}
}

func (c *WatcherConfig) validate() error {
	if c.Enabled && c.InboxPath == "" {
		return fmt.Errorf("inbox_path required when enabled")
	}
	if _, err := time.ParseDuration(c.SettleDelay); err != nil {
		return fmt.Errorf("invalid settle_delay: %w", err)
	}
	return nil
}
