package internal_config_test

import (
	"testing"
	"time"

	"github.com/studynova/ingest/internal/config"
)

func TestServerConfig_Finalize_Defaults(t *testing.T) {
	cfg := &config.ServerConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() = %v", err)
	}

	if cfg.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want 0.0.0.0", cfg.Host)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q, want 0.0.0.0:8080", cfg.Addr())
	}
	if cfg.ReadTimeoutDuration() != 30*time.Second {
		t.Errorf("ReadTimeoutDuration() = %v, want 30s", cfg.ReadTimeoutDuration())
	}
}

func TestServerConfig_Validate(t *testing.T) {
	cfg := &config.ServerConfig{Port: 99999}
	if err := cfg.Finalize(); err == nil {
		t.Error("Finalize() with invalid port = nil, want error")
	}

	cfg = &config.ServerConfig{ReadTimeout: "not-a-duration"}
	if err := cfg.Finalize(); err == nil {
		t.Error("Finalize() with invalid read_timeout = nil, want error")
	}
}

func TestServerConfig_EnvOverride(t *testing.T) {
	t.Setenv(config.EnvServerPort, "9090")
	t.Setenv(config.EnvServerHost, "127.0.0.1")

	cfg := &config.ServerConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() = %v", err)
	}

	if cfg.Addr() != "127.0.0.1:9090" {
		t.Errorf("Addr() = %q, want 127.0.0.1:9090", cfg.Addr())
	}
}

func TestServerConfig_Merge(t *testing.T) {
	cfg := &config.ServerConfig{Host: "0.0.0.0", Port: 8080, ReadTimeout: "30s"}
	cfg.Merge(&config.ServerConfig{Port: 8443})

	if cfg.Port != 8443 {
		t.Errorf("Port = %d, want 8443", cfg.Port)
	}
	if cfg.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want unchanged", cfg.Host)
	}
}

func TestStorageConfig_MaxUploadSize(t *testing.T) {
	cfg := &config.StorageConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() = %v", err)
	}

	if cfg.BasePath != ".data/blobs" {
		t.Errorf("BasePath = %q, want .data/blobs", cfg.BasePath)
	}
	if cfg.MaxUploadSizeBytes() != 100*1000*1000 {
		t.Errorf("MaxUploadSizeBytes() = %d, want 100MB", cfg.MaxUploadSizeBytes())
	}
}

func TestStorageConfig_CustomSize(t *testing.T) {
	cfg := &config.StorageConfig{MaxUploadSize: "5MB"}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() = %v", err)
	}

	if cfg.MaxUploadSizeBytes() != 5*1000*1000 {
		t.Errorf("MaxUploadSizeBytes() = %d, want 5MB", cfg.MaxUploadSizeBytes())
	}
}

func TestStorageConfig_InvalidSize(t *testing.T) {
	cfg := &config.StorageConfig{MaxUploadSize: "lots"}
	if err := cfg.Finalize(); err == nil {
		t.Error("Finalize() with invalid max_upload_size = nil, want error")
	}
}

func TestAIConfig_Defaults(t *testing.T) {
	cfg := &config.AIConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() = %v", err)
	}

	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want gpt-4o-mini", cfg.Model)
	}
	if cfg.MaxQuestions != 50 {
		t.Errorf("MaxQuestions = %d, want 50", cfg.MaxQuestions)
	}
	if cfg.TimeoutDuration() != 120*time.Second {
		t.Errorf("TimeoutDuration() = %v, want 120s", cfg.TimeoutDuration())
	}
}

func TestAIConfig_Validate(t *testing.T) {
	cfg := &config.AIConfig{MaxQuestions: -1}
	if err := cfg.Finalize(); err == nil {
		t.Error("Finalize() with negative max_questions = nil, want error")
	}

	cfg = &config.AIConfig{Timeout: "forever"}
	if err := cfg.Finalize(); err == nil {
		t.Error("Finalize() with invalid timeout = nil, want error")
	}
}

func TestWatcherConfig_Defaults(t *testing.T) {
	cfg := &config.WatcherConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() = %v", err)
	}

	if cfg.Enabled {
		t.Error("Enabled = true, want false by default")
	}
	if cfg.InboxPath == "" {
		t.Error("InboxPath empty, want default")
	}
	if cfg.SettleDelayDuration() <= 0 {
		t.Errorf("SettleDelayDuration() = %v, want positive", cfg.SettleDelayDuration())
	}
}

func TestConfig_MergeOverlay(t *testing.T) {
	base := &config.Config{
		Version: "0.1.0",
		Domain:  "http://localhost:8080",
	}
	base.Server = config.ServerConfig{Port: 8080}

	overlay := &config.Config{Domain: "https://ingest.studynova.example"}
	overlay.Server = config.ServerConfig{Port: 443}

	base.Merge(overlay)

	if base.Domain != "https://ingest.studynova.example" {
		t.Errorf("Domain = %q, want overlay value", base.Domain)
	}
	if base.Server.Port != 443 {
		t.Errorf("Server.Port = %d, want 443", base.Server.Port)
	}
	if base.Version != "0.1.0" {
		t.Errorf("Version = %q, want unchanged", base.Version)
	}
}
