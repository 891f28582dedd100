package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadClientConfigDefaultsAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
socket_path = "/tmp/btd-test.sock"
debug = true
read_timeout_ms = 1500
	`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadClientConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SocketPath != "/tmp/btd-test.sock" {
		t.Fatalf("unexpected socket path: %q", cfg.SocketPath)
	}
	if !cfg.Debug {
		t.Fatalf("expected debug enabled")
	}
	if cfg.ConnectTimeoutMS != 5000 {
		t.Fatalf("expected default connect timeout, got %d", cfg.ConnectTimeoutMS)
	}
	if cfg.ReadTimeoutMS != 1500 {
		t.Fatalf("unexpected read timeout: %d", cfg.ReadTimeoutMS)
	}
}

func TestLoadClientConfigRejectsNegativeTimeout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`connect_timeout_ms = -1`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadClientConfig(path); err == nil {
		t.Fatalf("expected validation failure")
	}
}

func TestLoadClientConfigMissingFile(t *testing.T) {
	if _, err := LoadClientConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("expected load failure")
	}
}

func TestValidateClientConfigRequiresSocketPath(t *testing.T) {
	cfg := DefaultClientConfig()
	cfg.SocketPath = "   "
	if err := ValidateClientConfig(cfg); err == nil {
		t.Fatalf("expected validation failure")
	}
}

func TestSessionConfigConversion(t *testing.T) {
	cfg := ClientConfig{
		SocketPath:       "/tmp/btd.sock",
		Debug:            true,
		ConnectTimeoutMS: 5000,
		ReadTimeoutMS:    250,
	}
	got := SessionConfig(cfg)
	if got.ConnectTimeout != 5*time.Second {
		t.Fatalf("unexpected connect timeout: %v", got.ConnectTimeout)
	}
	if got.ReadTimeout != 250*time.Millisecond {
		t.Fatalf("unexpected read timeout: %v", got.ReadTimeout)
	}
	if got.WriteTimeout != 0 {
		t.Fatalf("unexpected write timeout: %v", got.WriteTimeout)
	}
	if !got.Debug {
		t.Fatalf("expected debug carried through")
	}
}

func TestWriteTemplateRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := WriteTemplate(path, false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	if err := WriteTemplate(path, false); err == nil {
		t.Fatalf("expected overwrite refusal")
	}
	if err := WriteTemplate(path, true); err != nil {
		t.Fatalf("forced overwrite: %v", err)
	}

	cfg, err := LoadClientConfig(path)
	if err != nil {
		t.Fatalf("template should load cleanly: %v", err)
	}
	if cfg.SocketPath == "" {
		t.Fatalf("template missing socket path")
	}
}
