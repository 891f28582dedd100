package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadClientConfigDefaultsAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "btdctl.toml")
	content := `
socket_path = "/run/user/1000/btd.sock"
debug = true
read_timeout_ms = 30000
	`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadClientConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SocketPath != "/run/user/1000/btd.sock" {
		t.Fatalf("unexpected socket path: %q", cfg.SocketPath)
	}
	if !cfg.Debug {
		t.Fatalf("expected debug enabled")
	}
	if cfg.ConnectTimeoutMS != 5000 {
		t.Fatalf("expected default connect timeout, got %d", cfg.ConnectTimeoutMS)
	}
	if cfg.ReadTimeoutMS != 30000 {
		t.Fatalf("unexpected read timeout: %d", cfg.ReadTimeoutMS)
	}
}

func TestLoadClientConfigMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := loadClientConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing config should not fail: %v", err)
	}
	if cfg.SocketPath == "" {
		t.Fatalf("expected default socket path")
	}
	if cfg.Debug {
		t.Fatalf("expected debug disabled by default")
	}
}

func TestLoadClientConfigRejectsInvalidOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "btdctl.toml")
	if err := os.WriteFile(path, []byte(`socket_path = ""`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadClientConfig(path); err == nil {
		t.Fatalf("expected validation failure")
	}
}

func TestParseValue(t *testing.T) {
	if v := parseValue("6881"); v != int64(6881) {
		t.Fatalf("unexpected int value: %v", v)
	}
	if v := parseValue("true"); v != int64(1) {
		t.Fatalf("unexpected bool value: %v", v)
	}
	if v := parseValue("false"); v != int64(0) {
		t.Fatalf("unexpected bool value: %v", v)
	}
	if v := parseValue("/srv/data"); v != "/srv/data" {
		t.Fatalf("unexpected string value: %v", v)
	}
}
