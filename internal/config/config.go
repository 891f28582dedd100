package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ClientConfig describes one daemon control endpoint. Timeouts are
// milliseconds; zero keeps the protocol's blocking behavior.
type ClientConfig struct {
	SocketPath       string `toml:"socket_path"`
	Debug            bool   `toml:"debug"`
	ConnectTimeoutMS int64  `toml:"connect_timeout_ms"`
	ReadTimeoutMS    int64  `toml:"read_timeout_ms"`
	WriteTimeoutMS   int64  `toml:"write_timeout_ms"`
}

// DefaultClientConfig returns the stock client defaults.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		SocketPath:       "/var/run/btd/control.sock",
		ConnectTimeoutMS: 5000,
	}
}

// LoadClientConfig reads and validates a client config file, filling
// defaults for absent keys.
func LoadClientConfig(path string) (ClientConfig, error) {
	cfg := DefaultClientConfig()
	if err := loadToml(path, &cfg); err != nil {
		return ClientConfig{}, err
	}
	if err := ValidateClientConfig(cfg); err != nil {
		return ClientConfig{}, err
	}
	return cfg, nil
}

func ValidateClientConfig(cfg ClientConfig) error {
	if strings.TrimSpace(cfg.SocketPath) == "" {
		return fmt.Errorf("client config missing socket_path")
	}
	if cfg.ConnectTimeoutMS < 0 {
		return fmt.Errorf("client config connect_timeout_ms must not be negative")
	}
	if cfg.ReadTimeoutMS < 0 {
		return fmt.Errorf("client config read_timeout_ms must not be negative")
	}
	if cfg.WriteTimeoutMS < 0 {
		return fmt.Errorf("client config write_timeout_ms must not be negative")
	}
	return nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}
