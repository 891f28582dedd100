package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/btdctl/internal/config"
)

// btdctl.toml key mapping onto client runtime settings.
type fileConfig struct {
	SocketPath       string `toml:"socket_path"`
	Debug            bool   `toml:"debug"`
	ConnectTimeoutMS int64  `toml:"connect_timeout_ms"`
	ReadTimeoutMS    int64  `toml:"read_timeout_ms"`
	WriteTimeoutMS   int64  `toml:"write_timeout_ms"`
}

// loadClientConfig overlays file keys onto defaults. A missing config
// file is not an error; flags and defaults cover the common case.
func loadClientConfig(path string) (config.ClientConfig, error) {
	cfg := config.DefaultClientConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return config.ClientConfig{}, fmt.Errorf("load client config: %w", err)
	}
	if meta.IsDefined("socket_path") {
		cfg.SocketPath = raw.SocketPath
	}
	if meta.IsDefined("debug") {
		cfg.Debug = raw.Debug
	}
	if meta.IsDefined("connect_timeout_ms") {
		cfg.ConnectTimeoutMS = raw.ConnectTimeoutMS
	}
	if meta.IsDefined("read_timeout_ms") {
		cfg.ReadTimeoutMS = raw.ReadTimeoutMS
	}
	if meta.IsDefined("write_timeout_ms") {
		cfg.WriteTimeoutMS = raw.WriteTimeoutMS
	}

	if err := config.ValidateClientConfig(cfg); err != nil {
		return config.ClientConfig{}, err
	}
	return cfg, nil
}
