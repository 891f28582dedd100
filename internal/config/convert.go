package config

import (
	"time"

	"github.com/danmuck/btdctl/internal/protocol/session"
)

// SessionConfig maps a client config onto session transport settings.
func SessionConfig(cfg ClientConfig) session.Config {
	return session.Config{
		ConnectTimeout: time.Duration(cfg.ConnectTimeoutMS) * time.Millisecond,
		ReadTimeout:    time.Duration(cfg.ReadTimeoutMS) * time.Millisecond,
		WriteTimeout:   time.Duration(cfg.WriteTimeoutMS) * time.Millisecond,
		Debug:          cfg.Debug,
	}
}
