package session

import "time"

// Config defines transport behavior for one session.
//
// ReadTimeout and WriteTimeout are a hardening extension on top of the
// daemon protocol, which defines no deadlines of its own. Zero keeps
// the protocol's blocking behavior and is the default.
type Config struct {
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration

	// Debug enables the wire tap: every raw outbound and inbound
	// payload is logged at debug level. Diagnostics only; the tap
	// never alters protocol behavior.
	Debug bool
}

// DefaultConfig returns the stock client defaults.
func DefaultConfig() Config {
	return Config{
		ConnectTimeout: 5 * time.Second,
	}
}
