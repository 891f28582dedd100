package config

import (
	"fmt"
	"os"
)

func Template() string {
	return clientTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(clientTemplate), 0o600)
}

const clientTemplate = `socket_path = "/var/run/btd/control.sock"
debug = false

# Timeouts are milliseconds. Zero blocks indefinitely, matching the
# daemon protocol; read/write deadlines are a client-side hardening
# extension.
connect_timeout_ms = 5000
read_timeout_ms = 0
write_timeout_ms = 0
`
