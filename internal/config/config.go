// Package config provides server-level configuration for the redirect
// service, loaded from environment variables with sensible defaults.
//
// Redirect rules themselves live in the SR_REDIR_<name> namespace and are
// handled by the rules package; this package only covers the settings the
// process needs to listen and log.
//
// Environment Variables:
//   - SR_REDIR__HOST: listen address as host:port (default: 0.0.0.0:8080)
//   - LOG_LEVEL: logging level (default: info)
//   - LOG_FILE: log file path; stdout when unset
//   - TLS_CERT_FILE: TLS certificate file; enables TLS together with TLS_KEY_FILE
//   - TLS_KEY_FILE: TLS private key file
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
)

// Config holds all server-level configuration values. Load it once at
// startup and call Validate before use.
type Config struct {
	ListenAddr  string // host:port the server binds to
	LogLevel    string // logging level (debug, info, warn, error)
	LogFile     string // log file path, empty for stdout
	TLSCertFile string // TLS certificate file path
	TLSKeyFile  string // TLS private key file path
}

// Load creates a new Config instance with values loaded from environment
// variables, falling back to defaults for unset variables. It does not
// validate; call Validate on the result.
func Load() *Config {
	return &Config{
		ListenAddr:  getEnv("SR_REDIR__HOST", "0.0.0.0:8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFile:     getEnv("LOG_FILE", ""),
		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),
	}
}

// getEnv retrieves an environment variable value or returns a default value if not set.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Validate checks that the configuration can actually start a server.
// Startup aborts on any validation failure; a half-working listener is
// worse than refusing to start.
func (c *Config) Validate() error {
	_, portStr, err := net.SplitHostPort(c.ListenAddr)
	if err != nil {
		return fmt.Errorf("SR_REDIR__HOST must be a host:port address: %w", err)
	}
	if port, err := strconv.Atoi(portStr); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("SR_REDIR__HOST port must be between 1 and 65535")
	}

	if (c.TLSCertFile == "") != (c.TLSKeyFile == "") {
		return fmt.Errorf("TLS_CERT_FILE and TLS_KEY_FILE must be set together")
	}

	return nil
}
