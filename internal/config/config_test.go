package config

import (
	"testing"
)

func TestLoad(t *testing.T) {
	// Clear environment variables to test defaults
	for _, key := range []string{"SR_REDIR__HOST", "LOG_LEVEL", "LOG_FILE", "TLS_CERT_FILE", "TLS_KEY_FILE"} {
		t.Setenv(key, "")
	}

	config := Load()

	// Test default values
	if config.ListenAddr != "0.0.0.0:8080" {
		t.Errorf("Load() ListenAddr = %v, want %v", config.ListenAddr, "0.0.0.0:8080")
	}

	if config.LogLevel != "info" {
		t.Errorf("Load() LogLevel = %v, want %v", config.LogLevel, "info")
	}

	if config.LogFile != "" {
		t.Errorf("Load() LogFile = %v, want empty", config.LogFile)
	}

	if config.TLSCertFile != "" {
		t.Errorf("Load() TLSCertFile = %v, want empty", config.TLSCertFile)
	}

	if config.TLSKeyFile != "" {
		t.Errorf("Load() TLSKeyFile = %v, want empty", config.TLSKeyFile)
	}
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	t.Setenv("SR_REDIR__HOST", "127.0.0.1:9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FILE", "/var/log/redirect.log")
	t.Setenv("TLS_CERT_FILE", "/etc/tls/cert.pem")
	t.Setenv("TLS_KEY_FILE", "/etc/tls/key.pem")

	config := Load()

	if config.ListenAddr != "127.0.0.1:9090" {
		t.Errorf("Load() ListenAddr = %v, want %v", config.ListenAddr, "127.0.0.1:9090")
	}

	if config.LogLevel != "debug" {
		t.Errorf("Load() LogLevel = %v, want %v", config.LogLevel, "debug")
	}

	if config.LogFile != "/var/log/redirect.log" {
		t.Errorf("Load() LogFile = %v, want %v", config.LogFile, "/var/log/redirect.log")
	}

	if config.TLSCertFile != "/etc/tls/cert.pem" {
		t.Errorf("Load() TLSCertFile = %v, want %v", config.TLSCertFile, "/etc/tls/cert.pem")
	}

	if config.TLSKeyFile != "/etc/tls/key.pem" {
		t.Errorf("Load() TLSKeyFile = %v, want %v", config.TLSKeyFile, "/etc/tls/key.pem")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    *Config
		wantError bool
	}{
		{
			name:      "defaults are valid",
			config:    &Config{ListenAddr: "0.0.0.0:8080", LogLevel: "info"},
			wantError: false,
		},
		{
			name:      "empty host is valid",
			config:    &Config{ListenAddr: ":8080"},
			wantError: false,
		},
		{
			name:      "missing port",
			config:    &Config{ListenAddr: "localhost"},
			wantError: true,
		},
		{
			name:      "non-numeric port",
			config:    &Config{ListenAddr: "localhost:http"},
			wantError: true,
		},
		{
			name:      "port out of range",
			config:    &Config{ListenAddr: "localhost:70000"},
			wantError: true,
		},
		{
			name:      "port zero",
			config:    &Config{ListenAddr: "localhost:0"},
			wantError: true,
		},
		{
			name: "tls cert without key",
			config: &Config{
				ListenAddr:  ":8080",
				TLSCertFile: "/etc/tls/cert.pem",
			},
			wantError: true,
		},
		{
			name: "tls key without cert",
			config: &Config{
				ListenAddr: ":8080",
				TLSKeyFile: "/etc/tls/key.pem",
			},
			wantError: true,
		},
		{
			name: "tls cert and key together",
			config: &Config{
				ListenAddr:  ":8080",
				TLSCertFile: "/etc/tls/cert.pem",
				TLSKeyFile:  "/etc/tls/key.pem",
			},
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError && err == nil {
				t.Error("Validate() expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}
