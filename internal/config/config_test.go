// ABOUTME: Tests for configuration loading and parsing
// ABOUTME: Covers YAML loading, env var expansion, duration parsing and path resolution

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return configPath
}

func TestLoad_ValidConfig(t *testing.T) {
	configPath := writeConfig(t, `
server:
  http_addr: "0.0.0.0:3000"

api:
  http_addr: "0.0.0.0:5000"
  base_url: "http://localhost:5000"
  allowed_origins:
    - "http://localhost:3000"
  request_timeout: "15s"
  seed: true

auth:
  jwt_secret: "0123456789abcdef0123456789abcdef"
  token_ttl: "2h"

database:
  path: "./test.db"

logging:
  level: "debug"
  format: "json"

webadmin:
  cookie_secure: true
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.HTTPAddr != "0.0.0.0:3000" {
		t.Errorf("Server.HTTPAddr = %q, want %q", cfg.Server.HTTPAddr, "0.0.0.0:3000")
	}
	if cfg.API.BaseURL != "http://localhost:5000" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if len(cfg.API.AllowedOrigins) != 1 || cfg.API.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("API.AllowedOrigins = %v", cfg.API.AllowedOrigins)
	}
	if cfg.API.RequestTimeout != 15*time.Second {
		t.Errorf("API.RequestTimeout = %v, want 15s", cfg.API.RequestTimeout)
	}
	if !cfg.API.Seed {
		t.Error("API.Seed = false, want true")
	}
	if cfg.Auth.TokenTTL != 2*time.Hour {
		t.Errorf("Auth.TokenTTL = %v, want 2h", cfg.Auth.TokenTTL)
	}
	if cfg.Database.Path != "./test.db" {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, "./test.db")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if !cfg.WebAdmin.CookieSecure {
		t.Error("WebAdmin.CookieSecure = false, want true")
	}
	if err := cfg.ValidateAPI(); err != nil {
		t.Errorf("ValidateAPI() error = %v", err)
	}
}

func TestLoad_EnvVarExpansion(t *testing.T) {
	t.Setenv("KONNECT_TEST_SECRET", "secret-from-env-secret-from-env!")
	t.Setenv("KONNECT_TEST_DB", "/tmp/env.db")

	configPath := writeConfig(t, `
server:
  http_addr: "127.0.0.1:3000"
api:
  base_url: "http://127.0.0.1:5000"
auth:
  jwt_secret: "${KONNECT_TEST_SECRET}"
database:
  path: "${KONNECT_TEST_DB}"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Auth.JWTSecret != "secret-from-env-secret-from-env!" {
		t.Errorf("Auth.JWTSecret = %q", cfg.Auth.JWTSecret)
	}
	if cfg.Database.Path != "/tmp/env.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
}

func TestLoad_Defaults(t *testing.T) {
	configPath := writeConfig(t, `
server:
  http_addr: "127.0.0.1:3000"
api:
  base_url: "http://127.0.0.1:5000"
database:
  path: "./x.db"
`)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.RequestTimeout != 30*time.Second {
		t.Errorf("API.RequestTimeout = %v, want 30s", cfg.API.RequestTimeout)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("Auth.TokenTTL = %v, want 24h", cfg.Auth.TokenTTL)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v, want info/text", cfg.Logging)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing server addr",
			content: "api:\n  base_url: http://x\ndatabase:\n  path: a.db\n",
			wantErr: "server.http_addr is required",
		},
		{
			name:    "missing api base url",
			content: "server:\n  http_addr: ':3000'\ndatabase:\n  path: a.db\n",
			wantErr: "api.base_url is required",
		},
		{
			name:    "missing database",
			content: "server:\n  http_addr: ':3000'\napi:\n  base_url: http://x\n",
			wantErr: "database.path is required",
		},
		{
			name:    "bad duration",
			content: "server:\n  http_addr: ':3000'\napi:\n  base_url: http://x\n  request_timeout: soon\ndatabase:\n  path: a.db\n",
			wantErr: "request_timeout",
		},
		{
			name:    "bad log level",
			content: "server:\n  http_addr: ':3000'\napi:\n  base_url: http://x\ndatabase:\n  path: a.db\nlogging:\n  level: loud\n",
			wantErr: "logging.level",
		},
		{
			name:    "invalid yaml",
			content: "server: [",
			wantErr: "parsing config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "reading config file") {
		t.Errorf("Load() error = %v, want reading config file error", err)
	}
}

func TestValidateAPI_ShortSecret(t *testing.T) {
	cfg := Default()
	cfg.Auth.JWTSecret = "short"
	if err := cfg.ValidateAPI(); err == nil {
		t.Error("ValidateAPI() error = nil, want short secret error")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	t.Setenv("KONNECT_JWT_SECRET", "roundtrip-secret-roundtrip-secret")
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Database.Path = "/tmp/konnect.db"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved config: %v", err)
	}
	if !strings.Contains(string(raw), "${KONNECT_JWT_SECRET}") {
		t.Errorf("saved config lost the env reference:\n%s", raw)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Auth.JWTSecret != "roundtrip-secret-roundtrip-secret" {
		t.Errorf("Auth.JWTSecret = %q", loaded.Auth.JWTSecret)
	}
	if loaded.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("Auth.TokenTTL = %v", loaded.Auth.TokenTTL)
	}
	if loaded.Database.Path != "/tmp/konnect.db" {
		t.Errorf("Database.Path = %q", loaded.Database.Path)
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	if got := ResolvePath("/flag.yaml"); got != "/flag.yaml" {
		t.Errorf("ResolvePath(flag) = %q", got)
	}
	if got := ResolvePath(""); got != filepath.Join("/xdg", "konnect", "config.yaml") {
		t.Errorf("ResolvePath(xdg) = %q", got)
	}

	t.Setenv(EnvConfigPath, "/env.yaml")
	if got := ResolvePath(""); got != "/env.yaml" {
		t.Errorf("ResolvePath(env) = %q", got)
	}
}

func TestDataPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DataPath(); got != filepath.Join("/data", "konnect") {
		t.Errorf("DataPath() = %q", got)
	}
}
