// ABOUTME: Configuration loading and parsing for konnect
// ABOUTME: Supports YAML files with environment variable expansion and duration parsing

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that overrides the config path.
const EnvConfigPath = "KONNECT_CONFIG"

// Config represents the complete konnect configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	API      APIConfig      `yaml:"api"`
	Auth     AuthConfig     `yaml:"auth"`
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	WebAdmin WebAdminConfig `yaml:"webadmin"`
}

// ServerConfig holds the dashboard listener configuration
type ServerConfig struct {
	HTTPAddr string `yaml:"http_addr"`
}

// APIConfig holds the REST backend configuration
type APIConfig struct {
	HTTPAddr       string   `yaml:"http_addr"`
	BaseURL        string   `yaml:"base_url"` // where the dashboard and CLI reach the API
	AllowedOrigins []string `yaml:"allowed_origins"`
	Seed           bool     `yaml:"seed"` // fill empty tables with demo rows on start

	RequestTimeout    time.Duration `yaml:"-"`
	RequestTimeoutRaw string        `yaml:"request_timeout"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`

	TokenTTL    time.Duration `yaml:"-"`
	TokenTTLRaw string        `yaml:"token_ttl"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// WebAdminConfig holds dashboard configuration
type WebAdminConfig struct {
	// BaseURL is the external URL of the dashboard, used for absolute links.
	// If not set, it is derived from server.http_addr.
	BaseURL      string `yaml:"base_url"`
	CookieSecure bool   `yaml:"cookie_secure"`
}

// Default returns a configuration that runs both servers on localhost.
func Default() *Config {
	return &Config{
		Server: ServerConfig{HTTPAddr: "127.0.0.1:3000"},
		API: APIConfig{
			HTTPAddr:          "127.0.0.1:5000",
			BaseURL:           "http://127.0.0.1:5000",
			AllowedOrigins:    []string{"http://localhost:*", "http://127.0.0.1:*"},
			Seed:              true,
			RequestTimeout:    30 * time.Second,
			RequestTimeoutRaw: "30s",
		},
		Auth: AuthConfig{
			JWTSecret:   "${KONNECT_JWT_SECRET}",
			TokenTTL:    24 * time.Hour,
			TokenTTLRaw: "24h",
		},
		Database: DatabaseConfig{Path: filepath.Join(DataPath(), "konnect.db")},
		Logging:  LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads a configuration file from the given path and returns a parsed Config.
// Environment variables in the format ${VAR_NAME} are expanded.
// Duration strings are parsed into time.Duration values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the raw YAML content
	expandedData := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := parseDurations(&cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Save writes cfg to path as YAML, creating parent directories. Raw strings
// are written, so ${VAR} references survive a round trip.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if c.Server.HTTPAddr == "" {
		return fmt.Errorf("server.http_addr is required")
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format %q must be text or json", c.Logging.Format)
	}

	return nil
}

// ValidateAPI checks the fields the REST backend needs in addition to Validate.
func (c *Config) ValidateAPI() error {
	if c.API.HTTPAddr == "" {
		return fmt.Errorf("api.http_addr is required")
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 bytes (set KONNECT_JWT_SECRET)")
	}
	return nil
}

// parseDurations converts the raw duration strings into time.Duration values
func parseDurations(cfg *Config) error {
	var err error

	if cfg.API.RequestTimeoutRaw != "" {
		cfg.API.RequestTimeout, err = time.ParseDuration(cfg.API.RequestTimeoutRaw)
		if err != nil {
			return fmt.Errorf("parsing request_timeout %q: %w", cfg.API.RequestTimeoutRaw, err)
		}
	}

	if cfg.Auth.TokenTTLRaw != "" {
		cfg.Auth.TokenTTL, err = time.ParseDuration(cfg.Auth.TokenTTLRaw)
		if err != nil {
			return fmt.Errorf("parsing token_ttl %q: %w", cfg.Auth.TokenTTLRaw, err)
		}
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.API.RequestTimeout == 0 {
		cfg.API.RequestTimeout = 30 * time.Second
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 24 * time.Hour
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}

// ResolvePath returns the config file path.
// Priority: flag value > KONNECT_CONFIG > XDG_CONFIG_HOME/konnect/config.yaml > ~/.config/konnect/config.yaml
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.yaml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "konnect", "config.yaml")
}

// DataPath returns the konnect data directory.
// Priority: XDG_DATA_HOME/konnect > ~/.local/share/konnect
func DataPath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "data" // fallback
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	return filepath.Join(dataDir, "konnect")
}
