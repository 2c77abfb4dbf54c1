package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all application configuration.
//
// Defaults come from Default. A config file, when given, overrides them,
// and environment variables override both.
type Config struct {
	Server  ServerConfig  `yaml:"server" toml:"server"`
	Logging LogConfig     `yaml:"logging" toml:"logging"`
	Fetch   FetchConfig   `yaml:"fetch" toml:"fetch"`
	Search  SearchConfig  `yaml:"search" toml:"search"`
	API     APIConfig     `yaml:"api" toml:"api"`
	MCP     MCPConfig     `yaml:"mcp" toml:"mcp"`
	Metrics MetricsConfig `yaml:"metrics" toml:"metrics"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" yaml:"port" toml:"port"`
	Host string `envconfig:"HOST" yaml:"host" toml:"host"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" yaml:"level" toml:"level"`
	Development bool   `envconfig:"LOG_DEV" yaml:"development" toml:"development"`
}

// FetchConfig holds outbound HTTP configuration.
type FetchConfig struct {
	Timeout      Duration `envconfig:"FETCH_TIMEOUT" yaml:"timeout" toml:"timeout"`
	UserAgent    string   `envconfig:"FETCH_USER_AGENT" yaml:"user_agent" toml:"user_agent"`
	MaxBodyBytes int64    `envconfig:"FETCH_MAX_BODY_BYTES" yaml:"max_body_bytes" toml:"max_body_bytes"`
}

// SearchConfig holds web search configuration.
type SearchConfig struct {
	Endpoint string `envconfig:"SEARCH_ENDPOINT" yaml:"endpoint" toml:"endpoint"`
}

// APIConfig holds the public API endpoints used by the api provider.
type APIConfig struct {
	WeatherEndpoint string `envconfig:"WEATHER_ENDPOINT" yaml:"weather_endpoint" toml:"weather_endpoint"`
	NewsEndpoint    string `envconfig:"NEWS_ENDPOINT" yaml:"news_endpoint" toml:"news_endpoint"`
	CryptoEndpoint  string `envconfig:"CRYPTO_ENDPOINT" yaml:"crypto_endpoint" toml:"crypto_endpoint"`
	IPInfoEndpoint  string `envconfig:"IPINFO_ENDPOINT" yaml:"ipinfo_endpoint" toml:"ipinfo_endpoint"`
}

// MCPConfig holds Model Context Protocol configuration.
type MCPConfig struct {
	Enabled bool   `envconfig:"MCP_ENABLED" yaml:"enabled" toml:"enabled"`
	Path    string `envconfig:"MCP_PATH" yaml:"path" toml:"path"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled bool `envconfig:"METRICS_ENABLED" yaml:"enabled" toml:"enabled"`
}

// Duration is a time.Duration written as text ("30s") in files and
// environment variables.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := Default()
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads a YAML (.yaml, .yml) or TOML (.toml) file, then applies
// environment overrides. An empty path behaves like Load.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return Load()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("unsupported config file type %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides cfg with the variables that are set. Unset variables
// leave the current value alone because no field carries a default tag.
func applyEnv(cfg *Config) error {
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		Fetch: FetchConfig{
			Timeout:      Duration(30 * time.Second),
			UserAgent:    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			MaxBodyBytes: 10 * 1024 * 1024,
		},
		Search: SearchConfig{
			Endpoint: "https://html.duckduckgo.com/html/",
		},
		API: APIConfig{
			WeatherEndpoint: "https://wttr.in/",
			NewsEndpoint:    "https://hacker-news.firebaseio.com/v0/",
			CryptoEndpoint:  "https://api.coingecko.com/api/v3/simple/price",
			IPInfoEndpoint:  "http://ip-api.com/json/",
		},
		MCP: MCPConfig{
			Enabled: true,
			Path:    "/mcp",
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q", c.Server.Port)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}

	if c.Fetch.Timeout.Std() <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %s", c.Fetch.Timeout.Std())
	}
	if c.Fetch.MaxBodyBytes <= 0 {
		return fmt.Errorf("fetch max body bytes must be positive, got %d", c.Fetch.MaxBodyBytes)
	}

	endpoints := []struct{ name, value string }{
		{"search", c.Search.Endpoint},
		{"weather", c.API.WeatherEndpoint},
		{"news", c.API.NewsEndpoint},
		{"crypto", c.API.CryptoEndpoint},
		{"ipinfo", c.API.IPInfoEndpoint},
	}
	for _, e := range endpoints {
		if !validEndpoint(e.value) {
			return fmt.Errorf("invalid %s endpoint %q", e.name, e.value)
		}
	}

	if c.MCP.Enabled && !strings.HasPrefix(c.MCP.Path, "/") {
		return fmt.Errorf("mcp path must start with '/', got %q", c.MCP.Path)
	}
	return nil
}

func validEndpoint(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
