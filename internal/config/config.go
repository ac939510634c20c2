package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Data source kinds
const (
	SourceFixtures = "fixtures"
	SourcePostgres = "postgres"
)

// Default server and rendering settings
const (
	// DefaultAddr is where the dashboard listens; the original deployment sat
	// behind a proxy on port 5001.
	DefaultAddr = ":5001"

	DefaultChartFormat = "png"
	DefaultChartWidth  = 640
	DefaultChartHeight = 400

	DefaultOutputDirectory = "reports"
	DefaultMaxConcurrency  = 4
	DefaultTimeoutSeconds  = 120

	DefaultLogLevel  = "info"
	DefaultLogFormat = "auto"
)

// Default page assets
var (
	DefaultStylesheets = []string{"https://cdn.jsdelivr.net/npm/@picocss/pico@2/css/pico.min.css"}
	DefaultScripts     = []string{"https://unpkg.com/htmx.org@1.9.12"}
	DefaultFixtures    = []string{"data/**/*.yaml"}
)

// Config represents the main configuration structure
type Config struct {
	// Server holds HTTP server configuration
	Server ServerConfig `mapstructure:"server" yaml:"server" toml:"server"`

	// Data selects and configures the employee events source
	Data DataConfig `mapstructure:"data" yaml:"data" toml:"data"`

	// Model locates the recruitment risk classifier
	Model ModelConfig `mapstructure:"model" yaml:"model" toml:"model"`

	// Charts configures the plotting backend
	Charts ChartsConfig `mapstructure:"charts" yaml:"charts" toml:"charts"`

	// Output configures file reports written by render and export
	Output OutputConfig `mapstructure:"output" yaml:"output" toml:"output"`

	// Logging configures the process logger
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr" toml:"addr"`

	// ProxyPrefix is prepended to form actions and htmx urls when the
	// dashboard is served under a path prefix
	ProxyPrefix string `mapstructure:"proxy_prefix" yaml:"proxy_prefix" toml:"proxy_prefix"`

	Stylesheets []string `mapstructure:"stylesheets" yaml:"stylesheets" toml:"stylesheets"`
	Scripts     []string `mapstructure:"scripts" yaml:"scripts" toml:"scripts"`
}

// DataConfig selects the data source
type DataConfig struct {
	// Source is "fixtures" or "postgres"
	Source string `mapstructure:"source" yaml:"source" toml:"source"`

	// Fixtures are doublestar patterns of YAML dataset files
	Fixtures []string `mapstructure:"fixtures" yaml:"fixtures" toml:"fixtures"`

	// DSN is the PostgreSQL connection string
	DSN string `mapstructure:"dsn" yaml:"dsn,omitempty" toml:"dsn"`
}

// ModelConfig locates the classifier. An empty path uses the built-in model.
type ModelConfig struct {
	Path string `mapstructure:"path" yaml:"path,omitempty" toml:"path"`
}

// ChartsConfig configures chart encoding
type ChartsConfig struct {
	Format string `mapstructure:"format" yaml:"format" toml:"format"`
	Width  int    `mapstructure:"width" yaml:"width" toml:"width"`
	Height int    `mapstructure:"height" yaml:"height" toml:"height"`
}

// OutputConfig configures written reports
type OutputConfig struct {
	Directory      string `mapstructure:"directory" yaml:"directory" toml:"directory"`
	MaxConcurrency int    `mapstructure:"max_concurrency" yaml:"max_concurrency" toml:"max_concurrency"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds" toml:"timeout_seconds"`
}

// LoggingConfig configures the logger
type LoggingConfig struct {
	// Level is a zerolog level name
	Level string `mapstructure:"level" yaml:"level" toml:"level"`

	// Format is "auto", "console" or "json"; auto picks console on a terminal
	Format string `mapstructure:"format" yaml:"format" toml:"format"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:        DefaultAddr,
			Stylesheets: append([]string(nil), DefaultStylesheets...),
			Scripts:     append([]string(nil), DefaultScripts...),
		},
		Data: DataConfig{
			Source:   SourceFixtures,
			Fixtures: append([]string(nil), DefaultFixtures...),
		},
		Charts: ChartsConfig{
			Format: DefaultChartFormat,
			Width:  DefaultChartWidth,
			Height: DefaultChartHeight,
		},
		Output: OutputConfig{
			Directory:      DefaultOutputDirectory,
			MaxConcurrency: DefaultMaxConcurrency,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// LoadConfig loads configuration from file or returns default config.
// EMPDASH_* environment variables override file values
// (e.g. EMPDASH_SERVER_ADDR, EMPDASH_DATA_DSN).
func LoadConfig(configPath string) (*Config, error) {
	// If no config path specified, try to find default config files
	if configPath == "" {
		configPath = findDefaultConfig()
	}

	if strings.EqualFold(filepath.Ext(configPath), ".toml") {
		config, err := LoadTomlConfig(configPath)
		if err != nil {
			return nil, err
		}
		if err := applyEnv(config); err != nil {
			return nil, err
		}
		return config, validated(config)
	}

	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	config := DefaultConfig()
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return config, validated(config)
}

func validated(config *Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// newViper returns a viper instance with env overrides bound for every key.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("EMPDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only sees keys viper already knows about.
	d := DefaultConfig()
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.proxy_prefix", d.Server.ProxyPrefix)
	v.SetDefault("server.stylesheets", d.Server.Stylesheets)
	v.SetDefault("server.scripts", d.Server.Scripts)
	v.SetDefault("data.source", d.Data.Source)
	v.SetDefault("data.fixtures", d.Data.Fixtures)
	v.SetDefault("data.dsn", d.Data.DSN)
	v.SetDefault("model.path", d.Model.Path)
	v.SetDefault("charts.format", d.Charts.Format)
	v.SetDefault("charts.width", d.Charts.Width)
	v.SetDefault("charts.height", d.Charts.Height)
	v.SetDefault("output.directory", d.Output.Directory)
	v.SetDefault("output.max_concurrency", d.Output.MaxConcurrency)
	v.SetDefault("output.timeout_seconds", d.Output.TimeoutSeconds)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	return v
}

// applyEnv overlays environment overrides onto a config loaded outside viper.
func applyEnv(config *Config) error {
	v := newViper()
	for _, key := range v.AllKeys() {
		env := "EMPDASH_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if _, ok := os.LookupEnv(env); !ok {
			continue
		}
		switch key {
		case "server.addr":
			config.Server.Addr = v.GetString(key)
		case "server.proxy_prefix":
			config.Server.ProxyPrefix = v.GetString(key)
		case "server.stylesheets":
			config.Server.Stylesheets = v.GetStringSlice(key)
		case "server.scripts":
			config.Server.Scripts = v.GetStringSlice(key)
		case "data.source":
			config.Data.Source = v.GetString(key)
		case "data.fixtures":
			config.Data.Fixtures = v.GetStringSlice(key)
		case "data.dsn":
			config.Data.DSN = v.GetString(key)
		case "model.path":
			config.Model.Path = v.GetString(key)
		case "charts.format":
			config.Charts.Format = v.GetString(key)
		case "charts.width":
			config.Charts.Width = v.GetInt(key)
		case "charts.height":
			config.Charts.Height = v.GetInt(key)
		case "output.directory":
			config.Output.Directory = v.GetString(key)
		case "output.max_concurrency":
			config.Output.MaxConcurrency = v.GetInt(key)
		case "output.timeout_seconds":
			config.Output.TimeoutSeconds = v.GetInt(key)
		case "logging.level":
			config.Logging.Level = v.GetString(key)
		case "logging.format":
			config.Logging.Format = v.GetString(key)
		default:
			return fmt.Errorf("unhandled config key %s", key)
		}
	}
	return nil
}

// findDefaultConfig looks for default configuration files in common locations
func findDefaultConfig() string {
	candidates := []string{
		"empdash.yaml",
		"empdash.yml",
		".empdash.yaml",
		".empdash.yml",
		".empdash.toml",
	}

	// Check current directory first
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	// Check home directory
	if home, err := os.UserHomeDir(); err == nil {
		for _, candidate := range candidates {
			path := filepath.Join(home, candidate)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr cannot be empty")
	}
	if c.Server.ProxyPrefix != "" && !strings.HasPrefix(c.Server.ProxyPrefix, "/") {
		return fmt.Errorf("server.proxy_prefix must start with '/', got '%s'", c.Server.ProxyPrefix)
	}

	switch c.Data.Source {
	case SourceFixtures:
		if len(c.Data.Fixtures) == 0 {
			return fmt.Errorf("data.fixtures cannot be empty when data.source is '%s'", SourceFixtures)
		}
	case SourcePostgres:
		if c.Data.DSN == "" {
			return fmt.Errorf("data.dsn is required when data.source is '%s'", SourcePostgres)
		}
	default:
		return fmt.Errorf("invalid data.source '%s', must be one of: %s, %s", c.Data.Source, SourceFixtures, SourcePostgres)
	}

	validFormats := map[string]bool{
		"png": true,
		"svg": true,
	}
	if !validFormats[strings.ToLower(c.Charts.Format)] {
		return fmt.Errorf("invalid charts.format '%s', must be one of: png, svg", c.Charts.Format)
	}
	if c.Charts.Width < 100 || c.Charts.Height < 100 {
		return fmt.Errorf("charts.width and charts.height must be >= 100, got %dx%d", c.Charts.Width, c.Charts.Height)
	}

	if c.Output.Directory == "" {
		return fmt.Errorf("output.directory cannot be empty")
	}
	if c.Output.MaxConcurrency < 1 {
		return fmt.Errorf("output.max_concurrency must be >= 1, got %d", c.Output.MaxConcurrency)
	}
	if c.Output.TimeoutSeconds < 0 {
		return fmt.Errorf("output.timeout_seconds must be >= 0, got %d", c.Output.TimeoutSeconds)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid logging.level '%s', must be one of: trace, debug, info, warn, error", c.Logging.Level)
	}

	validLogFormats := map[string]bool{
		"auto":    true,
		"console": true,
		"json":    true,
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("invalid logging.format '%s', must be one of: auto, console, json", c.Logging.Format)
	}

	return nil
}
