package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// tomlConfig mirrors Config with pointers so unset keys keep their defaults.
type tomlConfig struct {
	Server struct {
		Addr        *string  `toml:"addr"`
		ProxyPrefix *string  `toml:"proxy_prefix"`
		Stylesheets []string `toml:"stylesheets"`
		Scripts     []string `toml:"scripts"`
	} `toml:"server"`
	Data struct {
		Source   *string  `toml:"source"`
		Fixtures []string `toml:"fixtures"`
		DSN      *string  `toml:"dsn"`
	} `toml:"data"`
	Model struct {
		Path *string `toml:"path"`
	} `toml:"model"`
	Charts struct {
		Format *string `toml:"format"`
		Width  *int    `toml:"width"`
		Height *int    `toml:"height"`
	} `toml:"charts"`
	Output struct {
		Directory      *string `toml:"directory"`
		MaxConcurrency *int    `toml:"max_concurrency"`
		TimeoutSeconds *int    `toml:"timeout_seconds"`
	} `toml:"output"`
	Logging struct {
		Level  *string `toml:"level"`
		Format *string `toml:"format"`
	} `toml:"logging"`
}

// LoadTomlConfig reads a .empdash.toml file and merges it onto the defaults.
func LoadTomlConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var tc tomlConfig
	if err := toml.Unmarshal(data, &tc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	config := DefaultConfig()
	mergeToml(config, &tc)
	return config, nil
}

func mergeToml(c *Config, tc *tomlConfig) {
	setString(&c.Server.Addr, tc.Server.Addr)
	setString(&c.Server.ProxyPrefix, tc.Server.ProxyPrefix)
	setSlice(&c.Server.Stylesheets, tc.Server.Stylesheets)
	setSlice(&c.Server.Scripts, tc.Server.Scripts)

	setString(&c.Data.Source, tc.Data.Source)
	setSlice(&c.Data.Fixtures, tc.Data.Fixtures)
	setString(&c.Data.DSN, tc.Data.DSN)

	setString(&c.Model.Path, tc.Model.Path)

	setString(&c.Charts.Format, tc.Charts.Format)
	setInt(&c.Charts.Width, tc.Charts.Width)
	setInt(&c.Charts.Height, tc.Charts.Height)

	setString(&c.Output.Directory, tc.Output.Directory)
	setInt(&c.Output.MaxConcurrency, tc.Output.MaxConcurrency)
	setInt(&c.Output.TimeoutSeconds, tc.Output.TimeoutSeconds)

	setString(&c.Logging.Level, tc.Logging.Level)
	setString(&c.Logging.Format, tc.Logging.Format)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setSlice(dst *[]string, v []string) {
	if v != nil {
		*dst = append([]string(nil), v...)
	}
}
