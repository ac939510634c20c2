package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"

	"gopkg.in/yaml.v3"
)

// defaultConfigTmpl contains the embedded default configuration template
//
//go:embed default_config.yaml.tmpl
var defaultConfigTmpl string

// GenerateDefaultConfigYAML renders the commented default config file
// written by `empdash init`.
func GenerateDefaultConfigYAML() (string, error) {
	tmpl, err := template.New("default_config").Parse(defaultConfigTmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse default config template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, DefaultConfig()); err != nil {
		return "", fmt.Errorf("failed to render default config template: %w", err)
	}

	return buf.String(), nil
}

// LoadDefaultConfigFromYAML parses the rendered default config
func LoadDefaultConfigFromYAML() (*Config, error) {
	configYAML, err := GenerateDefaultConfigYAML()
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal([]byte(configYAML), config); err != nil {
		return nil, fmt.Errorf("failed to parse default config: %w", err)
	}
	return config, nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
