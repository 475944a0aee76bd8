// Package config loads seminar settings from defaults, an optional YAML file
// and SEMINAR_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvPrefix prefixes every environment override, e.g. SEMINAR_NARROW_WIDTH.
const EnvPrefix = "SEMINAR"

// Config is the full set of settings.
type Config struct {
	NarrowWidth int             `mapstructure:"narrow_width" yaml:"narrow_width"`
	ShowNotes   bool            `mapstructure:"show_notes" yaml:"show_notes"`
	LogFile     string          `mapstructure:"log_file" yaml:"log_file"`
	Audience    AudienceConfig  `mapstructure:"audience" yaml:"audience"`
	SSH         SSHConfig       `mapstructure:"ssh" yaml:"ssh"`
	Telemetry   TelemetryConfig `mapstructure:"telemetry" yaml:"telemetry"`
}

// AudienceConfig configures the browser mirror. An empty Addr disables it.
type AudienceConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// SSHConfig configures `seminar ssh`.
type SSHConfig struct {
	Addr        string `mapstructure:"addr" yaml:"addr"`
	HostKeyPath string `mapstructure:"host_key_path" yaml:"host_key_path"`
}

// TelemetryConfig configures trace export. An empty Endpoint disables it.
type TelemetryConfig struct {
	Endpoint    string `mapstructure:"endpoint" yaml:"endpoint"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() (Config, error) {
	dir, err := DefaultDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		NarrowWidth: 100,
		ShowNotes:   true,
		SSH: SSHConfig{
			Addr:        ":2222",
			HostKeyPath: filepath.Join(dir, "ssh_host_ed25519"),
		},
		Telemetry: TelemetryConfig{
			ServiceName: "seminar",
		},
	}, nil
}

// DefaultDir returns $HOME/.seminar.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".seminar"), nil
}

// DefaultConfigPath returns $HOME/.seminar/config.yaml.
func DefaultConfigPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
