package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SettingsPathEnv points at an optional yaml settings file.
const SettingsPathEnv = "MINIGREP_CONFIG"

type Settings struct {
	Env        string `yaml:"env"`
	LogLevel   string `yaml:"log_level"`
	LogDir     string `yaml:"log_dir"`
	Profile    string `yaml:"profile"`
	ProfileDir string `yaml:"profile_dir"`
}

func DefaultSettings() *Settings {
	return &Settings{
		Env:        "local",
		LogLevel:   "warn",
		LogDir:     "logs",
		ProfileDir: ".",
	}
}

// LoadSettings overlays the file at path on top of the defaults.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultSettings()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	switch cfg.Profile {
	case "", "cpu", "mem":
	default:
		return nil, fmt.Errorf("settings %s: unknown profile %q", path, cfg.Profile)
	}
	return cfg, nil
}

// ProvideSettings loads the file named by MINIGREP_CONFIG, or returns the
// defaults when it is unset.
func ProvideSettings(lookup LookupEnv) (*Settings, error) {
	path, ok := lookup(SettingsPathEnv)
	if !ok || path == "" {
		return DefaultSettings(), nil
	}
	return LoadSettings(path)
}
