package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileConfig mirrors the layout of config.toml.
type FileConfig struct {
	Store StoreConfig `toml:"store"`
	Audit AuditConfig `toml:"audit"`
}

type StoreConfig struct {
	Dir    string `toml:"dir"`
	Prefix string `toml:"prefix"`
	Suffix string `toml:"suffix"`
	Gpg    string `toml:"gpg"`
}

type AuditConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// ConfigFilePath returns the location of the user's config file.
func ConfigFilePath() string {
	return filepath.Join(UserConfigsPath, "config.toml")
}

// LoadFileConfig loads config.toml. A missing file is not an error and
// yields a zero config.
func LoadFileConfig() (*FileConfig, error) {
	config := &FileConfig{}

	configPath := ConfigFilePath()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}

	return config, nil
}

// SaveFileConfig writes the config to config.toml, creating the directory
// as needed.
func SaveFileConfig(config *FileConfig) error {
	if err := SaveTOML(ConfigFilePath(), config); err != nil {
		return fmt.Errorf("failed to save config file: %w", err)
	}
	return nil
}

// Apply overlays the non-empty file values onto the settings. The suffix is
// deliberately not defaulted, so an explicit empty suffix stays empty.
func (c *FileConfig) Apply(s *Settings) {
	if c.Store.Dir != "" {
		s.StoreDir = c.Store.Dir
	}
	if c.Store.Prefix != "" {
		s.Prefix = c.Store.Prefix
	}
	if c.Store.Suffix != "" {
		s.Suffix = c.Store.Suffix
	}
	if c.Store.Gpg != "" {
		s.GpgBinary = c.Store.Gpg
	}
	s.AuditEnabled = c.Audit.Enabled
	if c.Audit.Path != "" {
		s.AuditPath = c.Audit.Path
	}
}
