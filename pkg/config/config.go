// Copyright 2026 cloudygreybeard
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/francescopioparadiso/Links-Folder/pkg/item"
)

// Config represents the full configuration.
type Config struct {
	// StoragePath overrides the location of links.json.
	StoragePath string `yaml:"storage_path,omitempty"`

	// ExportDir is the last directory an export was written to.
	ExportDir string `yaml:"export_dir,omitempty"`

	Inputs InputsConfig `yaml:"inputs"`
	Import ImportConfig `yaml:"import"`
	Render RenderConfig `yaml:"render"`
}

// InputsConfig configures the browser importers.
type InputsConfig struct {
	Chrome   InputConfig `yaml:"chrome"`
	Edge     InputConfig `yaml:"edge"`
	Firefox  InputConfig `yaml:"firefox"`
	Safari   InputConfig `yaml:"safari"`
	Chromium InputConfig `yaml:"chromium"`
	Brave    InputConfig `yaml:"brave"`
}

// InputConfig configures a single importer.
type InputConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Profile    string `yaml:"profile,omitempty"`
	CustomPath string `yaml:"custom_path,omitempty"`
}

// ImportConfig configures URL filtering applied to imported links.
type ImportConfig struct {
	ExcludeURLPatterns []string `yaml:"exclude_url_patterns,omitempty"`
	ExcludeProtocols   []string `yaml:"exclude_protocols"`
	WarnProtocols      []string `yaml:"warn_protocols"`
	MaxURLLength       int      `yaml:"max_url_length"`  // 0 = no limit
	WarnURLLength      int      `yaml:"warn_url_length"` // 0 = no warning
}

// RenderConfig configures rendering options.
type RenderConfig struct {
	IncludeMetadata bool   `yaml:"include_metadata"`
	IncludeIcons    bool   `yaml:"include_icons"`
	Style           string `yaml:"style"`
}

// Default returns a configuration with sensible defaults.
func Default() Config {
	return Config{
		Inputs: InputsConfig{
			Chrome:   InputConfig{Enabled: true},
			Edge:     InputConfig{Enabled: true},
			Firefox:  InputConfig{Enabled: true},
			Safari:   InputConfig{Enabled: true},
			Chromium: InputConfig{Enabled: true},
			Brave:    InputConfig{Enabled: true},
		},
		Import: ImportConfig{
			ExcludeProtocols: []string{"data", "javascript"},
			WarnProtocols:    []string{"file", "chrome", "about", "blob"},
			WarnURLLength:    2048,
		},
		Render: RenderConfig{
			IncludeIcons: true,
			Style:        "textual",
		},
	}
}

// Load reads configuration from a file, merging with defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// SupportDir returns the per-user application support directory.
func SupportDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".linksfolder")
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(SupportDir(), "config.yaml")
}

// LocalPath returns a local config file path if it exists.
func LocalPath() string {
	paths := []string{
		"linksfolder.yaml",
		"linksfolder.yml",
		".linksfolder.yaml",
		".linksfolder.yml",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// Resolve picks the config file to use: the explicit path, a local file,
// or the per-user default.
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if local := LocalPath(); local != "" {
		return local
	}
	return DefaultPath()
}

// AssetsPath returns the bundled links file shipped next to the executable.
func AssetsPath() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(exe), "assets", "links.json")
}

// GetInputConfig returns the config for a specific importer.
func (c *Config) GetInputConfig(name string) InputConfig {
	switch name {
	case "chrome":
		return c.Inputs.Chrome
	case "edge":
		return c.Inputs.Edge
	case "firefox":
		return c.Inputs.Firefox
	case "safari":
		return c.Inputs.Safari
	case "chromium":
		return c.Inputs.Chromium
	case "brave":
		return c.Inputs.Brave
	default:
		return InputConfig{Enabled: true}
	}
}

// FilterOptions converts the import rules into item.FilterOptions.
func (c *Config) FilterOptions() item.FilterOptions {
	return item.FilterOptions{
		ExcludeURLPatterns: c.Import.ExcludeURLPatterns,
		ExcludeProtocols:   c.Import.ExcludeProtocols,
		WarnProtocols:      c.Import.WarnProtocols,
		MaxURLLength:       c.Import.MaxURLLength,
		WarnURLLength:      c.Import.WarnURLLength,
	}
}
