package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds project-level settings loaded from splicepath.yml.
type ProjectConfig struct {
	Graph     string `yaml:"graph,omitempty"`    // graph description file
	Store     string `yaml:"store,omitempty"`    // memory | kuzu
	KuzuPath  string `yaml:"kuzuPath,omitempty"` // kuzu database directory
	Workers   int    `yaml:"workers,omitempty"`
	LogLevel  string `yaml:"logLevel,omitempty"`
	LogFormat string `yaml:"logFormat,omitempty"` // text | json
	MCPAddr   string `yaml:"mcpAddr,omitempty"`
}

// Defaults applied by WithDefaults.
const (
	DefaultStore     = "memory"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultMCPAddr   = "localhost:8765"
)

// Load attempts to read splicepath.yml or splicepath.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range []string{"splicepath.yml", "splicepath.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: %s: %w", name, err)
		}
		return &cfg, nil
	}
	return &ProjectConfig{}, nil
}

// WithDefaults returns a copy of c with empty fields filled in.
func (c ProjectConfig) WithDefaults() ProjectConfig {
	if c.Store == "" {
		c.Store = DefaultStore
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
	if c.MCPAddr == "" {
		c.MCPAddr = DefaultMCPAddr
	}
	return c
}
