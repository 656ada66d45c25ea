package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds settings loaded from goframe.yml.
type Config struct {
	NAString  string `yaml:"naString,omitempty"`
	Separator string `yaml:"separator,omitempty"`
	MaxRows   int    `yaml:"maxRows,omitempty"`
	Verbose   bool   `yaml:"verbose,omitempty"`
	DataDir   string `yaml:"dataDir,omitempty"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{NAString: "NA", Separator: " | "}
}

// Load attempts to read goframe.yml or goframe.yaml from the given
// directory. Returns the default config (not an error) if no config file
// exists. Fields left out of the file keep their defaults.
func Load(dir string) (*Config, error) {
	for _, name := range []string{"goframe.yml", "goframe.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := Default()
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "config: parse %s", path)
		}
		if cfg.MaxRows < 0 {
			return nil, errors.Errorf("config: maxRows must not be negative, got %d", cfg.MaxRows)
		}
		return cfg, nil
	}
	return Default(), nil
}
