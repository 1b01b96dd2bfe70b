// Package config loads the CLI's optional YAML configuration file via
// spf13/viper, the same ReadInConfig-then-Unmarshal pattern the teacher
// pack uses in tabular/reinforcement/learning.go's FromYaml.
package config

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the CLI's tunable defaults. The subcommands read only
// CardSetPath (through loadCardDB, as the default for --cards); the other
// fields are parsed but no subcommand consults them.
type Config struct {
	DefaultStore      string `mapstructure:"default_store"`
	DefaultMaxActions int    `mapstructure:"default_max_actions"`
	DefaultRollouts   int    `mapstructure:"default_rollouts"`
	PreferNonPass     bool   `mapstructure:"prefer_non_pass"`
	CardSetPath       string `mapstructure:"card_set_path"`
}

// FromYAML reads path as a YAML config file. There's no strong reason to
// use viper over plain yaml.Unmarshal here beyond keeping the CLI's
// config loading consistent with the rest of the pack's tooling.
func FromYAML(path string) (*Config, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))

	if err := vp.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "config: read %s", path)
	}

	cfg := &Config{}
	if err := vp.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	return cfg, nil
}

// Default returns the CLI's built-in defaults, used when no -config flag
// is given.
func Default() *Config {
	return &Config{
		DefaultStore:      "memory",
		DefaultMaxActions: 500,
		DefaultRollouts:   1,
		PreferNonPass:     false,
	}
}
