// Package config provides configuration management for zodplay using Viper.
package config

import (
	stderrors "errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/zodplay/internal/errors"
	"github.com/thoreinstein/zodplay/internal/paths"
	"github.com/thoreinstein/zodplay/pkg/fileutil"
)

// AppName is the application name used for config file naming.
const AppName = "zodplay"

// Defaults for the composed command line and the playground workspace.
const (
	DefaultProgram        = "pnpx openapi-zod-client"
	DefaultSampleInput    = "./petstore.yaml"
	DefaultOutputPath     = "api.client.ts"
	DefaultPresetTemplate = "default"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version        int    `mapstructure:"version" yaml:"version"`
	Program        string `mapstructure:"program" yaml:"program"`
	SampleInput    string `mapstructure:"sample_input" yaml:"sample_input"`
	OutputPath     string `mapstructure:"output_path" yaml:"output_path"`
	PresetTemplate string `mapstructure:"preset_template" yaml:"preset_template"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:        1,
		Program:        DefaultProgram,
		SampleInput:    DefaultSampleInput,
		OutputPath:     DefaultOutputPath,
		PresetTemplate: DefaultPresetTemplate,
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), AppName))

	viper.SetEnvPrefix("ZODPLAY")
	viper.AutomaticEnv()

	d := Default()
	viper.SetDefault("version", d.Version)
	viper.SetDefault("program", d.Program)
	viper.SetDefault("sample_input", d.SampleInput)
	viper.SetDefault("output_path", d.OutputPath)
	viper.SetDefault("preset_template", d.PresetTemplate)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file and a missing file
// is an error. If path is empty, the default locations are searched and a
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, stderrors.Join(errs...))
	}

	return &cfg, nil
}

// Keys lists the configuration keys in display order.
func Keys() []string {
	return []string{"version", "program", "sample_input", "output_path", "preset_template"}
}

// FilePath returns the user config file location.
func FilePath() string {
	return filepath.Join(paths.ConfigDir(), "config.yaml")
}

// Current builds a Config from the values Viper holds, without validating.
func Current() *Config {
	return &Config{
		Version:        viper.GetInt("version"),
		Program:        viper.GetString("program"),
		SampleInput:    viper.GetString("sample_input"),
		OutputPath:     viper.GetString("output_path"),
		PresetTemplate: viper.GetString("preset_template"),
	}
}

// Save validates cfg and writes it to path as YAML, creating the parent
// directory.
func Save(cfg *Config, path string) error {
	if errs := Validate(cfg); len(errs) > 0 {
		return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, stderrors.Join(errs...))
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	return errors.Wrap(fileutil.WriteAtomic(path, data), "writing config file")
}
