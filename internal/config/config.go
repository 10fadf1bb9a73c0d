// File: internal/config/config.go
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the entire application configuration. Values come from the
// config file, CURBSIDE_* environment variables, and CLI flag overrides, in
// ascending precedence.
type Config struct {
	Logger     LoggerConfig     `mapstructure:"logger" yaml:"logger"`
	Generator  GeneratorConfig  `mapstructure:"generator" yaml:"generator"`
	Simulation SimulationConfig `mapstructure:"simulation" yaml:"simulation"`
	Report     ReportConfig     `mapstructure:"report" yaml:"report"`
}

// LoggerConfig controls the zap logger set up in internal/observability.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// GeneratorConfig carries the bin-fill probabilities. These belong to the
// environment model, never to the policy: the agent only ever sees the two
// booleans a draw produces.
type GeneratorConfig struct {
	// PItem is the probability that a bin contains its own waste type.
	PItem float64 `mapstructure:"p_item" yaml:"p_item"`
	// PContam is the probability that a bin contains the wrong waste type.
	PContam float64 `mapstructure:"p_contam" yaml:"p_contam"`
}

// SimulationConfig carries run parameters. Seed 0 means derive one from the
// clock; Workers 0 or 1 means sequential evaluation.
type SimulationConfig struct {
	DayType   string `mapstructure:"day_type" yaml:"day_type"`
	Locations int    `mapstructure:"locations" yaml:"locations"`
	Seed      int64  `mapstructure:"seed" yaml:"seed"`
	Workers   int    `mapstructure:"workers" yaml:"workers"`
}

// ReportConfig selects how a finished run is rendered.
type ReportConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
	Output string `mapstructure:"output" yaml:"output"`
}

// SetDefaults initializes default values on the given viper instance. The
// probabilities and the 20-location fallback match the original route survey
// the simulation was calibrated against.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "curbside-cli")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	v.SetDefault("generator.p_item", 0.6)
	v.SetDefault("generator.p_contam", 0.25)

	v.SetDefault("simulation.day_type", "garbage")
	v.SetDefault("simulation.locations", 20)
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.workers", 0)

	v.SetDefault("report.format", "text")
	v.SetDefault("report.output", "")
}

// Load applies defaults, unmarshals the resolved settings, and validates
// them.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Generator.PItem < 0 || c.Generator.PItem > 1 {
		return fmt.Errorf("generator.p_item must be within [0, 1], got %v", c.Generator.PItem)
	}
	if c.Generator.PContam < 0 || c.Generator.PContam > 1 {
		return fmt.Errorf("generator.p_contam must be within [0, 1], got %v", c.Generator.PContam)
	}
	if c.Simulation.Locations < 1 {
		return fmt.Errorf("simulation.locations must be at least 1, got %d", c.Simulation.Locations)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation.workers must not be negative, got %d", c.Simulation.Workers)
	}
	return nil
}
