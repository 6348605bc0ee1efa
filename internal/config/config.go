package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/walklab/internal/walk"
)

const (
	DefaultSamples = 5000
	DefaultSteps   = 19 // must be odd
	DefaultTickMs  = 500
	DefaultChart   = "bar"
	DefaultWorkers = 1
)

type Config struct {
	Samples int    `yaml:"samples"`
	Steps   int    `yaml:"steps"`
	TickMs  int    `yaml:"tick_ms"`
	Chart   string `yaml:"chart"`
	Seed    int64  `yaml:"seed"`
	Workers int    `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		Samples: DefaultSamples,
		Steps:   DefaultSteps,
		TickMs:  DefaultTickMs,
		Chart:   DefaultChart,
		Workers: DefaultWorkers,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := c.WalkConfig().Validate(); err != nil {
		return err
	}
	if c.TickMs <= 0 {
		return fmt.Errorf("tick_ms must be positive, got %d", c.TickMs)
	}
	if c.Chart != "bar" && c.Chart != "line" {
		return fmt.Errorf("unknown chart variant: %s", c.Chart)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

func (c *Config) WalkConfig() walk.Config {
	return walk.Config{Samples: c.Samples, Steps: c.Steps}
}
