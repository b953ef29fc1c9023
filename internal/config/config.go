package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMethod      = "adams-bashforth-4"
	DefaultReference   = "adams-bashforth-4"
	DefaultStepSize    = 0.1
	DefaultStartTime   = 0.0
	DefaultEndTime     = 24.0
	DefaultTolerance   = 1e-10
	DefaultMaxIter     = 50
	DefaultTemperature = 20.0
	DefaultWindSpeed   = 5.0
)

type Config struct {
	Method    string       `yaml:"method"`
	Reference string       `yaml:"reference"`
	StepSize  float64      `yaml:"step_size"`
	StartTime float64      `yaml:"start_time"`
	EndTime   float64      `yaml:"end_time"`
	InitState []float64    `yaml:"init_state"`
	Solver    SolverConfig `yaml:"solver"`
	Env       EnvConfig    `yaml:"env"`
}

type SolverConfig struct {
	Tolerance float64 `yaml:"tolerance"`
	MaxIter   int     `yaml:"max_iter"`
}

type EnvConfig struct {
	Temperature float64 `yaml:"temperature"`
	WindSpeed   float64 `yaml:"wind_speed"`
}

func DefaultConfig() *Config {
	return &Config{
		Method:    DefaultMethod,
		Reference: DefaultReference,
		StepSize:  DefaultStepSize,
		StartTime: DefaultStartTime,
		EndTime:   DefaultEndTime,
		InitState: []float64{10, 10, 50, 0},
		Solver: SolverConfig{
			Tolerance: DefaultTolerance,
			MaxIter:   DefaultMaxIter,
		},
		Env: EnvConfig{
			Temperature: DefaultTemperature,
			WindSpeed:   DefaultWindSpeed,
		},
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
