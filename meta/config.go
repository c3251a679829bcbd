package meta

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Addr       string     `yaml:"addr"`
	LogLevel   string     `yaml:"logLevel"`
	MaxDepth   int        `yaml:"maxDepth"`
	Seed       uint64     `yaml:"seed"` // 0 seeds from the clock
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	MaxTurns   int        `yaml:"maxTurns"`
	Experiment Experiment `yaml:"experiment"`
}

type Experiment struct {
	Games  int    `yaml:"games"` // Per matchup
	Depths []int  `yaml:"depths"`
	OutDir string `yaml:"outDir"`
}

func Default() Config {
	return Config{
		Addr:     DefaultAddr,
		LogLevel: "info",
		MaxDepth: DefaultMaxDepth,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		MaxTurns: MaxTurns,
		Experiment: Experiment{
			Games:  DefaultGames,
			Depths: []int{1, 2, 4, 8},
			OutDir: "experiments",
		},
	}
}

// Load reads a YAML config on top of the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: maxDepth %d is negative", ErrInvalidConfig, c.MaxDepth)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: arena %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("%w: maxTurns %d", ErrInvalidConfig, c.MaxTurns)
	}
	if c.Experiment.Games <= 0 {
		return fmt.Errorf("%w: experiment games %d", ErrInvalidConfig, c.Experiment.Games)
	}
	for _, d := range c.Experiment.Depths {
		if d < 0 {
			return fmt.Errorf("%w: experiment depth %d is negative", ErrInvalidConfig, d)
		}
	}
	return nil
}
