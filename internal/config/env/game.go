package env

import (
	"bowling_backend/internal/config"
	"bowling_backend/internal/model"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultStatsWindow = 50

type gameFile struct {
	Game struct {
		model.RulesOverride `yaml:",inline"`
		StatsWindow         *int  `yaml:"stats_window"`
		Seed                int64 `yaml:"seed"`
	} `yaml:"game"`
}

type gameConfig struct {
	rules       model.Rules
	statsWindow int
	seed        int64
}

// NewGameConfigFromYAML reads the game section of path on top of the
// standard rules. A missing file yields the standard rules.
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaultGameConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return parseGameConfig(data)
}

func defaultGameConfig() *gameConfig {
	return &gameConfig{rules: model.DefaultRules(), statsWindow: defaultStatsWindow}
}

func parseGameConfig(data []byte) (*gameConfig, error) {
	var file gameFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	cfg := defaultGameConfig()
	cfg.rules = cfg.rules.Merge(file.Game.RulesOverride)
	if err := cfg.rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game rules: %w", err)
	}
	if file.Game.StatsWindow != nil {
		if *file.Game.StatsWindow < 1 {
			return nil, fmt.Errorf("stats_window must be positive, got %d", *file.Game.StatsWindow)
		}
		cfg.statsWindow = *file.Game.StatsWindow
	}
	cfg.seed = file.Game.Seed
	return cfg, nil
}

func (cfg *gameConfig) Rules() model.Rules {
	return cfg.rules
}

func (cfg *gameConfig) StatsWindow() int {
	return cfg.statsWindow
}

func (cfg *gameConfig) Seed() int64 {
	return cfg.seed
}
