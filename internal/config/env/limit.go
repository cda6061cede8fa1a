package env

import (
	"bowling_backend/internal/config"
	"fmt"

	"golang.org/x/time/rate"
)

type throwLimitConfig struct {
	PerSecond float64 `env:"THROW_RATE" envDefault:"20"`
	BurstSize int     `env:"THROW_BURST" envDefault:"40"`
}

func NewThrowLimitConfig() (config.ThrowLimitConfig, error) {
	var cfg throwLimitConfig
	if err := parseEnv(&cfg); err != nil {
		return nil, err
	}
	if cfg.PerSecond <= 0 {
		return nil, fmt.Errorf("THROW_RATE must be positive, got %v", cfg.PerSecond)
	}
	if cfg.BurstSize < 1 {
		return nil, fmt.Errorf("THROW_BURST must be at least 1, got %d", cfg.BurstSize)
	}
	return &cfg, nil
}

func (cfg *throwLimitConfig) Rate() rate.Limit {
	return rate.Limit(cfg.PerSecond)
}

func (cfg *throwLimitConfig) Burst() int {
	return cfg.BurstSize
}
