package env

import (
	"bowling_backend/internal/config"
	"fmt"
	"log/slog"
	"strings"
)

type logConfig struct {
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Format   string     `env:"LOG_FORMAT" envDefault:"text"`
}

func NewLogConfig() (config.LogConfig, error) {
	var cfg logConfig
	if err := parseEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.Format = strings.ToLower(cfg.Format)
	if cfg.Format != "text" && cfg.Format != "json" {
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
	return &cfg, nil
}

func (cfg *logConfig) Level() slog.Level {
	return cfg.LogLevel
}

func (cfg *logConfig) JSON() bool {
	return cfg.Format == "json"
}
