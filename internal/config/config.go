package config

import (
	"bowling_backend/internal/model"
	"log/slog"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type LogConfig interface {
	Level() slog.Level
	JSON() bool
}

type ThrowLimitConfig interface {
	Rate() rate.Limit
	Burst() int
}

type GameConfig interface {
	Rules() model.Rules
	StatsWindow() int
	Seed() int64 // 0 means a fresh random seed
}
