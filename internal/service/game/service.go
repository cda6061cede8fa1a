package game

import (
	"bowling_backend/internal/bowling"
	"bowling_backend/internal/model"
	"bowling_backend/internal/repository"
	"bowling_backend/internal/service"
	"bowling_backend/internal/thrower"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// serv runs one game at a time on a single engine.
type serv struct {
	mtx    sync.Mutex
	engine *bowling.Engine
	rules  model.Rules

	game     *model.Game
	recorded bool

	statsRepo repository.StatsRepository
	metrics   *Metrics
	logger    *slog.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// NewGameService creates a game service over a fresh engine.
func NewGameService(
	executor bowling.Executor,
	rules model.Rules,
	statsRepo repository.StatsRepository,
	metrics *Metrics,
	logger *slog.Logger,
	tracer trace.Tracer,
) (service.GameService, error) {
	engine, err := bowling.NewEngine(executor, rules)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	return &serv{
		engine:    engine,
		rules:     engine.Rules(),
		statsRepo: statsRepo,
		metrics:   metrics,
		logger:    logger,
		tracer:    tracer,
		now:       time.Now,
	}, nil
}

func (s *serv) Rules(ctx context.Context) model.Rules {
	_, span := s.tracer.Start(ctx, "GameService.Rules")
	defer span.End()

	return s.engine.Rules()
}

func (s *serv) Stats(ctx context.Context) model.Stats {
	_, span := s.tracer.Start(ctx, "GameService.Stats")
	defer span.End()

	return s.statsRepo.Stats()
}

// snapshot must be called with mtx held.
func (s *serv) snapshot() *model.Game {
	return &model.Game{
		ID:        s.game.ID,
		StartedAt: s.game.StartedAt,
		Status:    s.engine.GameStatus(),
	}
}

// PerfectScore is the score of a game where every throw is a strike.
func PerfectScore(rules model.Rules) (int, error) {
	engine, err := bowling.NewEngine(thrower.Strike(), rules)
	if err != nil {
		return 0, err
	}
	engine.StartNewGame()
	for {
		status, err := engine.ThrowBall()
		if err != nil {
			return 0, err
		}
		if status.IsGameFinished {
			return status.TotalPoints, nil
		}
	}
}
