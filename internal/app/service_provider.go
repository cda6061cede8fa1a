package app

import (
	gameAPI "bowling_backend/internal/api/game"
	"bowling_backend/internal/bowling"
	"bowling_backend/internal/config"
	"bowling_backend/internal/config/env"
	"bowling_backend/internal/middleware"
	"bowling_backend/internal/repository"
	"bowling_backend/internal/repository/stats_repo"
	"bowling_backend/internal/service"
	"bowling_backend/internal/service/game"
	"bowling_backend/internal/thrower"
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "bowling_backend"

type ServiceProvider struct {
	configPath string

	// Observability
	logCfg   config.LogConfig
	logger   *slog.Logger
	registry *prometheus.Registry
	tracer   trace.Tracer

	// Game bits
	gameCfg      config.GameConfig
	executor     bowling.Executor
	statsRepo    repository.StatsRepository
	gameMetrics  *game.Metrics
	gameServ     service.GameService
	gameHand     *gameAPI.Handler
	throwLimCfg  config.ThrowLimitConfig
	throwLimiter *middleware.ThrowLimiter

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider(configPath string) *ServiceProvider {
	return &ServiceProvider{configPath: configPath}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		cfg, err := env.NewLogConfig()
		if err != nil {
			panic("failed to get log config: " + err.Error())
		}
		sp.logCfg = cfg
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *slog.Logger {
	if sp.logger == nil {
		sp.logger = NewLogger(sp.LogCfg())
	}
	return sp.logger
}

func (sp *ServiceProvider) Registry() *prometheus.Registry {
	if sp.registry == nil {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		sp.registry = reg
	}
	return sp.registry
}

func (sp *ServiceProvider) Tracer() trace.Tracer {
	if sp.tracer == nil {
		sp.tracer = otel.Tracer(tracerName)
	}
	return sp.tracer
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML(sp.configPath)
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) Executor() bowling.Executor {
	if sp.executor == nil {
		seed := sp.GameCfg().Seed()
		if seed == 0 {
			var err error
			seed, err = thrower.NewSeed()
			if err != nil {
				panic("failed to seed thrower: " + err.Error())
			}
		}
		sp.Logger().Info("Random thrower ready", slog.Int64("seed", seed))
		sp.executor = thrower.NewRandom(seed)
	}
	return sp.executor
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		perfect, err := game.PerfectScore(sp.GameCfg().Rules())
		if err != nil {
			panic("failed to compute perfect score: " + err.Error())
		}
		sp.statsRepo = stats_repo.NewStatsRepository(sp.GameCfg().StatsWindow(), perfect)
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) GameMetrics() *game.Metrics {
	if sp.gameMetrics == nil {
		sp.gameMetrics = game.NewMetrics(sp.Registry())
	}
	return sp.gameMetrics
}

func (sp *ServiceProvider) GameService(_ context.Context) service.GameService {
	if sp.gameServ == nil {
		serv, err := game.NewGameService(
			sp.Executor(),
			sp.GameCfg().Rules(),
			sp.StatsRepository(),
			sp.GameMetrics(),
			sp.Logger(),
			sp.Tracer(),
		)
		if err != nil {
			panic("failed to create game service: " + err.Error())
		}
		sp.gameServ = serv
	}
	return sp.gameServ
}

func (sp *ServiceProvider) GameHandler(ctx context.Context) *gameAPI.Handler {
	if sp.gameHand == nil {
		sp.gameHand = gameAPI.NewHandler(gameAPI.HandlerDeps{
			Serv:   sp.GameService(ctx),
			Logger: sp.Logger(),
		})
	}
	return sp.gameHand
}

func (sp *ServiceProvider) ThrowLimitCfg() config.ThrowLimitConfig {
	if sp.throwLimCfg == nil {
		cfg, err := env.NewThrowLimitConfig()
		if err != nil {
			panic("failed to get throw limit config: " + err.Error())
		}
		sp.throwLimCfg = cfg
	}
	return sp.throwLimCfg
}

func (sp *ServiceProvider) ThrowLimiter() *middleware.ThrowLimiter {
	if sp.throwLimiter == nil {
		cfg := sp.ThrowLimitCfg()
		sp.throwLimiter = middleware.NewThrowLimiter(cfg.Rate(), cfg.Burst())
	}
	return sp.throwLimiter
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Game endpoints
		gameHandler := sp.GameHandler(ctx)
		r.Route("/game", func(rr chi.Router) {
			rr.Post("/start", gameHandler.Start)
			rr.With(middleware.RateLimit(sp.ThrowLimiter())).Post("/throw", gameHandler.Throw)
			rr.Get("/status", gameHandler.Status)
			rr.Get("/rules", gameHandler.Rules)
		})
		r.Get("/stats", gameHandler.Stats)

		r.Handle("/metrics", promhttp.HandlerFor(sp.Registry(), promhttp.HandlerOpts{}))

		sp.router = r
	}

	return sp.router
}
