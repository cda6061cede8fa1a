package game

import (
	"bowling_backend/internal/model"
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Start discards the current game, finished or not, and opens a new one.
func (s *serv) Start(ctx context.Context) (*model.Game, error) {
	ctx, span := s.tracer.Start(ctx, "GameService.Start")
	defer span.End()

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.game != nil && !s.recorded {
		s.logger.InfoContext(ctx, "Abandoning unfinished game",
			slog.String("game_id", s.game.ID.String()),
		)
		s.metrics.gamesAbandoned.Inc()
	}

	s.engine.StartNewGame()
	s.game = &model.Game{ID: uuid.New(), StartedAt: s.now()}
	s.recorded = false
	s.metrics.gamesStarted.Inc()

	s.logger.InfoContext(ctx, "Game started",
		slog.String("game_id", s.game.ID.String()),
		slog.Int("frames", s.rules.Frames),
		slog.Int("pins", s.rules.Pins),
	)
	return s.snapshot(), nil
}
