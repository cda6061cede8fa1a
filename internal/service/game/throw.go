package game

import (
	"bowling_backend/internal/bowling"
	"bowling_backend/internal/model"
	"bowling_backend/internal/thrower"
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Throw plays one ball. With req.KnockedPins set the given pins fall instead
// of asking the configured executor.
func (s *serv) Throw(ctx context.Context, req model.ThrowRequest) (*model.Game, error) {
	ctx, span := s.tracer.Start(ctx, "GameService.Throw")
	defer span.End()

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.game == nil {
		return nil, bowling.ErrGameNotStarted
	}

	before := s.engine.GameStatus()

	var (
		status model.GameStatus
		err    error
	)
	if req.KnockedPins != nil {
		status, err = s.engine.ThrowBallWith(thrower.NewFixed(req.KnockedPins...))
	} else {
		status, err = s.engine.ThrowBall()
	}
	if err != nil {
		s.metrics.throwErrors.WithLabelValues(errorReason(err)).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.WarnContext(ctx, "Throw rejected",
			slog.String("game_id", s.game.ID.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	bonus := len(status.BonusThrowsResults) > len(before.BonusThrowsResults)
	phase := "regular"
	if bonus {
		phase = "bonus"
	}
	gained := status.TotalPoints - before.TotalPoints
	s.metrics.throws.WithLabelValues(phase).Inc()

	span.SetAttributes(
		attribute.String("game.id", s.game.ID.String()),
		attribute.String("throw.phase", phase),
		attribute.Int("game.total_points", status.TotalPoints),
	)
	s.logger.DebugContext(ctx, "Throw recorded",
		slog.String("game_id", s.game.ID.String()),
		slog.String("phase", phase),
		slog.Int("points_gained", gained),
		slog.Int("total_points", status.TotalPoints),
	)

	if status.IsGameFinished && !s.recorded {
		s.finish(ctx, status)
	}

	return &model.Game{ID: s.game.ID, StartedAt: s.game.StartedAt, Status: status}, nil
}

// finish must be called with mtx held.
func (s *serv) finish(ctx context.Context, status model.GameStatus) {
	rec := model.GameRecord{
		ID:         s.game.ID,
		Score:      status.TotalPoints,
		FinishedAt: s.now(),
	}
	for _, f := range status.Frames {
		switch f.Type {
		case model.FrameStrike:
			rec.Strikes++
		case model.FrameSpare:
			rec.Spares++
		}
	}

	s.statsRepo.RecordGame(rec)
	s.recorded = true
	s.metrics.gamesFinished.Inc()
	s.metrics.scores.Observe(float64(rec.Score))

	s.logger.InfoContext(ctx, "Game finished",
		slog.String("game_id", rec.ID.String()),
		slog.Int("score", rec.Score),
		slog.Int("strikes", rec.Strikes),
		slog.Int("spares", rec.Spares),
	)
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, bowling.ErrGameNotStarted):
		return "not_started"
	case errors.Is(err, bowling.ErrGameAlreadyFinished):
		return "finished"
	case errors.Is(err, bowling.ErrInvalidKnockdown):
		return "invalid_knockdown"
	case errors.Is(err, bowling.ErrNoActiveFrame):
		return "no_active_frame"
	default:
		return "internal"
	}
}
