package game

import (
	"bowling_backend/internal/bowling"
	"bowling_backend/internal/model"
	"context"
)

func (s *serv) Status(ctx context.Context) (*model.Game, error) {
	_, span := s.tracer.Start(ctx, "GameService.Status")
	defer span.End()

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.game == nil {
		return nil, bowling.ErrGameNotStarted
	}
	return s.snapshot(), nil
}
