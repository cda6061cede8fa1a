package service

import (
	"bowling_backend/internal/model"
	"context"
)

type GameService interface {
	Start(ctx context.Context) (*model.Game, error)
	Throw(ctx context.Context, req model.ThrowRequest) (*model.Game, error)
	Status(ctx context.Context) (*model.Game, error)
	Rules(ctx context.Context) model.Rules
	Stats(ctx context.Context) model.Stats
}
