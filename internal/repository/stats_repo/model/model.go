package model

import (
	"time"

	"github.com/google/uuid"
)

// StatsState is the aggregate over every finished game.
type StatsState struct {
	GamesPlayed  int // Finished games
	TotalScore   int // Sum of final scores
	BestScore    int
	TotalStrikes int
	TotalSpares  int
	PerfectGames int
	LastGameID   uuid.UUID

	GameWindow  []GameResult // Most recent games, oldest first
	WindowScore int          // Sum of scores in GameWindow
	WindowSize  int
}

// GameResult is one entry of the rolling window.
type GameResult struct {
	ID         uuid.UUID
	Score      int
	FinishedAt time.Time
}
