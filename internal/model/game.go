package model

import (
	"time"

	"github.com/google/uuid"
)

// FrameType classifies a frame once a throw completes it.
type FrameType string

const (
	FrameRegular FrameType = "regular"
	FrameSpare   FrameType = "spare"
	FrameStrike  FrameType = "strike"
)

// ThrowResult is the immutable record of one throw.
type ThrowResult struct {
	FrameID       int
	KnockedPinIDs []int // Only pins newly knocked by this throw
	ThrowNumber   int   // Global, monotonically increasing across the game
}

// Clone returns a copy that does not share the pin slice.
func (t ThrowResult) Clone() ThrowResult {
	pins := make([]int, len(t.KnockedPinIDs))
	copy(pins, t.KnockedPinIDs)
	t.KnockedPinIDs = pins
	return t
}

type FrameStatus struct {
	Type   FrameType
	Points int
}

// GameStatus is a read-only snapshot of a game.
type GameStatus struct {
	Frames              []FrameStatus
	TotalPoints         int
	IsGameFinished      bool
	BonusThrowsResults  []ThrowResult
	BonusThrowsToFinish int
	FramesToFinish      int
}

// Game is a status snapshot bound to the id of the game it describes.
type Game struct {
	ID        uuid.UUID
	StartedAt time.Time
	Status    GameStatus
}

// ThrowRequest carries an optional predetermined knockdown.
// A nil KnockedPins means the configured executor decides.
type ThrowRequest struct {
	KnockedPins []int
}

// GameRecord summarises a finished game for statistics.
type GameRecord struct {
	ID         uuid.UUID
	Score      int
	Strikes    int
	Spares     int
	FinishedAt time.Time
}

// Stats aggregates finished games.
type Stats struct {
	GamesPlayed   int
	BestScore     int
	AverageScore  float64
	WindowAverage float64 // Average over the most recent WindowSize games
	WindowSize    int
	TotalStrikes  int
	TotalSpares   int
	PerfectGames  int
	LastGameID    uuid.UUID
}
