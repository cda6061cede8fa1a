package bowling

import "errors"

// ErrGameAlreadyFinished indicates a throw after the game ended. Start a new game.
var ErrGameAlreadyFinished = errors.New("game already finished, start a new one")

// ErrNoActiveFrame indicates a bonus-phase throw with no bonus throws left.
var ErrNoActiveFrame = errors.New("no bonus throws left, start a new one")

// ErrGameNotStarted indicates a throw before StartNewGame.
var ErrGameNotStarted = errors.New("game not started")

// ErrFrameExhausted indicates a third throw into a frame.
var ErrFrameExhausted = errors.New("frame already has the maximum number of throws")

// ErrStrikeFrameClosed indicates a second throw into a strike frame.
var ErrStrikeFrameClosed = errors.New("frame is a strike, no further throws allowed")

// ErrUnknownPin indicates a pin id outside the rack.
var ErrUnknownPin = errors.New("unknown pin")

// ErrInvalidKnockdown indicates the executor named a pin that was not standing.
var ErrInvalidKnockdown = errors.New("knocked pins must be a subset of the standing pins")

// ErrInvalidRules indicates an engine was configured with unusable rules.
var ErrInvalidRules = errors.New("invalid rules")
