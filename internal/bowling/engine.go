// Package bowling implements the ten-pin scoring state machine.
//
// An Engine owns the frames of one game. Each ThrowBall asks the injected
// Executor which standing pins fall, records the throw, reclassifies the
// frame, propagates bonus pinfall back to earlier spares and strikes and then
// decides whether to advance to the next frame, enter the bonus phase or end
// the game:
//
//	NOT_STARTED -> IN_PROGRESS(0) -> ... -> IN_PROGRESS(N-1) -> [BONUS] -> FINISHED
//
// Engines are not safe for concurrent use; callers serialise access.
package bowling

import (
	"errors"
	"fmt"

	"bowling_backend/internal/model"
)

// Engine is the scoring state machine for a single game.
type Engine struct {
	rules    model.Rules
	executor Executor

	started  bool
	gameOver bool

	frames           []*Frame
	activeFrameIndex int
	totalPoints      int
	throwCounter     int

	bonusPhase           bool
	bonusThrowsRemaining int
	bonusFrame           *Frame
	nextBonusFrameID     int
	bonusThrowResults    []model.ThrowResult
}

// NewEngine creates an engine in the NOT_STARTED state.
func NewEngine(executor Executor, rules model.Rules) (*Engine, error) {
	if executor == nil {
		return nil, fmt.Errorf("%w: executor is required", ErrInvalidRules)
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRules, err)
	}
	return &Engine{
		rules:    rules,
		executor: executor,
	}, nil
}

// Rules returns a copy of the engine configuration.
func (e *Engine) Rules() model.Rules {
	return e.rules
}

// StartNewGame discards any previous game and opens frame 0.
func (e *Engine) StartNewGame() {
	e.started = true
	e.gameOver = false
	e.frames = make([]*Frame, 0, e.rules.Frames)
	e.activeFrameIndex = -1
	e.totalPoints = 0
	e.throwCounter = 0
	e.bonusPhase = false
	e.bonusThrowsRemaining = 0
	e.bonusFrame = nil
	e.nextBonusFrameID = e.rules.Frames
	e.bonusThrowResults = []model.ThrowResult{}

	e.addFrame()
}

// Started reports whether StartNewGame has been called.
func (e *Engine) Started() bool {
	return e.started
}

// ThrowBall plays one throw with the engine's executor.
func (e *Engine) ThrowBall() (model.GameStatus, error) {
	return e.ThrowBallWith(e.executor)
}

// ThrowBallWith plays one throw with the given executor instead of the
// configured one. Errors leave the game untouched.
func (e *Engine) ThrowBallWith(executor Executor) (model.GameStatus, error) {
	if !e.started {
		return model.GameStatus{}, ErrGameNotStarted
	}
	if e.gameOver {
		return model.GameStatus{}, ErrGameAlreadyFinished
	}

	tgt, err := e.activeTarget()
	if err != nil {
		return model.GameStatus{}, err
	}
	frame := tgt.frame()

	standing := frame.StandingPinIDs()
	knocked, err := validateKnockdown(standing, executor.ExecuteThrow(append([]int(nil), standing...)))
	if err != nil {
		return model.GameStatus{}, err
	}

	result := model.ThrowResult{
		FrameID:       frame.ID(),
		KnockedPinIDs: knocked,
		ThrowNumber:   e.throwCounter + 1,
	}
	if err := frame.RecordThrow(result); err != nil {
		return model.GameStatus{}, fmt.Errorf("record throw in frame %d: %w", frame.ID(), err)
	}

	// Commit: from here on the throw is part of the game.
	e.throwCounter = result.ThrowNumber
	if tgt.bonus() {
		e.bonusThrowsRemaining--
		e.bonusFrame = frame
	}

	classification := frame.Classify(e.rules.Pins)
	frame.Apply(classification)

	if len(knocked) > 0 {
		e.propagateBonus(len(knocked), tgt.bonus())
	}
	e.recomputeTotal()

	if tgt.bonus() {
		e.bonusThrowResults = append(e.bonusThrowResults, result.Clone())
		// The bonus phase ends on its throw budget, whether or not the
		// transient frame closed.
		e.advanceBonus()
	} else if classification.Closed {
		e.advance(tgt.(regularTarget), classification.Type)
	}

	return e.GameStatus(), nil
}

// GameStatus returns a snapshot that shares no memory with the engine.
func (e *Engine) GameStatus() model.GameStatus {
	frames := make([]model.FrameStatus, len(e.frames))
	for i, f := range e.frames {
		frames[i] = model.FrameStatus{Type: f.Type(), Points: f.Points()}
	}
	bonus := make([]model.ThrowResult, len(e.bonusThrowResults))
	for i, r := range e.bonusThrowResults {
		bonus[i] = r.Clone()
	}

	return model.GameStatus{
		Frames:              frames,
		TotalPoints:         e.totalPoints,
		IsGameFinished:      e.gameOver,
		BonusThrowsResults:  bonus,
		BonusThrowsToFinish: e.bonusThrowsRemaining,
		FramesToFinish:      e.rules.Frames - len(e.frames),
	}
}

func (e *Engine) activeTarget() (target, error) {
	if !e.bonusPhase {
		return regularTarget{index: e.activeFrameIndex, f: e.frames[e.activeFrameIndex]}, nil
	}
	if e.bonusThrowsRemaining <= 0 {
		return nil, ErrNoActiveFrame
	}
	if e.bonusFrame != nil && !e.bonusFrame.Closed() {
		return bonusTarget{f: e.bonusFrame}, nil
	}
	// Fresh rack. It only becomes the engine's bonus frame once a throw commits.
	f := NewFrame(e.nextBonusFrameID, e.rules.Pins, e.rules.BonusSpareThrows, e.rules.BonusStrikeThrows)
	return bonusTarget{f: f}, nil
}

// propagateBonus credits knocked pins to earlier spares and strikes, walking
// back from the last closed regular frame (or the last frame during the
// bonus phase) until the lookback budget, counted in throws, runs out.
func (e *Engine) propagateBonus(knocked int, bonusPhase bool) {
	budget := e.rules.BonusLookback()
	start := len(e.frames) - 2
	if bonusPhase {
		start = len(e.frames) - 1
	}
	for i := start; i >= 0 && budget > 0; i-- {
		f := e.frames[i]
		if t := f.Type(); t == model.FrameSpare || t == model.FrameStrike {
			f.AddBonusPoints(knocked)
		}
		budget -= f.ThrowsTaken()
	}
}

func (e *Engine) recomputeTotal() {
	total := 0
	for _, f := range e.frames {
		total += f.Points()
	}
	e.totalPoints = total
}

func (e *Engine) advanceBonus() {
	if e.bonusThrowsRemaining == 0 {
		e.gameOver = true
	}
	if e.bonusFrame != nil && e.bonusFrame.Closed() {
		e.nextBonusFrameID++
	}
}

func (e *Engine) advance(tgt regularTarget, frameType model.FrameType) {
	if tgt.index < e.rules.Frames-1 {
		e.addFrame()
		return
	}

	var bonusThrows int
	switch frameType {
	case model.FrameStrike:
		bonusThrows = e.rules.BonusStrikeThrows
	case model.FrameSpare:
		bonusThrows = e.rules.BonusSpareThrows
	}
	if bonusThrows == 0 {
		e.gameOver = true
		return
	}
	e.bonusPhase = true
	e.bonusThrowsRemaining = bonusThrows
}

func (e *Engine) addFrame() {
	e.activeFrameIndex++
	e.frames = append(e.frames, NewFrame(
		e.activeFrameIndex,
		e.rules.Pins,
		e.rules.BonusSpareThrows,
		e.rules.BonusStrikeThrows,
	))
}

// IsTerminal reports whether err means the current game cannot continue.
func IsTerminal(err error) bool {
	return errors.Is(err, ErrGameAlreadyFinished) || errors.Is(err, ErrNoActiveFrame)
}
