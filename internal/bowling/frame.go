package bowling

import (
	"fmt"

	"bowling_backend/internal/model"
)

// maxFrameThrows is the number of throws a non-strike frame accepts.
const maxFrameThrows = 2

// Classification is the outcome of Frame.Classify.
type Classification struct {
	Type   model.FrameType
	Points int
	Closed bool // No further throws go into the frame
}

// Frame owns a rack of pins and up to two throws.
type Frame struct {
	id     int
	pins   []Pin
	throws []model.ThrowResult

	frameType model.FrameType
	points    int

	spareCredits  int
	strikeCredits int
}

// NewFrame creates a frame with a fresh rack. The credits bound how many
// later throws may add bonus points once the frame is a spare or a strike.
func NewFrame(id, pinCount, spareCredits, strikeCredits int) *Frame {
	return &Frame{
		id:            id,
		pins:          newRack(pinCount),
		throws:        make([]model.ThrowResult, 0, maxFrameThrows),
		frameType:     model.FrameRegular,
		spareCredits:  spareCredits,
		strikeCredits: strikeCredits,
	}
}

func (f *Frame) ID() int {
	return f.id
}

func (f *Frame) Type() model.FrameType {
	return f.frameType
}

func (f *Frame) Points() int {
	return f.points
}

func (f *Frame) ThrowsTaken() int {
	return len(f.throws)
}

// Throws returns copies of the recorded throws.
func (f *Frame) Throws() []model.ThrowResult {
	out := make([]model.ThrowResult, len(f.throws))
	for i, t := range f.throws {
		out[i] = t.Clone()
	}
	return out
}

// CanAccept reports whether RecordThrow would accept another throw.
func (f *Frame) CanAccept() error {
	if len(f.throws) >= maxFrameThrows {
		return ErrFrameExhausted
	}
	if len(f.throws) == 1 && f.frameType == model.FrameStrike {
		return ErrStrikeFrameClosed
	}
	return nil
}

// RecordThrow appends a throw and knocks the pins it names.
// Nothing is mutated when an error is returned.
func (f *Frame) RecordThrow(result model.ThrowResult) error {
	if err := f.CanAccept(); err != nil {
		return err
	}
	for _, id := range result.KnockedPinIDs {
		if id < 0 || id >= len(f.pins) {
			return fmt.Errorf("%w: %d", ErrUnknownPin, id)
		}
	}

	for _, id := range result.KnockedPinIDs {
		f.pins[id].Knocked = true
	}
	f.throws = append(f.throws, result.Clone())
	return nil
}

// StandingPinIDs returns the ids of pins still up, ascending.
func (f *Frame) StandingPinIDs() []int {
	ids := make([]int, 0, len(f.pins))
	for _, p := range f.pins {
		if !p.Knocked {
			ids = append(ids, p.LocationID)
		}
	}
	return ids
}

func (f *Frame) KnockedPinCount() int {
	n := 0
	for _, p := range f.pins {
		if p.Knocked {
			n++
		}
	}
	return n
}

// Classify decides the frame type after the latest throw. It does not
// modify the frame; use Apply to store the result.
func (f *Frame) Classify(allPins int) Classification {
	knocked := f.KnockedPinCount()
	switch {
	case len(f.throws) == maxFrameThrows && knocked == allPins:
		return Classification{Type: model.FrameSpare, Points: knocked, Closed: true}
	case len(f.throws) == 1 && knocked == allPins:
		return Classification{Type: model.FrameStrike, Points: knocked, Closed: true}
	case len(f.throws) == maxFrameThrows:
		return Classification{Type: model.FrameRegular, Points: knocked, Closed: true}
	default:
		return Classification{Type: model.FrameRegular, Points: knocked}
	}
}

func (f *Frame) Apply(c Classification) {
	f.frameType = c.Type
	f.points = c.Points
}

// Closed reports whether the frame takes no more throws.
func (f *Frame) Closed() bool {
	return f.CanAccept() != nil
}

// AddBonusPoints credits pinfall from a later throw. Each call consumes one
// credit of the frame's kind; regular frames and spent credits ignore it.
func (f *Frame) AddBonusPoints(n int) {
	switch f.frameType {
	case model.FrameSpare:
		if f.spareCredits > 0 {
			f.points += n
			f.spareCredits--
		}
	case model.FrameStrike:
		if f.strikeCredits > 0 {
			f.points += n
			f.strikeCredits--
		}
	}
}
