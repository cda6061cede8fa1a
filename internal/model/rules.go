package model

import (
	"errors"
	"fmt"
)

const (
	DefaultFrames            = 10
	DefaultPins              = 10
	DefaultBonusSpareThrows  = 1
	DefaultBonusStrikeThrows = 2
)

// Rules configures a game.
type Rules struct {
	Frames            int
	Pins              int
	BonusSpareThrows  int
	BonusStrikeThrows int
}

// RulesOverride holds caller overrides. Nil fields keep the base value,
// so an explicit zero (e.g. no bonus throws) is distinguishable from "unset".
type RulesOverride struct {
	Frames            *int `yaml:"frames"`
	Pins              *int `yaml:"pins"`
	BonusSpareThrows  *int `yaml:"bonus_spare_throws"`
	BonusStrikeThrows *int `yaml:"bonus_strike_throws"`
}

// DefaultRules returns the standard ten-pin configuration.
func DefaultRules() Rules {
	return Rules{
		Frames:            DefaultFrames,
		Pins:              DefaultPins,
		BonusSpareThrows:  DefaultBonusSpareThrows,
		BonusStrikeThrows: DefaultBonusStrikeThrows,
	}
}

// Merge returns r with every non-nil field of o applied.
func (r Rules) Merge(o RulesOverride) Rules {
	if o.Frames != nil {
		r.Frames = *o.Frames
	}
	if o.Pins != nil {
		r.Pins = *o.Pins
	}
	if o.BonusSpareThrows != nil {
		r.BonusSpareThrows = *o.BonusSpareThrows
	}
	if o.BonusStrikeThrows != nil {
		r.BonusStrikeThrows = *o.BonusStrikeThrows
	}
	return r
}

// Validate reports every out-of-range field.
func (r Rules) Validate() error {
	var errs []error
	if r.Frames < 1 {
		errs = append(errs, fmt.Errorf("frames must be positive, got %d", r.Frames))
	}
	if r.Pins < 1 {
		errs = append(errs, fmt.Errorf("pins must be positive, got %d", r.Pins))
	}
	if r.BonusSpareThrows < 0 {
		errs = append(errs, fmt.Errorf("bonus spare throws must be non-negative, got %d", r.BonusSpareThrows))
	}
	if r.BonusStrikeThrows < 0 {
		errs = append(errs, fmt.Errorf("bonus strike throws must be non-negative, got %d", r.BonusStrikeThrows))
	}
	return errors.Join(errs...)
}

// BonusLookback is how many throws back a bonus can reach.
func (r Rules) BonusLookback() int {
	return max(r.BonusSpareThrows, r.BonusStrikeThrows)
}
