// Package chaos defines tunable options, intensity tiers, and sentinel
// errors for the chaos cascade engine.
package chaos

import (
	"errors"
	"fmt"
)

// Sentinel errors for cascade execution.
var (
	// ErrNilCube is returned if a nil cube pointer is passed.
	ErrNilCube = errors.New("chaos: cube is nil")
	// ErrNilRand is returned if no random source is supplied.
	ErrNilRand = errors.New("chaos: random source is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("chaos: invalid option supplied")
	// ErrNoSeed is returned when no sticker has been flipped yet — an
	// untouched cube carries no instability to spread.
	ErrNoSeed = errors.New("chaos: no flipped sticker to seed a cascade")
)

// Option configures cascade behavior via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// the cascade is created.
type Option func(*Options)

// Options holds the tunable parameters of one cascade run.
type Options struct {
	// BaseChance scales every propagation probability.
	BaseChance float64

	// DecayFactor multiplies the chain strength after each successful
	// step; must lie in (0,1) so cascades always die out.
	DecayFactor float64

	// MinStrength is the chain-strength floor below which the cascade
	// terminates.
	MinStrength float64

	// MaxSteps caps the number of propagation steps (the chain holds at
	// most MaxSteps+1 tiles including the seed).
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the tier-1 cascade tuning:
// BaseChance 0.35, DecayFactor 0.70, MinStrength 0.05, MaxSteps 24.
func DefaultOptions() Options {
	return Options{
		BaseChance:  0.35,
		DecayFactor: 0.70,
		MinStrength: 0.05,
		MaxSteps:    24,
		err:         nil,
	}
}

// WithBaseChance sets the base propagation probability.
//
//	p in (0,1]: accepted
//	otherwise: invalid option → ErrOptionViolation
func WithBaseChance(p float64) Option {
	return func(o *Options) {
		if p <= 0 || p > 1 {
			o.err = fmt.Errorf("%w: BaseChance must be in (0,1], got %v", ErrOptionViolation, p)
			return
		}
		o.BaseChance = p
	}
}

// WithDecayFactor sets the per-step chain-strength decay.
//
//	f in (0,1): accepted
//	otherwise: invalid option → ErrOptionViolation (f ≥ 1 would let a
//	cascade sustain itself forever)
func WithDecayFactor(f float64) Option {
	return func(o *Options) {
		if f <= 0 || f >= 1 {
			o.err = fmt.Errorf("%w: DecayFactor must be in (0,1), got %v", ErrOptionViolation, f)
			return
		}
		o.DecayFactor = f
	}
}

// WithMinStrength sets the chain-strength termination floor.
//
//	s > 0: accepted
//	otherwise: invalid option → ErrOptionViolation
func WithMinStrength(s float64) Option {
	return func(o *Options) {
		if s <= 0 {
			o.err = fmt.Errorf("%w: MinStrength must be positive, got %v", ErrOptionViolation, s)
			return
		}
		o.MinStrength = s
	}
}

// WithMaxSteps caps the cascade length.
//
//	n ≥ 0: accepted (0 means the cascade never leaves its seed)
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}
