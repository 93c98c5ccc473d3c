package transcript

import (
	"time"

	// Packages
	errors "github.com/djthorpe/go-errors"
	guard "github.com/mutablelogic/go-subtitle/pkg/guard"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type opts struct {
	guard  *guard.Guard
	pause  time.Duration
	legacy bool
}

type Opt func(*opts) error

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// DefaultPause is the silence after a sentence end which starts a new line
	DefaultPause = 500 * time.Millisecond
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func applyOpts(opt ...Opt) (*opts, error) {
	o := &opts{
		guard: guard.Default,
		pause: DefaultPause,
	}
	for _, fn := range opt {
		if err := fn(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Set the abbreviation guard
func OptGuard(g *guard.Guard) Opt {
	return func(o *opts) error {
		if g == nil {
			return errors.ErrBadParameter.With("guard is nil")
		}
		o.guard = g
		return nil
	}
}

// Set the pause threshold for a line break in the paced transcript
func OptPause(d time.Duration) Opt {
	return func(o *opts) error {
		if d < 0 {
			return errors.ErrBadParameter.Withf("pause %v is negative", d)
		}
		o.pause = d
		return nil
	}
}

// Measure the pause from the previous sentence end to the start of the
// word which ends the current sentence, and break after that word
func OptLegacyPacing() Opt {
	return func(o *opts) error {
		o.legacy = true
		return nil
	}
}
