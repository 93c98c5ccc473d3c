package segmenter

import (
	// Packages
	errors "github.com/djthorpe/go-errors"
	guard "github.com/mutablelogic/go-subtitle/pkg/guard"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type opts struct {
	guard  *guard.Guard
	strict bool
}

type Opt func(*opts) error

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func applyOpts(opt ...Opt) (*opts, error) {
	o := &opts{
		guard: guard.Default,
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

// Set the abbreviation guard applied to each word before boundary detection
func OptGuard(g *guard.Guard) Opt {
	return func(o *opts) error {
		if g == nil {
			return errors.ErrBadParameter.With("guard is nil")
		}
		o.guard = g
		return nil
	}
}

// Reject words with negative or reversed timestamps, or which start before
// the previous word
func OptStrict() Opt {
	return func(o *opts) error {
		o.strict = true
		return nil
	}
}
