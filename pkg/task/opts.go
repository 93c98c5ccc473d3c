package task

import (
	"time"

	// Packages
	errors "github.com/djthorpe/go-errors"
	guard "github.com/mutablelogic/go-subtitle/pkg/guard"
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
	segmenter "github.com/mutablelogic/go-subtitle/pkg/segmenter"
	transcript "github.com/mutablelogic/go-subtitle/pkg/transcript"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type opts struct {
	segmenter  []segmenter.Opt
	transcript []transcript.Opt
	duration   time.Duration
	progress   func(float64)
	cue        func(*schema.Cue)
}

type Opt func(*opts) error

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func applyOpts(opt ...Opt) (*opts, error) {
	o := new(opts)
	for _, fn := range opt {
		if err := fn(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Set the abbreviation guard for both segmentation and transcripts
func OptGuard(g *guard.Guard) Opt {
	return func(o *opts) error {
		if g == nil {
			return errors.ErrBadParameter.With("guard is nil")
		}
		o.segmenter = append(o.segmenter, segmenter.OptGuard(g))
		o.transcript = append(o.transcript, transcript.OptGuard(g))
		return nil
	}
}

// Set the pause threshold for the paced transcript
func OptPause(d time.Duration) Opt {
	return func(o *opts) error {
		if d < 0 {
			return errors.ErrBadParameter.Withf("pause %v is negative", d)
		}
		o.transcript = append(o.transcript, transcript.OptPause(d))
		return nil
	}
}

// Use the legacy pause metric for the paced transcript
func OptLegacyPacing() Opt {
	return func(o *opts) error {
		o.transcript = append(o.transcript, transcript.OptLegacyPacing())
		return nil
	}
}

// Reject words with bad timestamps
func OptStrict() Opt {
	return func(o *opts) error {
		o.segmenter = append(o.segmenter, segmenter.OptStrict())
		return nil
	}
}

// Set the duration of the audio, which is the denominator for progress
func OptDuration(d time.Duration) Opt {
	return func(o *opts) error {
		if d < 0 {
			return errors.ErrBadParameter.Withf("duration %v is negative", d)
		}
		o.duration = d
		return nil
	}
}

// Set a callback for progress, which receives fractions between zero
// and one which never decrease
func OptProgress(fn func(float64)) Opt {
	return func(o *opts) error {
		o.progress = fn
		return nil
	}
}

// Set a callback for each cue as it is emitted
func OptCue(fn func(*schema.Cue)) Opt {
	return func(o *opts) error {
		o.cue = fn
		return nil
	}
}
