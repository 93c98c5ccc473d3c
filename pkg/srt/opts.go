package srt

///////////////////////////////////////////////////////////////////////////////
// TYPES

type opts struct {
	vtt         bool
	removeSpace bool
	foldWidth   bool
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

// Emit a WebVTT document, with "." before the milliseconds
func OptVTT() Opt {
	return func(o *opts) error {
		o.vtt = true
		return nil
	}
}

// Remove all whitespace rather than collapsing it, for scripts which do not
// separate words with spaces
func OptRemoveSpace() Opt {
	return func(o *opts) error {
		o.removeSpace = true
		return nil
	}
}

// Fold fullwidth forms to their narrow equivalents before matching, so
// timestamps such as "００：００：０１，０００" written by a translator are
// recovered
func OptFoldWidth() Opt {
	return func(o *opts) error {
		o.foldWidth = true
		return nil
	}
}
