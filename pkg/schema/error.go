package schema

import "fmt"

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Err is a domain error code, distinguishable with errors.Is. It has the
// same shape as the codes in github.com/djthorpe/go-errors.
type Err int

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrInputMissing Err = iota + 1
	ErrMalformedTimestamp
	ErrNoCuesRecovered
	ErrAlignmentSkew
	ErrBadWord
	ErrMalformedSubtitle
)

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (e Err) Error() string {
	switch e {
	case ErrInputMissing:
		return "input missing"
	case ErrMalformedTimestamp:
		return "malformed timestamp"
	case ErrNoCuesRecovered:
		return "no cues recovered"
	case ErrAlignmentSkew:
		return "alignment skew"
	case ErrBadWord:
		return "bad word"
	case ErrMalformedSubtitle:
		return "malformed subtitle"
	default:
		return fmt.Sprintf("error code %d", int(e))
	}
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) With(args ...any) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}
