// Package guard escapes abbreviations which end in a period, so that a
// sentence boundary is never detected inside them.
//
// Guarding replaces the terminating period of each abbreviation with a
// private-use marker rune. Marker and escape runes already present in the
// input are escaped, so Unguard(Guard(x)) == x for every string x.
package guard

import (
	"strings"
	"unicode"
	"unicode/utf8"

	// Packages
	errors "github.com/djthorpe/go-errors"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Guard struct {
	abbr []string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Marker = '\uE000' // replaces the period of a guarded abbreviation
	Escape = '\uE001' // precedes a literal Marker or Escape rune
)

var (
	// Default guards the two case variants of "Dr."
	Default = MustNew("Dr.", "dr.")
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a guard for an ordered list of abbreviations. Each must end
// with a period and must not contain the marker or escape runes. Where
// abbreviations overlap, the first in the list wins.
func New(abbr ...string) (*Guard, error) {
	self := new(Guard)
	for _, a := range abbr {
		if !strings.HasSuffix(a, ".") || a == "." {
			return nil, errors.ErrBadParameter.Withf("abbreviation %q must end with a period", a)
		}
		if strings.ContainsRune(a, Marker) || strings.ContainsRune(a, Escape) {
			return nil, errors.ErrBadParameter.Withf("abbreviation %q contains a reserved rune", a)
		}
		if unicode.IsSpace(firstRune(a)) {
			return nil, errors.ErrBadParameter.Withf("abbreviation %q must not start with whitespace", a)
		}
		self.abbr = append(self.abbr, a)
	}
	return self, nil
}

// MustNew is like New but panics on error
func MustNew(abbr ...string) *Guard {
	g, err := New(abbr...)
	if err != nil {
		panic(err)
	}
	return g
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Abbreviations returns the configured abbreviations, in order
func (g *Guard) Abbreviations() []string {
	return append([]string(nil), g.abbr...)
}

// With returns a new guard with additional abbreviations appended
func (g *Guard) With(abbr ...string) (*Guard, error) {
	return New(append(g.Abbreviations(), abbr...)...)
}

// Sentinel returns the guarded form of an abbreviation
func Sentinel(abbr string) string {
	return strings.TrimSuffix(abbr, ".") + string(Marker)
}

// Guard replaces every abbreviation which starts the text or follows
// whitespace with its sentinel form
func (g *Guard) Guard(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	boundary := true
	for i := 0; i < len(text); {
		if boundary {
			if abbr := g.match(text[i:]); abbr != "" {
				b.WriteString(Sentinel(abbr))
				i += len(abbr)
				boundary = false
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == Marker || r == Escape {
			b.WriteRune(Escape)
		}
		b.WriteString(text[i : i+size])
		boundary = unicode.IsSpace(r)
		i += size
	}
	return b.String()
}

// Unguard restores abbreviations and escaped runes
func (g *Guard) Unguard(text string) string {
	return Unguard(text)
}

// Unguard is the inverse of Guard for any guard
func Unguard(text string) string {
	if !strings.ContainsRune(text, Marker) && !strings.ContainsRune(text, Escape) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case r == Escape && i+size < len(text):
			_, next := utf8.DecodeRuneInString(text[i+size:])
			b.WriteString(text[i+size : i+size+next])
			i += size + next
			continue
		case r == Marker:
			b.WriteByte('.')
		default:
			b.WriteString(text[i : i+size])
		}
		i += size
	}
	return b.String()
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (g *Guard) match(text string) string {
	for _, abbr := range g.abbr {
		if strings.HasPrefix(text, abbr) {
			return abbr
		}
	}
	return ""
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
