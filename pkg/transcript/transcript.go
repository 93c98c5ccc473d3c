// Package transcript composes flat transcripts from a word stream.
//
// The continuous transcript joins every word with the spacing supplied by
// the model. The paced transcript is the same text with a line break after
// each sentence end which is followed by a pause of at least the configured
// threshold before the next word starts. OptLegacyPacing instead measures
// the gap from the previous sentence end to the start of the word which
// closes the current sentence, which reproduces older paced transcripts.
package transcript

import (
	"strings"
	"unicode"

	// Packages
	guard "github.com/mutablelogic/go-subtitle/pkg/guard"
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Continuous builds a transcript with no inserted structure
type Continuous struct {
	opts
	b strings.Builder
}

// Paced builds a transcript with line breaks at long pauses
type Paced struct {
	opts
	b     strings.Builder
	first bool

	// End of the most recent word containing a period
	closed   bool
	closeEnd schema.Timestamp
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Break = "\n"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func NewContinuous(opt ...Opt) (*Continuous, error) {
	o, err := applyOpts(opt...)
	if err != nil {
		return nil, err
	}
	return &Continuous{opts: *o}, nil
}

func NewPaced(opt ...Opt) (*Paced, error) {
	o, err := applyOpts(opt...)
	if err != nil {
		return nil, err
	}
	return &Paced{opts: *o, first: true}, nil
}

// Compose returns the continuous and paced transcripts for a word stream
func Compose(words []schema.Word, opt ...Opt) (string, string, error) {
	continuous, err := NewContinuous(opt...)
	if err != nil {
		return "", "", err
	}
	paced, err := NewPaced(opt...)
	if err != nil {
		return "", "", err
	}
	for _, word := range words {
		continuous.Append(word)
		paced.Append(word)
	}
	return continuous.String(), paced.String(), nil
}

///////////////////////////////////////////////////////////////////////////////
// CONTINUOUS

func (c *Continuous) Append(word schema.Word) {
	text := c.guard.Guard(word.Text)
	if c.b.Len() == 0 {
		text = strings.TrimLeftFunc(text, unicode.IsSpace)
	}
	c.b.WriteString(text)
}

func (c *Continuous) String() string {
	return guard.Unguard(c.b.String())
}

///////////////////////////////////////////////////////////////////////////////
// PACED

func (p *Paced) Append(word schema.Word) {
	text := p.guard.Guard(word.Text)

	// A sentence end followed by a long enough pause starts a new line
	if !p.legacy && p.closed && word.Start-p.closeEnd >= schema.Timestamp(p.pause) {
		p.b.WriteString(Break)
	}

	// No leading space at the start of a line
	if p.first || strings.HasSuffix(p.b.String(), Break) {
		text = strings.TrimLeftFunc(text, unicode.IsSpace)
	}
	p.b.WriteString(text)
	p.first = false

	if strings.Contains(text, ".") {
		if p.legacy && word.Start-p.closeEnd >= schema.Timestamp(p.pause) {
			p.b.WriteString(Break)
		}
		p.closed = true
		p.closeEnd = word.End
	} else if !p.legacy {
		p.closed = false
	}
}

func (p *Paced) String() string {
	return guard.Unguard(p.b.String())
}
