// Package segmenter groups a word stream into sentence-bounded cues.
//
// A word whose text ends with a period closes the current cue. Words are
// passed through an abbreviation guard first, so "Dr." does not close a cue.
// The segmenter is a forward scan with no lookahead, so words can be
// appended as they arrive from a transcription service.
package segmenter

import (
	"strings"

	// Packages
	guard "github.com/mutablelogic/go-subtitle/pkg/guard"
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Segmenter struct {
	opts
	fn func(*schema.Cue)

	// Rolling state
	id    int
	text  strings.Builder
	open  bool
	start schema.Timestamp
	end   schema.Timestamp
	prev  *schema.Word
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a segmenter which calls fn for every cue, in order
func New(fn func(*schema.Cue), opt ...Opt) (*Segmenter, error) {
	o, err := applyOpts(opt...)
	if err != nil {
		return nil, err
	}
	return &Segmenter{opts: *o, fn: fn}, nil
}

// Segment groups words into cues
func Segment(words []schema.Word, opt ...Opt) ([]*schema.Cue, error) {
	var cues []*schema.Cue
	s, err := New(func(cue *schema.Cue) {
		cues = append(cues, cue)
	}, opt...)
	if err != nil {
		return nil, err
	}
	for _, word := range words {
		if err := s.Append(word); err != nil {
			return nil, err
		}
	}
	s.Flush()
	return cues, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Append the next word of the stream
func (s *Segmenter) Append(word schema.Word) error {
	if s.strict {
		if err := s.validate(word); err != nil {
			return err
		}
	}
	s.prev = &word

	// Open a segment on the first word
	if !s.open {
		s.open = true
		s.start = word.Start
	}

	// Append verbatim, the model supplies its own spacing
	text := s.guard.Guard(word.Text)
	s.text.WriteString(text)
	s.end = word.End

	// Close the segment on a sentence end
	if strings.HasSuffix(text, ".") {
		s.emit()
	}

	// Return success
	return nil
}

// Flush emits any open segment with non-blank text. The segmenter can
// continue to be used afterwards.
func (s *Segmenter) Flush() {
	if s.open && strings.TrimSpace(s.text.String()) != "" {
		s.emit()
	}
	s.reset()
}

// Count returns the number of cues emitted so far
func (s *Segmenter) Count() int {
	return s.id
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (s *Segmenter) emit() {
	text := strings.TrimSpace(s.text.String())
	s.id++
	if s.fn != nil {
		s.fn(&schema.Cue{
			Id:    s.id,
			Start: s.start,
			End:   s.end,
			Text:  guard.Unguard(text),
		})
	}
	s.reset()
}

func (s *Segmenter) reset() {
	s.text.Reset()
	s.open = false
	s.start = 0
	s.end = 0
}

func (s *Segmenter) validate(word schema.Word) error {
	switch {
	case word.Start < 0 || word.End < 0:
		return schema.ErrBadWord.Withf("negative timestamp for %q", word.Text)
	case word.End < word.Start:
		return schema.ErrBadWord.Withf("%q ends at %v before it starts at %v", word.Text, word.End, word.Start)
	case s.prev != nil && word.Start < s.prev.Start:
		return schema.ErrBadWord.Withf("%q at %v starts before the previous word at %v", word.Text, word.Start, s.prev.Start)
	}
	return nil
}
