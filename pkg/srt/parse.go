package srt

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	// Packages
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	reBlock = regexp.MustCompile(`(\d+)\n(\d{2,}:\d{2}:\d{2},\d{3}) --> (\d{2,}:\d{2}:\d{2},\d{3})\n((?:[^\n]+\n)*)\n`)
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Parse reads a well-formed subtitle document. Every byte of the document
// must belong to a block; the separator after the last block is optional.
// Newlines within the text of a block are folded to single spaces, and a
// block may have no text lines. An empty
// document returns no cues and no error.
func Parse(r io.Reader) ([]*schema.Cue, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(data))
}

// ParseString is like Parse, for a document held in memory
func ParseString(content string) ([]*schema.Cue, error) {
	content = strings.TrimPrefix(content, "\uFEFF")
	content = strings.ReplaceAll(content, "\r\n", "\n")
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}
	content = strings.TrimRight(content, "\n") + "\n\n"

	var cues []*schema.Cue
	pos := 0
	for _, m := range reBlock.FindAllStringSubmatchIndex(content, -1) {
		if m[0] != pos {
			return nil, schema.ErrMalformedSubtitle.Withf("unexpected text at offset %d: %q", pos, excerpt(content[pos:m[0]]))
		}
		cue, err := newCue(content[m[2]:m[3]], content[m[4]:m[5]], content[m[6]:m[7]], content[m[8]:m[9]])
		if err != nil {
			return nil, err
		}
		cues = append(cues, cue)
		pos = m[1]
	}
	if pos != len(content) {
		return nil, schema.ErrMalformedSubtitle.Withf("unexpected text at offset %d: %q", pos, excerpt(content[pos:]))
	}

	// Return success
	return cues, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func newCue(id, start, end, text string) (*schema.Cue, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return nil, schema.ErrMalformedSubtitle.Withf("invalid id %q", id)
	}
	t0, err := schema.ParseTimestamp(start)
	if err != nil {
		return nil, err
	}
	t1, err := schema.ParseTimestamp(end)
	if err != nil {
		return nil, err
	}
	return &schema.Cue{
		Id:    n,
		Start: t0,
		End:   t1,
		Text:  strings.ReplaceAll(strings.TrimSuffix(text, "\n"), "\n", " "),
	}, nil
}

func excerpt(s string) string {
	const max = 40
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
