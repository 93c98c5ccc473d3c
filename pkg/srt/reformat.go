package srt

import (
	"regexp"
	"strconv"
	"strings"

	// Packages
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
	width "golang.org/x/text/width"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	reInvisible = regexp.MustCompile(`\p{Cf}`)
	reSpace     = regexp.MustCompile(`[\s\p{Zs}\p{Zl}\p{Zp}]+`)
	reShortMs   = regexp.MustCompile(`(\d{2}:\d{2}:\d{2}[,.])(\d{1,2})(\D|$)`)
	reCue       = regexp.MustCompile(`(\d{1,4}) ?(\d{2}:\d{2}:\d{2}[,.]\d{3}) ?--> ?(\d{2}:\d{2}:\d{2}[,.]\d{3})`)
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Reformat recovers subtitle blocks from text which has lost its line
// structure, such as a document returned from a translation tool. Invisible
// characters are removed, whitespace is collapsed, and the text is split on
// each "<id> <start> --> <end>" anchor. Format characters (zero-width
// spaces, bidi marks, soft hyphens) are invisible. Text before the first anchor is
// discarded. The rebuilt document and its cues are returned; if no anchor is
// found the error is schema.ErrNoCuesRecovered.
func Reformat(text string, opt ...Opt) (string, []*schema.Cue, error) {
	o, err := applyOpts(opt...)
	if err != nil {
		return "", nil, err
	}

	// Normalize the text
	text = reInvisible.ReplaceAllString(text, "")
	if o.foldWidth {
		text = width.Fold.String(text)
	}
	if o.removeSpace {
		text = reSpace.ReplaceAllString(text, "")
	} else {
		text = reSpace.ReplaceAllString(text, " ")
	}
	text = NormalizeTimestamps(text)

	// Split on the anchors
	matches := reCue.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return "", nil, schema.ErrNoCuesRecovered.With("no cue anchors found")
	}

	sep := byte(',')
	if o.vtt {
		sep = '.'
	}
	cues := make([]*schema.Cue, 0, len(matches))
	blocks := make([]string, 0, len(matches))
	for i, m := range matches {
		next := len(text)
		if i+1 < len(matches) {
			next = matches[i+1][0]
		}
		id := text[m[2]:m[3]]
		start, end := withSep(text[m[4]:m[5]], sep), withSep(text[m[6]:m[7]], sep)
		body := strings.TrimSpace(text[m[1]:next])

		cue, err := reformatCue(id, start, end, body)
		if err != nil {
			return "", nil, err
		}
		cues = append(cues, cue)
		blocks = append(blocks, id+"\n"+start+" --> "+end+"\n"+body)
	}

	doc := strings.Join(blocks, "\n\n")
	if o.vtt {
		doc = VTTHeader + doc
	}

	// Return success
	return doc, cues, nil
}

// NormalizeTimestamps pads timestamps with one or two digit milliseconds
// to three digits, so "00:00:01,5" becomes "00:00:01,500"
func NormalizeTimestamps(text string) string {
	return reShortMs.ReplaceAllStringFunc(text, func(match string) string {
		parts := reShortMs.FindStringSubmatch(match)
		return parts[1] + parts[2] + strings.Repeat("0", 3-len(parts[2])) + parts[3]
	})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func withSep(ts string, sep byte) string {
	return ts[:8] + string(sep) + ts[9:]
}

func reformatCue(id, start, end, text string) (*schema.Cue, error) {
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
	return &schema.Cue{Id: n, Start: t0, End: t1, Text: text}, nil
}
