package srt

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	// Packages
	astisub "github.com/asticode/go-astisub"
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ReadFile reads cues from a subtitle file. Files with a .srt extension go
// through the strict parser; any other format supported by astisub
// (WebVTT, SSA/ASS, STL, TTML) is imported.
func ReadFile(path string) ([]*schema.Cue, error) {
	if strings.EqualFold(filepath.Ext(path), ".srt") {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return Parse(f)
	}
	subs, err := astisub.OpenFile(path)
	if err != nil {
		return nil, schema.ErrMalformedSubtitle.With(err)
	}
	return fromItems(subs.Items), nil
}

// ReadWebVTT imports cues from a WebVTT document
func ReadWebVTT(r io.Reader) ([]*schema.Cue, error) {
	subs, err := astisub.ReadFromWebVTT(r)
	if err != nil {
		return nil, schema.ErrMalformedSubtitle.With(err)
	}
	return fromItems(subs.Items), nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func fromItems(items []*astisub.Item) []*schema.Cue {
	cues := make([]*schema.Cue, 0, len(items))
	for i, item := range items {
		cues = append(cues, &schema.Cue{
			Id:    i + 1,
			Start: schema.Timestamp(item.StartAt),
			End:   schema.Timestamp(item.EndAt),
			Text:  itemText(item),
		})
	}
	return cues
}

// itemText joins the lines of an item with single spaces
func itemText(item *astisub.Item) string {
	var sb strings.Builder
	for i, line := range item.Lines {
		if i > 0 {
			sb.WriteRune(' ')
		}
		for j, litem := range line.Items {
			if j > 0 {
				sb.WriteRune(' ')
			}
			sb.WriteString(strings.TrimSpace(litem.Text))
		}
	}
	return sb.String()
}
