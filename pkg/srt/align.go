package srt

import (
	// Packages
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// AlignedCue pairs a cue with its counterpart in a second document
type AlignedCue struct {
	Id     int              `json:"id" writer:",right,width:5"`
	Start  schema.Timestamp `json:"start" writer:",width:12"`
	End    schema.Timestamp `json:"end" writer:",width:12"`
	Source string           `json:"source" writer:",wrap,width:50"`
	Target string           `json:"target,omitempty" writer:",wrap,width:50"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// DefaultTolerance is the largest difference in block counts between
	// two documents which is not reported as skew
	DefaultTolerance = 3
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Align pairs cues by position, taking the id and timing from the source.
// With no target every source cue is returned; otherwise pairing stops at
// the end of the shorter document.
func Align(source, target []*schema.Cue) []AlignedCue {
	n := len(source)
	if target != nil {
		n = min(n, len(target))
	}
	result := make([]AlignedCue, 0, n)
	for i := 0; i < n; i++ {
		row := AlignedCue{
			Id:     source[i].Id,
			Start:  source[i].Start,
			End:    source[i].End,
			Source: source[i].Text,
		}
		if target != nil {
			row.Target = target[i].Text
		}
		result = append(result, row)
	}
	return result
}

// CheckSkew compares the block counts of two documents. It returns
// schema.ErrAlignmentSkew when either is empty, or when the counts differ
// by more than the tolerance. This is a heuristic for a corrupted
// translation and does not prove two documents are aligned.
func CheckSkew(source, target []*schema.Cue, tolerance int) error {
	switch {
	case len(source) == 0 && len(target) == 0:
		return schema.ErrAlignmentSkew.With("both documents are empty")
	case len(source) == 0:
		return schema.ErrAlignmentSkew.With("source document is empty")
	case len(target) == 0:
		return schema.ErrAlignmentSkew.With("target document is empty")
	}
	if skew := len(source) - len(target); skew > tolerance || -skew > tolerance {
		return schema.ErrAlignmentSkew.Withf("source has %d blocks, target has %d (tolerance %d)", len(source), len(target), tolerance)
	}
	return nil
}
