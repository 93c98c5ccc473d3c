package schema

import "encoding/json"

//////////////////////////////////////////////////////////////////////////////
// TYPES

type Event struct {
	Type     string  `json:"type"`
	Progress float64 `json:"progress,omitempty"` // progress
	Cue      *Cue    `json:"cue,omitempty"`      // cue
	Text     string  `json:"text,omitempty"`     // error, done
}

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	SegmentStreamProgressType = "segment.progress"
	SegmentStreamCueType      = "segment.cue"
	SegmentStreamErrorType    = "segment.error"
	SegmentStreamDoneType     = "segment.done"
)

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (e Event) String() string {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
