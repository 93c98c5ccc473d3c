package schema

import (
	"encoding/json"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Transcription is the word stream produced by a transcription service,
// plus whatever metadata the service reported alongside it
type Transcription struct {
	Task     string    `json:"task,omitempty"`
	Language string    `json:"language,omitempty" writer:",width:8"`
	Duration Timestamp `json:"duration,omitempty" writer:",width:8,right"`
	Text     string    `json:"text,omitempty" writer:",width:60,wrap"`
	Words    []Word    `json:"words,omitempty"`
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t *Transcription) String() string {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// UnmarshalJSON accepts either a transcription object or a bare array of
// words, which is how word dumps are written to disk
func (t *Transcription) UnmarshalJSON(data []byte) error {
	type alias Transcription
	var words []Word
	if err := json.Unmarshal(data, &words); err == nil {
		*t = Transcription{Words: words}
		return nil
	}
	var v alias
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*t = Transcription(v)
	return nil
}

// Span returns the end of the last word, or the reported duration if that
// is later
func (t *Transcription) Span() Timestamp {
	span := t.Duration
	for _, w := range t.Words {
		if w.End > span {
			span = w.End
		}
	}
	return span
}
