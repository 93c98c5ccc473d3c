package schema

import "encoding/json"

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Word is a single timestamped token from a transcription. The text carries
// any leading or trailing spacing the model emitted.
type Word struct {
	Start Timestamp `json:"start"`
	End   Timestamp `json:"end"`
	Text  string    `json:"word"`
}

//////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewWord returns a word from fractional seconds
func NewWord(start, end float64, text string) Word {
	return Word{
		Start: SecToTimestamp(start),
		End:   SecToTimestamp(end),
		Text:  text,
	}
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (w Word) String() string {
	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
