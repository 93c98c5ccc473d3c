package elevenlabs

import (
	"encoding/json"
	"strings"

	// Packages
	multipart "github.com/mutablelogic/go-client/pkg/multipart"
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES

type TranscribeRequest struct {
	Model          string         `json:"model_id"` // scribe_v1, scribe_v1_experimental
	File           multipart.File `json:"file"`
	Language       *string        `json:"language_code,omitempty"`
	TagAudioEvents *bool          `json:"tag_audio_events,omitempty"`
	NumSpeakers    *uint64        `json:"num_speakers,omitempty"`
	Timestamps     *string        `json:"timestamps_granularity,omitempty"` // none, word, character
	Diarize        *bool          `json:"diarize,omitempty"`
	FileFormat     *string        `json:"file_format,omitempty"` // pcm_s16le_16, other
}

type TranscribeWord struct {
	Text    string           `json:"text"`
	Type    string           `json:"type"`              // word, spacing, audio_event
	Logprob float64          `json:"logprob,omitempty"` // -inf -> 0.0
	Start   float64          `json:"start"`
	End     float64          `json:"end"`
	Speaker *string          `json:"speaker_id,omitempty"`
	Chars   []TranscribeChar `json:"characters,omitempty"` // Only present if timestamps_granularity is set to character
}

type TranscribeChar struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

type TranscribeResponse struct {
	Language    string           `json:"language_code"`
	Probability float64          `json:"language_probability"`
	Text        string           `json:"text"`
	Words       []TranscribeWord `json:"words,omitempty"` // Only present if timestamps_granularity is set to word or character
}

/////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Endpoint       = "https://api.elevenlabs.io/v1"
	TranscribePath = "speech-to-text"
)

const (
	TimestampsNone      = "none"
	TimestampsWord      = "word"
	TimestampsCharacter = "character"
)

const (
	typeWord    = "word"
	typeSpacing = "spacing"
)

var (
	Models = []string{"scribe_v1", "scribe_v1_experimental"}
)

/////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s TranscribeResponse) String() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func (s TranscribeWord) String() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Transcription returns the word stream of a response. Spacing tokens
// become leading whitespace on the word which follows them, and audio
// events such as "(laughter)" are dropped.
func (r *TranscribeResponse) Transcription() *schema.Transcription {
	t := &schema.Transcription{
		Task:     "transcribe",
		Language: r.Language,
		Text:     r.Text,
		Words:    make([]schema.Word, 0, len(r.Words)),
	}

	var spacing strings.Builder
	for _, word := range r.Words {
		switch word.Type {
		case typeSpacing:
			spacing.WriteString(word.Text)
		case typeWord, "":
			t.Words = append(t.Words, schema.NewWord(word.Start, word.End, spacing.String()+word.Text))
			spacing.Reset()
		}
		if end := schema.SecToTimestamp(word.End); end > t.Duration {
			t.Duration = end
		}
	}

	// Return transcription
	return t
}
