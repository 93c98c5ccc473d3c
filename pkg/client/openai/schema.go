package openai

import (
	"encoding/json"
	"io"
	"net/http"

	// Packages
	multipart "github.com/mutablelogic/go-client/pkg/multipart"
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	types "github.com/mutablelogic/go-server/pkg/types"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES

type TranslationRequest struct {
	Model       string         `json:"model"` // whisper-1
	File        multipart.File `json:"file"`
	Prompt      *string        `json:"prompt,omitempty"`
	Format      *string        `json:"response_format,omitempty"` // json, text, srt, verbose_json, or vtt
	Temperature *float64       `json:"temperature,omitempty"`     // 0.0 -> 1.0
}

type TranscriptionRequest struct {
	TranslationRequest
	Include     []string `json:"include,omitempty"`                  // logprobs
	Language    *string  `json:"language,omitempty"`                 // Transcription only en, es, fr, etc.
	Granularity *string  `json:"timestamp_granularities[],omitempty"` // word or segment, requires verbose_json
}

type TranscriptionResponse struct {
	Task     string                  `json:"task,omitempty"`
	Language string                  `json:"language,omitempty"`
	Duration schema.Timestamp        `json:"duration,omitempty"`
	Text     string                  `json:"text,omitempty"`
	Segment  []*TranscriptionSegment `json:"segments,omitempty" writer:",width:40,wrap"`
	Words    []TranscriptionWord     `json:"words,omitempty"`
}

type TranscriptionSegment struct {
	Id               int32            `json:"id"`
	Seek             uint32           `json:"seek"`
	Start            schema.Timestamp `json:"start"`
	End              schema.Timestamp `json:"end"`
	Text             string           `json:"text"`
	Tokens           []uint32         `json:"tokens,omitempty"`            // Array of token IDs for the text content.
	Temperature      *float64         `json:"temperature,omitempty"`       // Temperature parameter used for generating the segment.
	AvgLogProb       *float64         `json:"avg_logprob,omitempty"`       // Average logprob of the segment. If the value is lower than -1, consider the logprobs failed.
	CompressionRatio *float64         `json:"compression_ratio,omitempty"` // Compression ratio of the segment. If the value is greater than 2.4, consider the compression failed.
	NoSpeechProb     *float64         `json:"no_speech_prob,omitempty"`    // Probability of no speech in the segment.
}

// TranscriptionWord is a word with timestamps. The text has no leading
// space, so words are joined with a space.
type TranscriptionWord struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

/////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	Endpoint       = "https://api.openai.com/v1/"
	TranscribePath = "audio/transcriptions" // Endpoint for transcription
	TranslatePath  = "audio/translations"   // Endpoint for translation
)

const (
	FormatJson        = "json"
	FormatVerboseJson = "verbose_json"
	FormatText        = "text"
	FormatSrt         = "srt"
	FormatVtt         = "vtt"
)

const (
	GranularityWord    = "word"
	GranularitySegment = "segment"
)

var (
	Models  = []string{"whisper-1"} // Supported models for transcription and translation
	Formats = []string{
		FormatJson, FormatVerboseJson, FormatText, FormatSrt, FormatVtt,
	}
)

/////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s TranscriptionRequest) String() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func (s TranslationRequest) String() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

func (s TranscriptionResponse) String() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

/////////////////////////////////////////////////////////////////////////////////
// UNMARSHALL

func (s *TranscriptionResponse) Unmarshal(header http.Header, r io.Reader) error {
	mimetype, err := types.ParseContentType(header.Get(types.ContentTypeHeader))
	if err != nil {
		return err
	}
	switch mimetype {
	case types.ContentTypeJSON:
		// If the content type is JSON, we unmarshal directly
		return json.NewDecoder(r).Decode(&s)
	case types.ContentTypeTextPlain:
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		} else {
			s.Text = string(data)
		}
		return nil
	}

	// Decode error
	return httpresponse.ErrBadRequest.Withf("Unsupported content type %q", mimetype)
}

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Transcription returns the word stream of a response. Words are given a
// leading space after the first. When the response has no words, as when
// the server does not support word timestamps, each segment is one word.
func (s *TranscriptionResponse) Transcription() *schema.Transcription {
	resp := &schema.Transcription{
		Task:     s.Task,
		Language: s.Language,
		Duration: s.Duration,
		Text:     s.Text,
	}
	if len(s.Words) > 0 {
		resp.Words = make([]schema.Word, 0, len(s.Words))
		for i, word := range s.Words {
			text := word.Word
			if i > 0 {
				text = " " + text
			}
			resp.Words = append(resp.Words, schema.NewWord(word.Start, word.End, text))
		}
	} else {
		resp.Words = make([]schema.Word, 0, len(s.Segment))
		for _, seg := range s.Segment {
			resp.Words = append(resp.Words, schema.Word{
				Start: seg.Start,
				End:   seg.End,
				Text:  seg.Text,
			})
		}
	}
	return resp
}
