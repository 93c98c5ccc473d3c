package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	multipart "github.com/mutablelogic/go-client/pkg/multipart"
	openai "github.com/mutablelogic/go-subtitle/pkg/client/openai"
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
	wav "github.com/mutablelogic/go-subtitle/pkg/wav"
	types "github.com/mutablelogic/go-server/pkg/types"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Transcription_001(t *testing.T) {
	assert := assert.New(t)
	resp := openai.TranscriptionResponse{
		Language: "english",
		Duration: schema.SecToTimestamp(2),
		Words: []openai.TranscriptionWord{
			{Word: "Hello", Start: 0, End: 0.5},
			{Word: "world.", Start: 0.5, End: 1.2},
		},
	}
	transcription := resp.Transcription()
	assert.Equal("english", transcription.Language)
	assert.Equal([]schema.Word{
		schema.NewWord(0, 0.5, "Hello"),
		schema.NewWord(0.5, 1.2, " world."),
	}, transcription.Words)
}

func Test_Transcription_002(t *testing.T) {
	assert := assert.New(t)

	// Segments stand in for words
	resp := openai.TranscriptionResponse{
		Segment: []*openai.TranscriptionSegment{
			{Id: 0, Start: schema.SecToTimestamp(0), End: schema.SecToTimestamp(1), Text: " One."},
			{Id: 1, Start: schema.SecToTimestamp(1), End: schema.SecToTimestamp(2), Text: " Two."},
		},
	}
	transcription := resp.Transcription()
	if assert.Len(transcription.Words, 2) {
		assert.Equal(" Two.", transcription.Words[1].Text)
		assert.Equal(schema.SecToTimestamp(1), transcription.Words[1].Start)
	}
}

func Test_Transcribe_001(t *testing.T) {
	assert := assert.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/"+openai.TranscribePath, r.URL.Path)
		assert.Equal("Bearer key", r.Header.Get("Authorization"))
		if !assert.NoError(r.ParseMultipartForm(1 << 20)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		assert.Equal("whisper-1", r.FormValue("model"))
		assert.Equal(openai.FormatVerboseJson, r.FormValue("response_format"))
		assert.Equal(openai.GranularityWord, r.FormValue("timestamp_granularities[]"))
		if _, header, err := r.FormFile("file"); assert.NoError(err) {
			assert.Equal("clip.wav", header.Filename)
		}
		w.Header().Set(types.ContentTypeHeader, types.ContentTypeJSON)
		json.NewEncoder(w).Encode(map[string]any{
			"task":     "transcribe",
			"language": "english",
			"duration": 1.0,
			"text":     "Hello world.",
			"words": []map[string]any{
				{"word": "Hello", "start": 0.0, "end": 0.4},
				{"word": "world.", "start": 0.4, "end": 0.9},
			},
		})
	}))
	defer server.Close()

	c, err := openai.New("key", client.OptEndpoint(server.URL))
	if !assert.NoError(err) {
		t.FailNow()
	}
	audio, err := wav.NewSilence(time.Second, 16000)
	if !assert.NoError(err) {
		t.FailNow()
	}
	resp, err := c.Transcribe(context.Background(), openai.TranscriptionRequest{
		TranslationRequest: openai.TranslationRequest{
			File:   multipart.File{Path: "clip.wav", Body: audio},
			Format: types.StringPtr(openai.FormatVerboseJson),
		},
		Granularity: types.StringPtr(openai.GranularityWord),
	})
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("Hello world.", resp.Text)
	assert.Equal(" world.", resp.Transcription().Words[1].Text)
}

func Test_Transcribe_002(t *testing.T) {
	assert := assert.New(t)
	c, err := openai.New("key")
	if !assert.NoError(err) {
		t.FailNow()
	}

	// Checked before any request is made
	_, err = c.Transcribe(context.Background(), openai.TranscriptionRequest{})
	assert.Error(err)
	_, err = c.Transcribe(context.Background(), openai.TranscriptionRequest{
		TranslationRequest: openai.TranslationRequest{Model: "other"},
	})
	assert.Error(err)
	audio, err := wav.NewSilence(time.Second, 16000)
	if !assert.NoError(err) {
		t.FailNow()
	}
	_, err = c.Transcribe(context.Background(), openai.TranscriptionRequest{
		TranslationRequest: openai.TranslationRequest{
			File: multipart.File{Body: audio},
		},
		Granularity: types.StringPtr(openai.GranularityWord),
	})
	assert.Error(err)
}

func Test_Transcribe_003(t *testing.T) {
	assert := assert.New(t)
	client := NewClient(t)

	f, err := os.Open(filepath.Join("../../../samples/jfk.wav"))
	if err != nil {
		t.Skip("skipping test, sample file not available")
	}
	defer f.Close()

	// Perform transcription with word timestamps
	resp, err := client.Transcribe(context.Background(), openai.TranscriptionRequest{
		TranslationRequest: openai.TranslationRequest{
			File:   multipart.File{Body: f},
			Format: types.StringPtr(openai.FormatVerboseJson),
		},
		Granularity: types.StringPtr(openai.GranularityWord),
	})
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.NotEmpty(resp.Transcription().Words)
	t.Log(resp.Transcription())
}

///////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func NewClient(t *testing.T) *openai.Client {
	apikey := os.ExpandEnv("${OPENAI_API_KEY}")
	if apikey == "" {
		t.Skip("skipping test, OPENAI_API_KEY environment variable not set")
	}
	client, err := openai.New(apikey, client.OptTrace(os.Stderr, true))
	if err != nil {
		t.Fatalf("failed to create OpenAI client: %v", err)
	}
	return client
}
