// Package api registers HTTP endpoints which segment word streams,
// reformat translated subtitles and align subtitle documents. When a
// transcription client is provided, audio can be transcribed too.
package api

import (
	"net/http"
	"os"

	// Packages
	client "github.com/mutablelogic/go-subtitle/pkg/client"
	openai "github.com/mutablelogic/go-subtitle/pkg/client/openai"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	logger "github.com/mutablelogic/go-server/pkg/logger"
	types "github.com/mutablelogic/go-server/pkg/types"
)

/////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func RegisterEndpoints(base string, service *client.Client, mux *http.ServeMux, debug bool) *http.ServeMux {
	// Create a new router
	if mux == nil {
		mux = http.NewServeMux()
	}

	// Create a logger
	logger := logger.New(os.Stderr, logger.Term, debug)

	// Not Found: GET /
	//   returns a not found response
	mux.HandleFunc("/", logger.HandleFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		httpresponse.Error(w, httpresponse.ErrNotFound)
	}))

	// Health: GET /v1/health
	//   returns an empty OK response
	mux.HandleFunc(types.JoinPath(base, "health"), logger.HandleFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		switch r.Method {
		case http.MethodGet:
			httpresponse.Empty(w, http.StatusOK)
		default:
			httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	}))

	// Segment: POST /v1/subtitles/segment?format={srt|vtt|text|paced|json}&pause={seconds}&strict={bool}&stream={bool}
	//   segments a word stream into cues and transcripts
	//   if stream is true then cues are streamed back to the client as they are emitted
	mux.HandleFunc(types.JoinPath(base, "subtitles/segment"), logger.HandleFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		switch r.Method {
		case http.MethodPost:
			Segment(w, r)
		default:
			httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	}))

	// Reformat: POST /v1/subtitles/reformat?format={srt|vtt}&nospace={bool}&fold={bool}
	//   recovers subtitle blocks from a text blob, such as the output of a translator
	mux.HandleFunc(types.JoinPath(base, "subtitles/reformat"), logger.HandleFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		switch r.Method {
		case http.MethodPost:
			Reformat(w, r)
		default:
			httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	}))

	// Align: POST /v1/subtitles/align?tolerance={int}
	//   pairs the cues of a source and target document, and checks for skew
	mux.HandleFunc(types.JoinPath(base, "subtitles/align"), logger.HandleFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		switch r.Method {
		case http.MethodPost:
			Align(w, r)
		default:
			httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	}))

	// Remote services are optional
	if service == nil {
		return mux
	}

	// List Models: GET /v1/models
	//   returns the models of the configured transcription services
	mux.HandleFunc(types.JoinPath(base, "models"), logger.HandleFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		switch r.Method {
		case http.MethodGet:
			ListModels(w, r, service)
		case http.MethodPost:
			DownloadModel(w, r, service)
		default:
			httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	}))

	// Download Model: POST /v1/models?stream={bool}
	//   downloads a model on the go-whisper server
	//   if stream is true then progress is streamed back to the client
	// Delete Model: DELETE /v1/models/{id}
	//   deletes a model from the go-whisper server
	mux.HandleFunc(types.JoinPath(base, "models/{id...}"), logger.HandleFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		switch r.Method {
		case http.MethodDelete:
			DeleteModelById(w, r, service, r.PathValue("id"))
		default:
			httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	}))

	// Transcribe: POST /v1/audio/transcriptions
	//   transcribes audio with word timestamps, and returns subtitles or transcripts
	mux.HandleFunc(types.JoinPath(base, openai.TranscribePath), logger.HandleFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		switch r.Method {
		case http.MethodPost:
			TranscribeFile(w, r, service)
		default:
			httpresponse.Error(w, httpresponse.Err(http.StatusMethodNotAllowed), r.Method)
		}
	}))

	// Return mux
	return mux
}
