package api

import (
	"net/http"
	"time"

	// Packages
	multipart "github.com/mutablelogic/go-client/pkg/multipart"
	client "github.com/mutablelogic/go-subtitle/pkg/client"
	task "github.com/mutablelogic/go-subtitle/pkg/task"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type reqTranscribe struct {
	Model       string         `json:"model"`
	File        multipart.File `json:"file"`
	Language    *string        `json:"language,omitempty"`
	Prompt      *string        `json:"prompt,omitempty"`
	Temperature *float64       `json:"temperature,omitempty"`
	Format      *string        `json:"response_format,omitempty"`
	Pause       *float64       `json:"pause,omitempty"`
	Translate   bool           `json:"translate,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// TranscribeFile sends audio to a transcription service, and segments the
// returned word stream into subtitles
func TranscribeFile(w http.ResponseWriter, r *http.Request, service *client.Client) error {
	// Read the request
	var req reqTranscribe
	if err := httprequest.Read(r, &req); err != nil {
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	} else if req.Model == "" {
		return httpresponse.Error(w, httpresponse.ErrBadRequest, "missing model")
	} else if req.File.Body == nil {
		return httpresponse.Error(w, httpresponse.ErrBadRequest, "missing file")
	}

	// Set options
	opts := []client.Opt{client.OptPath(req.File.Path)}
	if req.Language != nil {
		opts = append(opts, client.OptLanguage(types.PtrString(req.Language)))
	}
	if req.Prompt != nil {
		opts = append(opts, client.OptPrompt(types.PtrString(req.Prompt)))
	}
	if req.Temperature != nil {
		opts = append(opts, client.OptTemperature(types.PtrFloat64(req.Temperature)))
	}

	// Segmenter options
	var taskopts []task.Opt
	if req.Pause != nil {
		if pause := types.PtrFloat64(req.Pause); pause < 0 {
			return httpresponse.Error(w, httpresponse.ErrBadRequest, "pause cannot be negative")
		} else {
			taskopts = append(taskopts, task.OptPause(time.Duration(pause*float64(time.Second))))
		}
	}

	// Transcribe or translate the audio
	fn := service.Words
	if req.Translate {
		fn = service.Translate
	}
	words, err := fn(r.Context(), req.Model, req.File.Body, opts...)
	if err != nil {
		return httpresponse.Error(w, httpresponse.ErrGatewayError, err.Error())
	}

	// Segment the words
	result, err := task.Run(words, taskopts...)
	if err != nil {
		return errorResponse(w, err)
	}

	// Response to client
	return response(w, types.PtrString(req.Format), result)
}
