package client

import (
	"io"

	// Packages
	multipart "github.com/mutablelogic/go-client/pkg/multipart"
	elevenlabs "github.com/mutablelogic/go-subtitle/pkg/client/elevenlabs"
	gowhisper "github.com/mutablelogic/go-subtitle/pkg/client/gowhisper"
	openai "github.com/mutablelogic/go-subtitle/pkg/client/openai"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Request options
type opts struct {
	openai     openai.TranscriptionRequest
	elevenlabs elevenlabs.TranscribeRequest
	transcribe gowhisper.TranscriptionRequest
	translate  gowhisper.TranslationRequest
}

type Opt func(apitype, *opts) error

type apitype uint

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	apiopenai apitype = iota
	apielevenlabs
	apigowhisper
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// applyOpts sets up requests for word timestamps, which need the verbose
// response format from OpenAI compatible services
func applyOpts(api apitype, model string, r io.Reader, opt ...Opt) (*opts, error) {
	var o opts

	o.openai.File = multipart.File{Body: r}
	o.openai.Model = model
	o.openai.Format = types.StringPtr(openai.FormatVerboseJson)
	o.openai.Granularity = types.StringPtr(openai.GranularityWord)
	o.elevenlabs.File = multipart.File{Body: r}
	o.elevenlabs.Model = model
	o.elevenlabs.Timestamps = types.StringPtr(elevenlabs.TimestampsWord)
	o.transcribe.File = multipart.File{Body: r}
	o.transcribe.Model = model
	o.transcribe.Format = types.StringPtr(openai.FormatVerboseJson)
	o.transcribe.Granularity = types.StringPtr(openai.GranularityWord)
	o.translate.File = multipart.File{Body: r}
	o.translate.Model = model
	o.translate.Format = types.StringPtr(openai.FormatVerboseJson)

	for _, opt := range opt {
		if err := opt(api, &o); err != nil {
			return nil, err
		}
	}
	return &o, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Set language of the speech
func OptLanguage(language string) Opt {
	return func(api apitype, o *opts) error {
		if language == "" {
			return nil
		}
		whisper, scribe := LanguageCode(language)
		switch api {
		case apiopenai, apigowhisper:
			if whisper == "" {
				return httpresponse.ErrBadRequest.Withf("language %q not supported", language)
			}
			o.openai.Language = types.StringPtr(whisper)
			o.transcribe.Language = types.StringPtr(whisper)
			o.translate.Language = types.StringPtr(whisper)
		case apielevenlabs:
			if scribe == "" {
				return httpresponse.ErrBadRequest.Withf("language %q not supported", language)
			}
			o.elevenlabs.Language = types.StringPtr(scribe)
		default:
			return httpresponse.ErrBadRequest.Withf("invalid API type %d", api)
		}
		return nil
	}
}

// Set path for the file to be transcribed
func OptPath(v string) Opt {
	return func(api apitype, o *opts) error {
		o.openai.File.Path = v
		o.elevenlabs.File.Path = v
		o.translate.File.Path = v
		o.transcribe.File.Path = v
		return nil
	}
}

// Text to guide the model's style or continue a previous audio segment.
func OptPrompt(v string) Opt {
	return func(api apitype, o *opts) error {
		switch api {
		case apiopenai, apigowhisper:
			o.openai.Prompt = types.StringPtr(v)
			o.translate.Prompt = types.StringPtr(v)
			o.transcribe.Prompt = types.StringPtr(v)
		default:
			return httpresponse.ErrNotImplemented.Withf("OptPrompt not supported")
		}
		return nil
	}
}

// The sampling temperature, between 0 and 1.
func OptTemperature(v float64) Opt {
	return func(api apitype, o *opts) error {
		if v < 0 || v > 1 {
			return httpresponse.ErrBadRequest.Withf("temperature %v out of range", v)
		}
		switch api {
		case apiopenai, apigowhisper:
			o.openai.Temperature = types.Float64Ptr(v)
			o.translate.Temperature = types.Float64Ptr(v)
			o.transcribe.Temperature = types.Float64Ptr(v)
		default:
			return httpresponse.ErrNotImplemented.Withf("OptTemperature not supported")
		}
		return nil
	}
}

// Identify speakers in the audio
func OptDiarize() Opt {
	return func(api apitype, o *opts) error {
		switch api {
		case apigowhisper:
			o.transcribe.Diarize = types.BoolPtr(true)
		case apielevenlabs:
			o.elevenlabs.Diarize = types.BoolPtr(true)
		default:
			return httpresponse.ErrBadRequest.With("diarization not supported")
		}
		return nil
	}
}
