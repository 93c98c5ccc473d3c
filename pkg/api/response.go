package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	// Packages
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
	srt "github.com/mutablelogic/go-subtitle/pkg/srt"
	task "github.com/mutablelogic/go-subtitle/pkg/task"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	FormatJson  = "json"
	FormatText  = "text"
	FormatPaced = "paced"
	FormatSrt   = "srt"
	FormatVtt   = "vtt"
)

const (
	ContentTypeSrt = "application/x-subrip"
	ContentTypeVtt = "text/vtt"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// response writes the result of a task in the requested format
func response(w http.ResponseWriter, format string, result *task.Result) error {
	switch strings.ToLower(format) {
	case FormatJson:
		return httpresponse.JSON(w, http.StatusOK, 2, result)
	case FormatText:
		return httpresponse.Write(w, http.StatusOK, types.ContentTypeTextPlain, func(w io.Writer) (int, error) {
			return w.Write([]byte(result.Continuous))
		})
	case FormatPaced:
		return httpresponse.Write(w, http.StatusOK, types.ContentTypeTextPlain, func(w io.Writer) (int, error) {
			return w.Write([]byte(result.Paced))
		})
	case FormatSrt, "":
		return httpresponse.Write(w, http.StatusOK, ContentTypeSrt, func(w io.Writer) (int, error) {
			return 0, srt.Write(w, result.Cues)
		})
	case FormatVtt:
		return httpresponse.Write(w, http.StatusOK, ContentTypeVtt, func(w io.Writer) (int, error) {
			return 0, srt.WriteVTT(w, result.Cues)
		})
	}

	// Error - invalid format
	return httpresponse.Error(w, httpresponse.ErrBadRequest, "invalid response format: "+format)
}

// errorResponse maps an error onto a status code. Input errors are bad
// requests, and a document with no recoverable cues cannot be processed.
func errorResponse(w http.ResponseWriter, err error) error {
	switch {
	case errors.Is(err, schema.ErrNoCuesRecovered):
		return httpresponse.Error(w, httpresponse.Err(http.StatusUnprocessableEntity), err.Error())
	case errors.Is(err, schema.ErrInputMissing),
		errors.Is(err, schema.ErrMalformedTimestamp),
		errors.Is(err, schema.ErrMalformedSubtitle),
		errors.Is(err, schema.ErrBadWord),
		errors.Is(err, schema.ErrAlignmentSkew):
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	default:
		return httpresponse.Error(w, httpresponse.ErrInternalError, err.Error())
	}
}
