package api

import (
	"io"
	"net/http"
	"time"

	// Packages
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
	srt "github.com/mutablelogic/go-subtitle/pkg/srt"
	task "github.com/mutablelogic/go-subtitle/pkg/task"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type querySegment struct {
	Format string  `json:"format"`
	Pause  float64 `json:"pause"`
	Strict bool    `json:"strict"`
	Stream bool    `json:"stream"`
}

type queryReformat struct {
	Format  string `json:"format"`
	NoSpace bool   `json:"nospace"`
	Fold    bool   `json:"fold"`
}

type queryAlign struct {
	Tolerance int `json:"tolerance"`
}

type reqAlign struct {
	Source string `json:"source"`
	Target string `json:"target,omitempty"`
}

type respAlign struct {
	Rows []srt.AlignedCue `json:"rows"`
	Skew string           `json:"skew,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Segment reads a transcription and returns subtitles or a transcript
func Segment(w http.ResponseWriter, r *http.Request) error {
	var query querySegment
	if err := httprequest.Query(r.URL.Query(), &query); err != nil {
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	}
	opts, err := query.opts(r.URL.Query().Has("pause"))
	if err != nil {
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	}

	// Read the word stream
	var req schema.Transcription
	if err := httprequest.Read(r, &req); err != nil {
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	}

	// Stream progress and cues
	if query.Stream {
		stream := httpresponse.NewTextStream(w)
		if stream == nil {
			return httpresponse.Error(w, httpresponse.ErrInternalError, "Cannot create text stream")
		}
		defer stream.Close()

		opts = append(opts, task.OptCue(func(cue *schema.Cue) {
			stream.Write(schema.SegmentStreamCueType, schema.Event{Type: schema.SegmentStreamCueType, Cue: cue})
		}), task.OptProgress(func(v float64) {
			stream.Write(schema.SegmentStreamProgressType, schema.Event{Type: schema.SegmentStreamProgressType, Progress: v})
		}))
		if result, err := task.Run(&req, opts...); err != nil {
			stream.Write(schema.SegmentStreamErrorType, schema.Event{Type: schema.SegmentStreamErrorType, Text: err.Error()})
		} else {
			stream.Write(schema.SegmentStreamDoneType, schema.Event{Type: schema.SegmentStreamDoneType, Text: result.Paced})
		}
		return nil
	}

	// Segment the stream
	result, err := task.Run(&req, opts...)
	if err != nil {
		return errorResponse(w, err)
	}

	// Return the result
	return response(w, query.Format, result)
}

// Reformat recovers subtitle blocks from a text blob
func Reformat(w http.ResponseWriter, r *http.Request) error {
	var query queryReformat
	if err := httprequest.Query(r.URL.Query(), &query); err != nil {
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	}

	// Options
	var opts []srt.Opt
	contentType := ContentTypeSrt
	switch query.Format {
	case FormatSrt, "":
		// Default
	case FormatVtt:
		opts = append(opts, srt.OptVTT())
		contentType = ContentTypeVtt
	default:
		return httpresponse.Error(w, httpresponse.ErrBadRequest, "invalid format: "+query.Format)
	}
	if query.NoSpace {
		opts = append(opts, srt.OptRemoveSpace())
	}
	if query.Fold {
		opts = append(opts, srt.OptFoldWidth())
	}

	// Read the body
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	}

	// Reformat the text
	doc, _, err := srt.Reformat(string(data), opts...)
	if err != nil {
		return errorResponse(w, err)
	}

	// Return the document
	return httpresponse.Write(w, http.StatusOK, contentType, func(w io.Writer) (int, error) {
		return w.Write([]byte(doc))
	})
}

// Align pairs the cues of two documents. Skew is reported in the response
// rather than as an error.
func Align(w http.ResponseWriter, r *http.Request) error {
	var query queryAlign
	if err := httprequest.Query(r.URL.Query(), &query); err != nil {
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	}
	tolerance := srt.DefaultTolerance
	if r.URL.Query().Has("tolerance") {
		if tolerance = query.Tolerance; tolerance < 0 {
			return httpresponse.Error(w, httpresponse.ErrBadRequest, "tolerance cannot be negative")
		}
	}

	// Read the documents
	var req reqAlign
	if err := httprequest.Read(r, &req); err != nil {
		return httpresponse.Error(w, httpresponse.ErrBadRequest, err.Error())
	}
	source, err := srt.ParseString(req.Source)
	if err != nil {
		return errorResponse(w, err)
	}
	var target []*schema.Cue
	if req.Target != "" {
		if target, err = srt.ParseString(req.Target); err != nil {
			return errorResponse(w, err)
		}
	}

	// Align and check for skew
	resp := respAlign{
		Rows: srt.Align(source, target),
	}
	if req.Target != "" {
		if err := srt.CheckSkew(source, target, tolerance); err != nil {
			resp.Skew = err.Error()
		}
	}

	// Return the rows
	return httpresponse.JSON(w, http.StatusOK, 2, resp)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (q querySegment) opts(pause bool) ([]task.Opt, error) {
	var opts []task.Opt
	switch q.Format {
	case FormatSrt, FormatVtt, FormatText, FormatPaced, FormatJson, "":
		// Valid
	default:
		return nil, httpresponse.ErrBadRequest.Withf("invalid format %q", q.Format)
	}
	if pause {
		if q.Pause < 0 {
			return nil, httpresponse.ErrBadRequest.Withf("pause %v cannot be negative", q.Pause)
		}
		opts = append(opts, task.OptPause(time.Duration(q.Pause*float64(time.Second))))
	}
	if q.Strict {
		opts = append(opts, task.OptStrict())
	}
	return opts, nil
}
