package openai

import (
	"context"
	"os"
	"path/filepath"
	"slices"

	// Packages
	errors "github.com/djthorpe/go-errors"
	client "github.com/mutablelogic/go-client"
	multipart "github.com/mutablelogic/go-client/pkg/multipart"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client with a bearer token. Options can override the
// endpoint.
func New(apikey string, opts ...client.ClientOpt) (*Client, error) {
	opts = append([]client.ClientOpt{
		client.OptEndpoint(Endpoint),
		client.OptReqToken(client.Token{
			Scheme: "Bearer",
			Value:  apikey,
		}),
	}, opts...)
	if client, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{Client: client}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Transcribe speech in its own language. Word timestamps are returned when
// the granularity is word and the format is verbose_json.
func (c *Client) Transcribe(ctx context.Context, req TranscriptionRequest) (*TranscriptionResponse, error) {
	if err := req.validate(); err != nil {
		return nil, err
	} else if req.Granularity != nil && (req.Format == nil || *req.Format != FormatVerboseJson) {
		return nil, errors.ErrBadParameter.Withf("timestamp granularity requires format %q", FormatVerboseJson)
	}
	return c.upload(ctx, TranscribePath, req)
}

// Translate speech into english. Only segment timestamps are returned.
func (c *Client) Translate(ctx context.Context, req TranslationRequest) (*TranscriptionResponse, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	return c.upload(ctx, TranslatePath, req)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// upload sends the request as a multipart form
func (c *Client) upload(ctx context.Context, path string, req any) (*TranscriptionResponse, error) {
	var response TranscriptionResponse
	if payload, err := client.NewMultipartRequest(req, client.ContentTypeAny); err != nil {
		return nil, err
	} else if err := c.DoWithContext(ctx, payload, &response, client.OptPath(path)); err != nil {
		return nil, err
	}
	return &response, nil
}

// validate sets the default model and the file name, which the service
// uses to detect the audio format
func (req *TranslationRequest) validate() error {
	if req.Model == "" {
		req.Model = Models[0]
	} else if !slices.Contains(Models, req.Model) {
		return errors.ErrBadParameter.Withf("invalid model %q, must be one of %v", req.Model, Models)
	}
	return FileName(&req.File)
}

// FileName checks a file is present and names it after the underlying file
// when no path is set
func FileName(file *multipart.File) error {
	if file.Body == nil {
		return errors.ErrBadParameter.With("file is required")
	}
	if file.Path == "" {
		if f, ok := file.Body.(*os.File); ok {
			file.Path = filepath.Base(f.Name())
		}
	}
	return nil
}
