package elevenlabs

import (
	"context"
	"slices"

	// Packages
	errors "github.com/djthorpe/go-errors"
	client "github.com/mutablelogic/go-client"
	openai "github.com/mutablelogic/go-subtitle/pkg/client/openai"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client which authenticates with an API key
func New(apikey string, opts ...client.ClientOpt) (*Client, error) {
	opts = append([]client.ClientOpt{
		client.OptEndpoint(Endpoint),
		client.OptHeader("xi-api-key", apikey),
	}, opts...)
	if client, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{Client: client}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Transcribe speech with a scribe model. Words, spacing and audio events
// are returned with timestamps when the granularity is set.
func (c *Client) Transcribe(ctx context.Context, req TranscribeRequest) (*TranscribeResponse, error) {
	var response TranscribeResponse
	if req.Model == "" {
		req.Model = Models[0]
	} else if !slices.Contains(Models, req.Model) {
		return nil, errors.ErrBadParameter.Withf("invalid model %q, must be one of %v", req.Model, Models)
	}
	if err := openai.FileName(&req.File); err != nil {
		return nil, err
	}

	// Send the audio
	if payload, err := client.NewMultipartRequest(req, client.ContentTypeAny); err != nil {
		return nil, err
	} else if err := c.DoWithContext(ctx, payload, &response, client.OptPath(TranscribePath)); err != nil {
		return nil, err
	}
	return &response, nil
}
