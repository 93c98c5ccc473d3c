package gowhisper

import (
	"context"

	// Packages
	errors "github.com/djthorpe/go-errors"
	client "github.com/mutablelogic/go-client"
	openai "github.com/mutablelogic/go-subtitle/pkg/client/openai"
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client for a go-whisper server, which has an OpenAI compatible API and
// runs models locally
type Client struct {
	*client.Client
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client for the server at endpoint
func New(endpoint string, opts ...client.ClientOpt) (*Client, error) {
	opts = append([]client.ClientOpt{
		client.OptEndpoint(endpoint),
	}, opts...)
	if client, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{Client: client}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (c *Client) Ping(ctx context.Context) error {
	return c.DoWithContext(ctx, client.MethodGet, nil, client.OptPath("health"))
}

func (c *Client) ListModels(ctx context.Context) ([]schema.Model, error) {
	var response struct {
		Models []schema.Model `json:"models"`
	}
	if err := c.DoWithContext(ctx, client.MethodGet, &response, client.OptPath("models")); err != nil {
		return nil, err
	}
	return response.Models, nil
}

// Transcribe speech in its own language with a model on the server
func (c *Client) Transcribe(ctx context.Context, req TranscriptionRequest) (*openai.TranscriptionResponse, error) {
	if req.Model == "" {
		return nil, errors.ErrBadParameter.With("model is required")
	} else if err := openai.FileName(&req.File); err != nil {
		return nil, err
	}
	return c.upload(ctx, openai.TranscribePath, req)
}

// Translate speech into english with a model on the server
func (c *Client) Translate(ctx context.Context, req TranslationRequest) (*openai.TranscriptionResponse, error) {
	if req.Model == "" {
		return nil, errors.ErrBadParameter.With("model is required")
	} else if err := openai.FileName(&req.File); err != nil {
		return nil, err
	}
	return c.upload(ctx, openai.TranslatePath, req)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) upload(ctx context.Context, path string, req any) (*openai.TranscriptionResponse, error) {
	var response openai.TranscriptionResponse
	if payload, err := client.NewMultipartRequest(req, client.ContentTypeAny); err != nil {
		return nil, err
	} else if err := c.DoWithContext(ctx, payload, &response, client.OptPath(path)); err != nil {
		return nil, err
	}
	return &response, nil
}
