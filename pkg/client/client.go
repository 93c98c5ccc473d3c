// Package client returns word streams from remote transcription services.
// Services are configured from the environment: OPENAI_API_KEY for OpenAI,
// ELEVENLABS_API_KEY for ElevenLabs and WHISPER_URL for a go-whisper server.
package client

import (
	"context"
	"io"
	"os"
	"slices"

	// Packages
	client "github.com/mutablelogic/go-client"
	elevenlabs "github.com/mutablelogic/go-subtitle/pkg/client/elevenlabs"
	gowhisper "github.com/mutablelogic/go-subtitle/pkg/client/gowhisper"
	openai "github.com/mutablelogic/go-subtitle/pkg/client/openai"
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	openai     *openai.Client
	elevenlabs *elevenlabs.Client
	gowhisper  *gowhisper.Client
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client, with openai, elevenlabs and gowhisper clients
// for each service configured in the environment
func New(opts ...client.ClientOpt) (*Client, error) {
	self := new(Client)

	// openai client
	if key := openai_key(); key != "" {
		if client, err := openai.New(key, opts...); err != nil {
			return nil, err
		} else {
			self.openai = client
		}
	}

	// elevenlabs client
	if key := elevenlabs_key(); key != "" {
		if client, err := elevenlabs.New(key, opts...); err != nil {
			return nil, err
		} else {
			self.elevenlabs = client
		}
	}

	// gowhisper client
	if endpoint := gowhisper_endpoint(); endpoint != "" {
		if client, err := gowhisper.New(endpoint, opts...); err != nil {
			return nil, err
		} else {
			self.gowhisper = client
		}
	}

	// Return success
	return self, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func openai_key() string {
	return os.Getenv("OPENAI_API_KEY")
}

func elevenlabs_key() string {
	return os.Getenv("ELEVENLABS_API_KEY")
}

func gowhisper_endpoint() string {
	return os.Getenv("WHISPER_URL")
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// List models for transcription
func (c *Client) ListModels(ctx context.Context) ([]schema.Model, error) {
	result := make([]schema.Model, 0, 10)
	if c.openai != nil {
		for _, model := range openai.Models {
			result = append(result, schema.Model{
				Id:   model,
				Path: "openai",
			})
		}
	}
	if c.elevenlabs != nil {
		for _, model := range elevenlabs.Models {
			result = append(result, schema.Model{
				Id:   model,
				Path: "elevenlabs",
			})
		}
	}
	if c.gowhisper != nil {
		models, err := c.gowhisper.ListModels(ctx)
		if err != nil {
			return nil, err
		}
		result = append(result, models...)
	}

	// Return success
	return result, nil
}

// Words transcribes speech in its own language and returns the word stream,
// with a timestamp for every word
func (c *Client) Words(ctx context.Context, model string, r io.Reader, opt ...Opt) (*schema.Transcription, error) {
	switch {
	case c.openai != nil && slices.Contains(openai.Models, model):
		if req, err := applyOpts(apiopenai, model, r, opt...); err != nil {
			return nil, err
		} else if resp, err := c.openai.Transcribe(ctx, req.openai); err != nil {
			return nil, err
		} else {
			return resp.Transcription(), nil
		}
	case c.elevenlabs != nil && slices.Contains(elevenlabs.Models, model):
		if req, err := applyOpts(apielevenlabs, model, r, opt...); err != nil {
			return nil, err
		} else if resp, err := c.elevenlabs.Transcribe(ctx, req.elevenlabs); err != nil {
			return nil, err
		} else {
			return resp.Transcription(), nil
		}
	case c.gowhisper != nil && model != "":
		if req, err := applyOpts(apigowhisper, model, r, opt...); err != nil {
			return nil, err
		} else if resp, err := c.gowhisper.Transcribe(ctx, req.transcribe); err != nil {
			return nil, err
		} else {
			return resp.Transcription(), nil
		}
	default:
		return nil, httpresponse.ErrNotImplemented.Withf("model %q is not supported", model)
	}
}

// Translate transcribes speech into english. The services return segment
// timestamps only, so each word of the stream is a whole segment.
func (c *Client) Translate(ctx context.Context, model string, r io.Reader, opt ...Opt) (*schema.Transcription, error) {
	switch {
	case c.openai != nil && slices.Contains(openai.Models, model):
		if req, err := applyOpts(apiopenai, model, r, opt...); err != nil {
			return nil, err
		} else if resp, err := c.openai.Translate(ctx, req.openai.TranslationRequest); err != nil {
			return nil, err
		} else {
			return resp.Transcription(), nil
		}
	case c.elevenlabs != nil && slices.Contains(elevenlabs.Models, model):
		return nil, httpresponse.ErrNotImplemented.Withf("translation with model %q is not supported", model)
	case c.gowhisper != nil && model != "":
		if req, err := applyOpts(apigowhisper, model, r, opt...); err != nil {
			return nil, err
		} else if resp, err := c.gowhisper.Translate(ctx, req.translate); err != nil {
			return nil, err
		} else {
			return resp.Transcription(), nil
		}
	default:
		return nil, httpresponse.ErrNotImplemented.Withf("model %q is not supported", model)
	}
}

// DownloadModel asks the go-whisper server to download a model
func (c *Client) DownloadModel(ctx context.Context, path string, fn func(cur, total uint64)) (*schema.Model, error) {
	if c.gowhisper == nil {
		return nil, httpresponse.ErrNotImplemented.With("WHISPER_URL is not set")
	}
	return c.gowhisper.DownloadModel(ctx, path, fn)
}

// DeleteModel asks the go-whisper server to delete a model
func (c *Client) DeleteModel(ctx context.Context, model string) error {
	if c.gowhisper == nil {
		return httpresponse.ErrNotImplemented.With("WHISPER_URL is not set")
	}
	return c.gowhisper.DeleteModel(ctx, model)
}
