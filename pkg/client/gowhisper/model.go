package gowhisper

import (
	"context"
	"errors"
	"net/url"

	// Packages
	client "github.com/mutablelogic/go-client"
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
)

/////////////////////////////////////////////////////////////////////////////////
// TYPES

type reqDownload struct {
	Path string `json:"path"`
}

// respDownload is both the progress event and the final response
type respDownload struct {
	schema.Model
	Status    string `json:"status,omitempty"`
	Total     uint64 `json:"total,omitempty"`
	Completed uint64 `json:"completed,omitempty"`
}

/////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// DeleteModel removes a model from the server
func (c *Client) DeleteModel(ctx context.Context, model string) error {
	return c.DoWithContext(ctx, client.MethodDelete, nil, client.OptPath("models", model))
}

// DownloadModel asks the server to download a model. When fn is not nil
// progress is streamed and fn is called with the bytes received so far.
func (c *Client) DownloadModel(ctx context.Context, path string, fn func(cur, total uint64)) (*schema.Model, error) {
	var response respDownload
	payload, err := client.NewJSONRequest(reqDownload{Path: path})
	if err != nil {
		return nil, err
	}

	// Without a callback, wait for the response
	if fn == nil {
		if err := c.DoWithContext(ctx, payload, &response, client.OptPath("models"), client.OptNoTimeout()); err != nil {
			return nil, err
		}
		return &response.Model, nil
	}

	// Stream progress events
	query := url.Values{"stream": []string{"true"}}
	if err := c.DoWithContext(ctx, payload, &response,
		client.OptPath("models"),
		client.OptQuery(query),
		client.OptNoTimeout(),
		client.OptTextStreamCallback(func(evt client.TextStreamEvent) error {
			return onDownloadEvent(evt, &response, fn)
		}),
	); err != nil {
		return nil, err
	}
	return &response.Model, nil
}

/////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func onDownloadEvent(evt client.TextStreamEvent, response *respDownload, fn func(cur, total uint64)) error {
	switch evt.Event {
	case DownloadStreamProgressType:
		var progress respDownload
		if err := evt.Json(&progress); err != nil {
			return err
		}
		fn(progress.Completed, progress.Total)
	case DownloadStreamErrorType:
		var message string
		if err := evt.Json(&message); err != nil {
			return err
		}
		return errors.New(message)
	case DownloadStreamDoneType:
		return evt.Json(response)
	}
	return nil
}
