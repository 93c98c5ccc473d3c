package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	// Packages
	api "github.com/mutablelogic/go-subtitle/pkg/api"
	client "github.com/mutablelogic/go-subtitle/pkg/client"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ServerCmd struct {
	Listen string `flag:"" help:"Address to listen on" default:"${SUBTITLE_LISTEN}"`
	Base   string `flag:"" help:"Path prefix for endpoints" default:"${SUBTITLE_BASE}"`
	Local  bool   `flag:"" help:"Do not register transcription endpoints"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ServerCmd) Run(app *Globals) error {
	var service *client.Client
	if !cmd.Local {
		remote, err := app.client()
		if err != nil {
			return err
		}
		service = remote
	}

	// Create the server
	server := &http.Server{
		Addr:              cmd.Listen,
		Handler:           api.RegisterEndpoints(cmd.Base, service, nil, app.Debug),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Shutdown when the context is cancelled
	go func() {
		<-app.ctx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	// Serve until shutdown
	log.Printf("Listening on %q", cmd.Listen)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
