package main

import (
	"fmt"
	"log"
	"time"

	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ModelsCmd struct{}

type DownloadCmd struct {
	Path string `arg:"" help:"Model to download"`
}

type DeleteCmd struct {
	Model string `arg:"" help:"Model to delete"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd ModelsCmd) Run(app *Globals) error {
	remote, err := app.client()
	if err != nil {
		return err
	}

	// List models
	models, err := remote.ListModels(app.ctx)
	if err != nil {
		return err
	} else if len(models) == 0 {
		return httpresponse.ErrNotFound.With("no models found")
	} else {
		return app.writer.Write(models, tablewriter.OptHeader())
	}
}

func (cmd *DownloadCmd) Run(app *Globals) error {
	remote, err := app.client()
	if err != nil {
		return err
	}

	t := time.Now()
	model, err := remote.DownloadModel(app.ctx, cmd.Path, func(cur, total uint64) {
		if time.Since(t) > time.Second && total > 0 {
			log.Printf("Downloaded %.0f%%", float64(cur)/float64(total)*100)
			t = time.Now()
		}
	})
	if err != nil {
		return err
	}

	// Print the model details
	fmt.Println(model)
	return nil
}

func (cmd *DeleteCmd) Run(app *Globals) error {
	remote, err := app.client()
	if err != nil {
		return err
	}
	if err := remote.DeleteModel(app.ctx, cmd.Model); err != nil {
		return err
	}
	return ModelsCmd{}.Run(app)
}
