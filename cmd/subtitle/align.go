package main

import (
	"log"

	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
	srt "github.com/mutablelogic/go-subtitle/pkg/srt"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type AlignCmd struct {
	Source    string `arg:"" help:"Source subtitle file" type:"existingfile"`
	Target    string `arg:"" optional:"" help:"Translated subtitle file" type:"existingfile"`
	Tolerance int    `flag:"" help:"Largest difference in block counts which is not reported" default:"3"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *AlignCmd) Run(app *Globals) error {
	source, err := srt.ReadFile(cmd.Source)
	if err != nil {
		return err
	}

	var target []*schema.Cue
	if cmd.Target != "" {
		if target, err = srt.ReadFile(cmd.Target); err != nil {
			return err
		}
		if err := srt.CheckSkew(source, target, cmd.Tolerance); err != nil {
			log.Printf("Warning: %v", err)
		}
	}

	return app.writer.Write(srt.Align(source, target), tablewriter.OptHeader())
}
