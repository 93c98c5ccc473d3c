package main

import (
	"os"

	// Packages
	srt "github.com/mutablelogic/go-subtitle/pkg/srt"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ConvertCmd struct {
	Path   string `arg:"" help:"Subtitle file (SRT, WebVTT, SSA, STL or TTML)" type:"existingfile"`
	Format string `flag:"" help:"Output format" default:"srt" enum:"srt,vtt"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ConvertCmd) Run(app *Globals) error {
	cues, err := srt.ReadFile(cmd.Path)
	if err != nil {
		return err
	}
	switch cmd.Format {
	case "vtt":
		return srt.WriteVTT(os.Stdout, cues)
	default:
		return srt.Write(os.Stdout, cues)
	}
}
