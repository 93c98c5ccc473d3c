package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	// Packages
	client "github.com/mutablelogic/go-subtitle/pkg/client"
	types "github.com/mutablelogic/go-server/pkg/types"
	wav "github.com/mutablelogic/go-subtitle/pkg/wav"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type TranscribeCmd struct {
	Model       string   `arg:"" help:"Model to use"`
	Path        string   `arg:"" help:"Path to audio file" type:"existingfile"`
	Language    string   `name:"language" help:"Language spoken in the audio"`
	Prompt      *string  `name:"prompt" help:"Prompt to guide the model's style"`
	Temperature *float64 `flag:"" help:"Temperature"`
	Translate   bool     `flag:"" help:"Translate the speech into english"`
	OutputFlags
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *TranscribeCmd) Run(app *Globals) error {
	remote, err := app.client()
	if err != nil {
		return err
	}

	// Probe the duration of WAV audio, for progress reporting
	var duration time.Duration
	if strings.EqualFold(filepath.Ext(cmd.Path), ".wav") {
		if d, err := wav.DurationFile(cmd.Path); err != nil {
			log.Printf("Unable to read duration: %v", err)
		} else {
			duration = d
		}
	}

	// Open the audio file
	f, err := os.Open(cmd.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	// Create an array of parameters for the transcription
	params := []client.Opt{
		client.OptPath(filepath.Base(cmd.Path)),
	}
	if cmd.Language != "" {
		params = append(params, client.OptLanguage(cmd.Language))
	}
	if cmd.Temperature != nil {
		params = append(params, client.OptTemperature(types.PtrFloat64(cmd.Temperature)))
	}
	if cmd.Prompt != nil {
		params = append(params, client.OptPrompt(types.PtrString(cmd.Prompt)))
	}

	// Transcribe or translate
	fn := remote.Words
	if cmd.Translate {
		fn = remote.Translate
	}
	log.Printf("Transcribing %q with %q", cmd.Path, cmd.Model)
	words, err := fn(app.ctx, cmd.Model, f, params...)
	if err != nil {
		return err
	}
	log.Printf("Received %d words", len(words.Words))

	// Segment and write
	return cmd.OutputFlags.run(app, stem(cmd.Path), words, duration)
}
