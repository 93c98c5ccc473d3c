package main

import (
	"fmt"
	"log"
	"os"

	// Packages
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
	srt "github.com/mutablelogic/go-subtitle/pkg/srt"
	task "github.com/mutablelogic/go-subtitle/pkg/task"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ReformatCmd struct {
	Path      string `arg:"" help:"Path to translated subtitle text" type:"existingfile"`
	Original  string `flag:"" help:"Source subtitles, to check the translation lines up" type:"existingfile"`
	Lang      string `flag:"" help:"Language of the translation, which names the artifacts"`
	Vtt       bool   `flag:"" help:"Text uses WebVTT timestamps"`
	NoSpace   bool   `name:"nospace" help:"Remove spaces from subtitle text, for languages written without them"`
	Fold      bool   `flag:"" help:"Fold fullwidth digits and punctuation"`
	Tolerance int    `flag:"" help:"Largest difference in block counts which is not reported" default:"3"`
	NR        string `name:"nr" help:"Translated continuous transcript" type:"existingfile"`
	R         string `name:"r" help:"Translated paced transcript" type:"existingfile"`
	Out       string `flag:"" help:"Write artifacts to this directory" type:"existingdir"`
	Zip       bool   `flag:"" help:"Bundle the artifacts into an archive"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ReformatCmd) Run(app *Globals) error {
	opts := []srt.Opt{}
	if cmd.Vtt {
		opts = append(opts, srt.OptVTT())
	}
	if cmd.NoSpace {
		opts = append(opts, srt.OptRemoveSpace())
	}
	if cmd.Fold {
		opts = append(opts, srt.OptFoldWidth())
	}

	// Read the source subtitles
	var source []*schema.Cue
	if cmd.Original != "" {
		cues, err := srt.ReadFile(cmd.Original)
		if err != nil {
			return err
		}
		source = cues
	}

	// Read the translated text
	text, err := cmd.read()
	if err != nil {
		return err
	}

	// Without an output directory, write the subtitles to stdout
	if cmd.Out == "" {
		doc, cues, err := srt.Reformat(text.Subtitles, opts...)
		if err != nil {
			return err
		}
		if source != nil {
			if err := srt.CheckSkew(source, cues, cmd.Tolerance); err != nil {
				log.Printf("Warning: %v", err)
			}
		}
		fmt.Println(doc)
		return nil
	}

	// Write artifacts named after the source
	if cmd.Lang == "" {
		return httpresponse.ErrBadRequest.With("--lang is required with --out")
	}
	name := stem(cmd.Path)
	if cmd.Original != "" {
		name = stem(cmd.Original)
	}
	result, err := task.Translation(name, cmd.Lang, source, text, cmd.Tolerance, opts...)
	if err != nil {
		return err
	}
	if result.Skew != nil {
		log.Printf("Warning: %v", result.Skew)
	}
	return writeArtifacts(cmd.Out, task.TranslationArchive(name, cmd.Lang), cmd.Zip, result.Artifacts)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (cmd *ReformatCmd) read() (task.TranslationText, error) {
	var text task.TranslationText
	for _, f := range []struct {
		path string
		dest *string
	}{
		{cmd.Path, &text.Subtitles},
		{cmd.NR, &text.Continuous},
		{cmd.R, &text.Paced},
	} {
		if f.path == "" {
			continue
		}
		data, err := os.ReadFile(f.path)
		if err != nil {
			return text, err
		}
		*f.dest = string(data)
	}
	return text, nil
}
