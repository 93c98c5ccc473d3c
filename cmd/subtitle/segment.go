package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	// Packages
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
	srt "github.com/mutablelogic/go-subtitle/pkg/srt"
	task "github.com/mutablelogic/go-subtitle/pkg/task"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type SegmentCmd struct {
	Path string `arg:"" help:"Path to word stream (JSON)"`
	OutputFlags
}

// OutputFlags are shared by the commands which produce subtitles and
// transcripts from a word stream
type OutputFlags struct {
	Format string        `flag:"" help:"Output format when no output directory is set" default:"srt" enum:"srt,vtt,text,paced,json"`
	Out    string        `flag:"" help:"Write artifacts to this directory" type:"existingdir"`
	Zip    bool          `flag:"" help:"Bundle the artifacts into an archive"`
	Pause  time.Duration `flag:"" help:"Pause which starts a new paragraph in the paced transcript" default:"500ms"`
	Strict bool          `flag:"" help:"Reject words with out of order timestamps"`
	Legacy bool          `flag:"" help:"Measure pauses from the end of the previous sentence"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *SegmentCmd) Run(app *Globals) error {
	data, err := os.ReadFile(cmd.Path)
	if err != nil {
		return err
	}
	var words schema.Transcription
	if err := json.Unmarshal(data, &words); err != nil {
		return schema.ErrBadWord.With(cmd.Path, ": ", err)
	}
	return cmd.OutputFlags.run(app, stem(cmd.Path), &words, 0)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (cmd *OutputFlags) run(app *Globals, name string, words *schema.Transcription, duration time.Duration) error {
	opts := []task.Opt{
		task.OptPause(cmd.Pause),
	}
	if cmd.Strict {
		opts = append(opts, task.OptStrict())
	}
	if cmd.Legacy {
		opts = append(opts, task.OptLegacyPacing())
	}
	if duration > 0 {
		opts = append(opts, task.OptDuration(duration))
	}
	if app.Debug {
		t := time.Now()
		opts = append(opts, task.OptProgress(func(v float64) {
			if time.Since(t) > time.Second || v == 1 {
				log.Printf("Segmented %.0f%%", v*100)
				t = time.Now()
			}
		}))
	}

	// Segment the words
	result, err := task.Run(words, opts...)
	if err != nil {
		return err
	}

	// Write to stdout
	if cmd.Out == "" {
		switch cmd.Format {
		case "vtt":
			return srt.WriteVTT(os.Stdout, result.Cues)
		case "text":
			fmt.Println(result.Continuous)
		case "paced":
			fmt.Println(result.Paced)
		case "json":
			fmt.Println(result)
		default:
			return srt.Write(os.Stdout, result.Cues)
		}
		return nil
	}

	// Write artifacts
	artifacts, err := result.Artifacts(name)
	if err != nil {
		return err
	}
	return writeArtifacts(cmd.Out, task.CoreArchive(name), cmd.Zip, artifacts)
}

// writeArtifacts writes files or a single archive into dir, and prints the
// paths written
func writeArtifacts(dir, archive string, bundle bool, artifacts []task.Artifact) error {
	if bundle {
		path, err := task.WriteArchive(dir, archive, artifacts)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	}
	paths, err := task.WriteFiles(dir, artifacts)
	for _, path := range paths {
		fmt.Println(path)
	}
	return err
}
