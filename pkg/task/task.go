// Package task drives one run of the pipeline: a word stream is fed to the
// segmenter and the transcript composers, progress is reported as words
// arrive, and the results are rendered into named artifacts.
package task

import (
	"encoding/json"
	"time"

	// Packages
	errors "github.com/djthorpe/go-errors"
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
	segmenter "github.com/mutablelogic/go-subtitle/pkg/segmenter"
	transcript "github.com/mutablelogic/go-subtitle/pkg/transcript"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Task accumulates the output of a single run. It is not safe for use by
// multiple goroutines.
type Task struct {
	opts
	seg        *segmenter.Segmenter
	continuous *transcript.Continuous
	paced      *transcript.Paced
	cues       []*schema.Cue
	words      []schema.Word
	fraction   float64
	result     *Result
}

// Result holds everything produced from a word stream
type Result struct {
	Cues       []*schema.Cue `json:"cues"`
	Continuous string        `json:"continuous"`
	Paced      string        `json:"paced"`
	Words      []schema.Word `json:"words"`
}

//////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a task which accepts words with Append
func New(opt ...Opt) (*Task, error) {
	o, err := applyOpts(opt...)
	if err != nil {
		return nil, err
	}
	self := &Task{opts: *o, fraction: -1}

	// Segmenter
	if s, err := segmenter.New(self.emit, self.opts.segmenter...); err != nil {
		return nil, err
	} else {
		self.seg = s
	}

	// Transcripts
	if c, err := transcript.NewContinuous(self.opts.transcript...); err != nil {
		return nil, err
	} else {
		self.continuous = c
	}
	if p, err := transcript.NewPaced(self.opts.transcript...); err != nil {
		return nil, err
	} else {
		self.paced = p
	}

	// Return success
	return self, nil
}

// Run processes a complete transcription
func Run(t *schema.Transcription, opt ...Opt) (*Result, error) {
	if t == nil {
		return nil, schema.ErrInputMissing.With("no transcription")
	}
	if t.Duration > 0 {
		opt = append([]Opt{OptDuration(time.Duration(t.Duration))}, opt...)
	}
	task, err := New(opt...)
	if err != nil {
		return nil, err
	}
	if err := task.Append(t.Words...); err != nil {
		return nil, err
	}
	return task.Result(), nil
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r *Result) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Append words as they arrive. It is an error to append after the result
// has been returned.
func (t *Task) Append(words ...schema.Word) error {
	if t.result != nil {
		return errors.ErrOutOfOrder.With("task is complete")
	}
	for _, word := range words {
		if err := t.seg.Append(word); err != nil {
			return err
		}
		t.continuous.Append(word)
		t.paced.Append(word)
		t.words = append(t.words, word)
		if t.duration > 0 {
			t.report(word.End.Seconds() / t.duration.Seconds())
		}
	}

	// Return success
	return nil
}

// Result ends the word stream, flushing the final cue, and returns the
// output. Progress is reported as complete.
func (t *Task) Result() *Result {
	if t.result == nil {
		t.seg.Flush()
		t.report(1)
		t.result = &Result{
			Cues:       t.cues,
			Continuous: t.continuous.String(),
			Paced:      t.paced.String(),
			Words:      t.words,
		}
	}
	return t.result
}

//////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (t *Task) emit(cue *schema.Cue) {
	t.cues = append(t.cues, cue)
	if t.cue != nil {
		t.cue(cue)
	}
}

// report clamps the fraction and only passes it on when it increases
func (t *Task) report(fraction float64) {
	fraction = min(max(fraction, 0), 1)
	if fraction <= t.fraction {
		return
	}
	t.fraction = fraction
	if t.progress != nil {
		t.progress(fraction)
	}
}
