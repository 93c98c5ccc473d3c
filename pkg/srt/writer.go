package srt

import (
	"io"
	"strings"

	// Packages
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	VTTHeader = "WEBVTT\n\n"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Write a subtitle document
func Write(w io.Writer, cues []*schema.Cue) error {
	for _, cue := range cues {
		if err := cue.WriteSRT(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteVTT writes a WebVTT document
func WriteVTT(w io.Writer, cues []*schema.Cue) error {
	if _, err := io.WriteString(w, VTTHeader); err != nil {
		return err
	}
	for _, cue := range cues {
		if err := cue.WriteVTT(w); err != nil {
			return err
		}
	}
	return nil
}

// String returns cues as a subtitle document
func String(cues []*schema.Cue) string {
	var b strings.Builder
	Write(&b, cues)
	return b.String()
}
