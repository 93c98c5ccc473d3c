package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Cue is one timed subtitle entry
type Cue struct {
	Id    int       `json:"id" writer:",right,width:5"`
	Start Timestamp `json:"start" writer:",right,width:12"`
	End   Timestamp `json:"end" writer:",right,width:12"`
	Text  string    `json:"text" writer:",wrap,width:70"`
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c *Cue) String() string {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WriteSRT writes the cue as a subtitle block, terminated by a blank line
func (c *Cue) WriteSRT(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n", c.Id, FormatSRT(c.Start), FormatSRT(c.End), strings.TrimSpace(c.Text))
	return err
}

// WriteVTT writes the cue as a WebVTT block. Cues without text are skipped.
func (c *Cue) WriteVTT(w io.Writer) error {
	text := strings.TrimSpace(c.Text)
	if text == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n", c.Id, FormatVTT(c.Start), FormatVTT(c.End), text)
	return err
}
