package srt_test

import (
	"errors"
	"strings"
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
	segmenter "github.com/mutablelogic/go-subtitle/pkg/segmenter"
	srt "github.com/mutablelogic/go-subtitle/pkg/srt"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Parse_001(t *testing.T) {
	assert := assert.New(t)
	cues, err := srt.Parse(strings.NewReader("1\n00:00:00,000 --> 00:00:01,000\nHello world.\n\n2\n00:00:02,000 --> 00:00:02,600\nNext\nline.\n\n"))
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal([]*schema.Cue{
		{Id: 1, Start: schema.SecToTimestamp(0), End: schema.SecToTimestamp(1), Text: "Hello world."},
		{Id: 2, Start: schema.SecToTimestamp(2), End: schema.SecToTimestamp(2.6), Text: "Next line."},
	}, cues)
}

func Test_Parse_002(t *testing.T) {
	assert := assert.New(t)

	// Empty is valid
	cues, err := srt.ParseString("")
	assert.NoError(err)
	assert.Empty(cues)
	cues, err = srt.ParseString("\n\n")
	assert.NoError(err)
	assert.Empty(cues)

	// No trailing separator, CRLF line endings and a byte order mark
	cues, err = srt.ParseString("\uFEFF1\r\n00:00:01,000 --> 00:00:02,000\r\nHello")
	if assert.NoError(err) && assert.Len(cues, 1) {
		assert.Equal("Hello", cues[0].Text)
	}
}

func Test_Parse_003(t *testing.T) {
	assert := assert.New(t)
	tests := []string{
		"garbage",
		"1\n00:00:01,000-->00:00:02,000\nHello\n\n",
		"1\n00:00:01,000 --> 00:00:02,000\nHello\n\nstray text\n",
		"x\n00:00:01,000 --> 00:00:02,000\nHello\n\n",
		"1\n00:00:01.000 --> 00:00:02.000\nHello\n\n",
	}
	for _, test := range tests {
		t.Run(test, func(t *testing.T) {
			_, err := srt.ParseString(test)
			assert.True(errors.Is(err, schema.ErrMalformedSubtitle), "%v", err)
		})
	}

	// Out of range clock fields are malformed timestamps
	_, err := srt.ParseString("1\n00:61:01,000 --> 00:00:02,000\nHello\n\n")
	assert.True(errors.Is(err, schema.ErrMalformedTimestamp), "%v", err)
}

func Test_Parse_004(t *testing.T) {
	assert := assert.New(t)

	// Segmenter output round trips through the document format
	cues, err := segmenter.Segment([]schema.Word{
		schema.NewWord(0.0, 0.5, "Hello"),
		schema.NewWord(0.5, 1.0, " world."),
		schema.NewWord(2.0, 2.6, " Dr."),
		schema.NewWord(2.6, 3.123, " Who."),
		schema.NewWord(3600.5, 3601.75, " Later"),
	})
	if !assert.NoError(err) {
		t.FailNow()
	}
	parsed, err := srt.ParseString(srt.String(cues))
	if assert.NoError(err) {
		assert.Equal(cues, parsed)
	}
}

func Test_Parse_005(t *testing.T) {
	assert := assert.New(t)

	// A block with no text does not swallow the next block
	cues, err := srt.ParseString("1\n00:00:01,000 --> 00:00:02,000\n\n2\n00:00:03,000 --> 00:00:04,000\nWorld\n\n")
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal([]*schema.Cue{
		{Id: 1, Start: schema.SecToTimestamp(1), End: schema.SecToTimestamp(2), Text: ""},
		{Id: 2, Start: schema.SecToTimestamp(3), End: schema.SecToTimestamp(4), Text: "World"},
	}, cues)

	// An empty last block without a trailing separator
	cues, err = srt.ParseString("1\n00:00:01,000 --> 00:00:02,000\nHello\n\n2\n00:00:03,000 --> 00:00:04,000\n")
	if assert.NoError(err) && assert.Len(cues, 2) {
		assert.Equal("", cues[1].Text)
	}

	// A missing header line is still malformed
	_, err = srt.ParseString("1\n00:00:01,000 --> 00:00:02,000\n\n00:00:03,000 --> 00:00:04,000\nWorld\n\n")
	assert.True(errors.Is(err, schema.ErrMalformedSubtitle), "%v", err)
}

func Test_Write_001(t *testing.T) {
	assert := assert.New(t)
	cues := []*schema.Cue{
		{Id: 1, Start: schema.SecToTimestamp(1), End: schema.SecToTimestamp(2), Text: "One"},
		{Id: 2, Start: schema.SecToTimestamp(3), End: schema.SecToTimestamp(4), Text: "Two"},
	}
	assert.Equal("1\n00:00:01,000 --> 00:00:02,000\nOne\n\n2\n00:00:03,000 --> 00:00:04,000\nTwo\n\n", srt.String(cues))

	var b strings.Builder
	assert.NoError(srt.WriteVTT(&b, cues))
	assert.Equal("WEBVTT\n\n1\n00:00:01.000 --> 00:00:02.000\nOne\n\n2\n00:00:03.000 --> 00:00:04.000\nTwo\n\n", b.String())
}
