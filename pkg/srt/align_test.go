package srt_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
	srt "github.com/mutablelogic/go-subtitle/pkg/srt"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Align_001(t *testing.T) {
	assert := assert.New(t)
	source := makeCues(3, "en")
	target := makeCues(2, "ja")

	rows := srt.Align(source, target)
	if assert.Len(rows, 2) {
		assert.Equal(1, rows[0].Id)
		assert.Equal("en 1", rows[0].Source)
		assert.Equal("ja 1", rows[0].Target)
		assert.Equal(source[1].Start, rows[1].Start)
	}

	rows = srt.Align(source, nil)
	if assert.Len(rows, 3) {
		assert.Empty(rows[2].Target)
	}
}

func Test_Skew_001(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(srt.CheckSkew(makeCues(10, "en"), makeCues(13, "ja"), srt.DefaultTolerance))
	assert.NoError(srt.CheckSkew(makeCues(13, "en"), makeCues(10, "ja"), srt.DefaultTolerance))

	err := srt.CheckSkew(makeCues(10, "en"), makeCues(14, "ja"), srt.DefaultTolerance)
	assert.True(errors.Is(err, schema.ErrAlignmentSkew))
	err = srt.CheckSkew(makeCues(14, "en"), makeCues(10, "ja"), srt.DefaultTolerance)
	assert.True(errors.Is(err, schema.ErrAlignmentSkew))

	// Tolerance is a parameter
	assert.NoError(srt.CheckSkew(makeCues(10, "en"), makeCues(14, "ja"), 4))

	// Empty documents always skew
	assert.True(errors.Is(srt.CheckSkew(nil, makeCues(1, "ja"), 10), schema.ErrAlignmentSkew))
	assert.True(errors.Is(srt.CheckSkew(makeCues(1, "en"), nil, 10), schema.ErrAlignmentSkew))
	assert.True(errors.Is(srt.CheckSkew(nil, nil, 10), schema.ErrAlignmentSkew))
}

func Test_Import_001(t *testing.T) {
	assert := assert.New(t)
	cues, err := srt.ReadWebVTT(strings.NewReader("WEBVTT\n\n00:00:01.000 --> 00:00:02.500\nHello\nthere\n\n00:00:03.000 --> 00:00:04.000\nWorld\n"))
	if !assert.NoError(err) {
		t.FailNow()
	}
	if assert.Len(cues, 2) {
		assert.Equal(1, cues[0].Id)
		assert.Equal("Hello there", cues[0].Text)
		assert.Equal(schema.SecToTimestamp(2.5), cues[0].End)
		assert.Equal("World", cues[1].Text)
	}
}

///////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func makeCues(n int, prefix string) []*schema.Cue {
	cues := make([]*schema.Cue, 0, n)
	for i := 1; i <= n; i++ {
		cues = append(cues, &schema.Cue{
			Id:    i,
			Start: schema.SecToTimestamp(float64(i)),
			End:   schema.SecToTimestamp(float64(i) + 0.5),
			Text:  prefix + " " + strconv.Itoa(i),
		})
	}
	return cues
}
