package task_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	// Packages
	schema "github.com/mutablelogic/go-subtitle/pkg/schema"
	srt "github.com/mutablelogic/go-subtitle/pkg/srt"
	task "github.com/mutablelogic/go-subtitle/pkg/task"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	words = []schema.Word{
		schema.NewWord(0.0, 0.5, "Hello"),
		schema.NewWord(0.5, 1.0, " world."),
		schema.NewWord(2.0, 2.5, " Dr."),
		schema.NewWord(2.5, 3.0, " Who."),
		schema.NewWord(3.2, 4.0, " Bye"),
	}
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Task_001(t *testing.T) {
	assert := assert.New(t)
	result, err := task.Run(&schema.Transcription{Words: words})
	if !assert.NoError(err) {
		t.FailNow()
	}
	if assert.Len(result.Cues, 3) {
		assert.Equal("Hello world.", result.Cues[0].Text)
		assert.Equal("Dr. Who.", result.Cues[1].Text)
		assert.Equal("Bye", result.Cues[2].Text)
		assert.Equal(schema.SecToTimestamp(3.2), result.Cues[2].Start)
	}
	assert.Equal("Hello world. Dr. Who. Bye", result.Continuous)
	assert.Equal("Hello world.\nDr. Who. Bye", result.Paced)
	assert.Equal(words, result.Words)
}

func Test_Task_002(t *testing.T) {
	assert := assert.New(t)

	// A missing transcription is distinct from an empty one
	_, err := task.Run(nil)
	assert.True(errors.Is(err, schema.ErrInputMissing))

	result, err := task.Run(&schema.Transcription{})
	if assert.NoError(err) {
		assert.Empty(result.Cues)
		assert.Empty(result.Continuous)
		assert.Empty(result.Paced)
	}
}

func Test_Task_003(t *testing.T) {
	assert := assert.New(t)

	// Incremental delivery gives the same result as a complete stream
	var streamed []*schema.Cue
	tsk, err := task.New(task.OptCue(func(cue *schema.Cue) {
		streamed = append(streamed, cue)
	}))
	if !assert.NoError(err) {
		t.FailNow()
	}
	for _, word := range words {
		assert.NoError(tsk.Append(word))
	}
	assert.Len(streamed, 2)
	result := tsk.Result()
	assert.Len(streamed, 3)

	expected, err := task.Run(&schema.Transcription{Words: words})
	if assert.NoError(err) {
		assert.Equal(expected, result)
	}

	// The task is complete
	assert.Error(tsk.Append(words[0]))
	assert.Same(result, tsk.Result())
}

func Test_Task_004(t *testing.T) {
	assert := assert.New(t)

	// Progress never decreases and ends at one
	var progress []float64
	stream := append([]schema.Word{}, words...)
	stream = append(stream, schema.NewWord(1.0, 1.5, " late"), schema.NewWord(9.0, 12.0, " over."))
	result, err := task.Run(&schema.Transcription{Words: stream}, task.OptDuration(8*time.Second), task.OptProgress(func(v float64) {
		progress = append(progress, v)
	}))
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.NotEmpty(result.Cues)
	if assert.NotEmpty(progress) {
		for i := range progress {
			assert.GreaterOrEqual(progress[i], 0.0)
			assert.LessOrEqual(progress[i], 1.0)
			if i > 0 {
				assert.GreaterOrEqual(progress[i], progress[i-1])
			}
		}
		assert.Equal(1.0, progress[len(progress)-1])
	}
}

func Test_Task_005(t *testing.T) {
	assert := assert.New(t)

	// Without a duration the only report is completion
	var progress []float64
	_, err := task.Run(&schema.Transcription{Words: words}, task.OptProgress(func(v float64) {
		progress = append(progress, v)
	}))
	assert.NoError(err)
	assert.Equal([]float64{1.0}, progress)

	// Duration from the transcription
	progress = nil
	_, err = task.Run(&schema.Transcription{Words: words, Duration: schema.SecToTimestamp(4)}, task.OptProgress(func(v float64) {
		progress = append(progress, v)
	}))
	assert.NoError(err)
	assert.Equal([]float64{0.125, 0.25, 0.625, 0.75, 1.0}, progress)
}

func Test_Task_006(t *testing.T) {
	assert := assert.New(t)

	// Strict mode rejects a reversed word
	_, err := task.Run(&schema.Transcription{Words: []schema.Word{schema.NewWord(2, 1, "x")}}, task.OptStrict())
	assert.True(errors.Is(err, schema.ErrBadWord))

	// Bad options
	_, err = task.New(task.OptPause(-time.Second))
	assert.Error(err)
	_, err = task.New(task.OptDuration(-time.Second))
	assert.Error(err)
	_, err = task.New(task.OptGuard(nil))
	assert.Error(err)
}

func Test_Artifacts_001(t *testing.T) {
	assert := assert.New(t)
	result, err := task.Run(&schema.Transcription{Words: words})
	if !assert.NoError(err) {
		t.FailNow()
	}
	artifacts, err := result.Artifacts("lecture")
	if !assert.NoError(err) || !assert.Len(artifacts, 4) {
		t.FailNow()
	}
	assert.Equal("lecture.srt", artifacts[0].Name)
	assert.Equal("lecture_NR.txt", artifacts[1].Name)
	assert.Equal("lecture_R.txt", artifacts[2].Name)
	assert.Equal("lecture.json", artifacts[3].Name)
	assert.Equal(srt.String(result.Cues), string(artifacts[0].Data))
	assert.Equal(result.Paced, string(artifacts[2].Data))

	// The word dump reads back as a transcription
	var dump schema.Transcription
	if assert.NoError(json.Unmarshal(artifacts[3].Data, &dump)) {
		assert.Equal(words, dump.Words)
	}

	_, err = result.Artifacts("")
	assert.Error(err)
}

func Test_Artifacts_002(t *testing.T) {
	assert := assert.New(t)
	artifacts := []task.Artifact{
		{Name: "a.srt", Data: []byte("one")},
		{Name: "a_NR.txt", Data: []byte("two")},
	}

	// Bundle into an archive and read back
	var buf bytes.Buffer
	if !assert.NoError(task.Bundle(&buf, artifacts)) {
		t.FailNow()
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if !assert.NoError(err) || !assert.Len(zr.File, 2) {
		t.FailNow()
	}
	for i, f := range zr.File {
		assert.Equal(artifacts[i].Name, f.Name)
		r, err := f.Open()
		if assert.NoError(err) {
			data, err := io.ReadAll(r)
			assert.NoError(err)
			assert.Equal(artifacts[i].Data, data)
			r.Close()
		}
	}

	// Write to a directory
	dir := t.TempDir()
	paths, err := task.WriteFiles(dir, artifacts)
	if assert.NoError(err) && assert.Len(paths, 2) {
		data, err := os.ReadFile(paths[1])
		assert.NoError(err)
		assert.Equal("two", string(data))
	}
	path, err := task.WriteArchive(dir, task.CoreArchive("a"), artifacts)
	if assert.NoError(err) {
		assert.Equal(filepath.Join(dir, "a_core.zip"), path)
		assert.FileExists(path)
	}
}

func Test_Translation_001(t *testing.T) {
	assert := assert.New(t)
	source := []*schema.Cue{
		{Id: 1, Start: schema.SecToTimestamp(1), End: schema.SecToTimestamp(2), Text: "Hello"},
		{Id: 2, Start: schema.SecToTimestamp(3), End: schema.SecToTimestamp(4), Text: "World"},
	}
	translated, err := task.Translation("lecture", "ja", source, task.TranslationText{
		Subtitles:  "1 00:00:01,000 --> 00:00:02,000 こんにちは 2 00:00:03,000 --> 00:00:04,000 世界",
		Continuous: "こんにちは世界",
		Paced:      "こんにちは\n世界",
	}, srt.DefaultTolerance)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.NoError(translated.Skew)
	assert.Len(translated.Cues, 2)
	if assert.Len(translated.Artifacts, 3) {
		assert.Equal("lecture_ja.srt", translated.Artifacts[0].Name)
		assert.Equal("lecture_NR_ja.txt", translated.Artifacts[1].Name)
		assert.Equal("lecture_R_ja.txt", translated.Artifacts[2].Name)
		assert.Equal("1\n00:00:01,000 --> 00:00:02,000\nこんにちは\n\n2\n00:00:03,000 --> 00:00:04,000\n世界", string(translated.Artifacts[0].Data))
	}
	assert.Equal("lecture_ja.zip", task.TranslationArchive("lecture", "ja"))
}

func Test_Translation_002(t *testing.T) {
	assert := assert.New(t)
	source := make([]*schema.Cue, 10)
	for i := range source {
		source[i] = &schema.Cue{Id: i + 1, Text: "x"}
	}

	// Skew is a warning, the artifacts are still produced
	translated, err := task.Translation("lecture", "ja", source, task.TranslationText{
		Subtitles: "1 00:00:01,000 --> 00:00:02,000 only one",
	}, srt.DefaultTolerance)
	if assert.NoError(err) {
		assert.True(errors.Is(translated.Skew, schema.ErrAlignmentSkew))
		assert.Len(translated.Artifacts, 1)
	}

	// Subtitles with no anchors
	_, err = task.Translation("lecture", "ja", source, task.TranslationText{Subtitles: "nothing here"}, srt.DefaultTolerance)
	assert.True(errors.Is(err, schema.ErrNoCuesRecovered))

	// Transcripts alone are not compared against the source subtitles
	translated, err = task.Translation("lecture", "ja", source, task.TranslationText{
		Continuous: "translated",
		Paced:      "translated",
	}, srt.DefaultTolerance)
	if assert.NoError(err) {
		assert.NoError(translated.Skew)
		assert.Len(translated.Artifacts, 2)
	}

	// Nothing translated
	_, err = task.Translation("lecture", "ja", source, task.TranslationText{}, srt.DefaultTolerance)
	assert.True(errors.Is(err, schema.ErrInputMissing))

	// Missing language
	_, err = task.Translation("lecture", " ", source, task.TranslationText{Paced: "x"}, srt.DefaultTolerance)
	assert.Error(err)
}
