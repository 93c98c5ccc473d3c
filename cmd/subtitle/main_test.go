package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	assert "github.com/stretchr/testify/assert"
)

func Test_Cmd_001(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	app := &Globals{ctx: context.Background(), writer: tablewriter.New(os.Stdout, tablewriter.OptOutputText())}

	// Word stream as a bare array
	path := filepath.Join(dir, "interview.json")
	assert.NoError(os.WriteFile(path, []byte(`[{"start":0,"end":0.5,"word":"Hello"},{"start":0.5,"end":1,"word":" world."}]`), 0o644))

	cmd := SegmentCmd{Path: path, OutputFlags: OutputFlags{Out: dir, Pause: 500_000_000}}
	if !assert.NoError(cmd.Run(app)) {
		t.FailNow()
	}
	data, err := os.ReadFile(filepath.Join(dir, "interview.srt"))
	if assert.NoError(err) {
		assert.Equal("1\n00:00:00,000 --> 00:00:01,000\nHello world.\n\n", string(data))
	}
	for _, name := range []string{"interview_NR.txt", "interview_R.txt", "interview.json"} {
		assert.FileExists(filepath.Join(dir, name))
	}

	// Bundled into an archive
	cmd.Zip = true
	assert.NoError(cmd.Run(app))
	assert.FileExists(filepath.Join(dir, "interview_core.zip"))
}

func Test_Cmd_002(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("interview", stem("/tmp/interview.json"))
	assert.Equal("a.b", stem("a.b.srt"))
}
