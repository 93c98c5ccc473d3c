package main

import (
	"runtime"

	// Packages
	tablewriter "github.com/djthorpe/go-tablewriter"
	version "github.com/mutablelogic/go-subtitle/pkg/version"
)

type VersionCmd struct{}

// Run prints build metadata, skipping anything not set at build time
func (cmd *VersionCmd) Run(app *Globals) error {
	type kv struct {
		Key   string `json:"name" writer:",width:12"`
		Value string `json:"value" writer:",width:60"`
	}
	metadata := make([]kv, 0, 7)
	for _, v := range []kv{
		{"source", version.GitSource},
		{"branch", version.GitBranch},
		{"tag", version.GitTag},
		{"hash", version.GitHash},
		{"build time", version.GoBuildTime},
		{"go version", runtime.Version()},
		{"os", runtime.GOOS + "/" + runtime.GOARCH},
	} {
		if v.Value != "" {
			metadata = append(metadata, v)
		}
	}
	return app.writer.Write(metadata, tablewriter.OptHeader())
}
