package task

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	// Packages
	errors "github.com/djthorpe/go-errors"
	srt "github.com/mutablelogic/go-subtitle/pkg/srt"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

// Artifact is a named output file
type Artifact struct {
	Name string `json:"name" writer:",width:40"`
	Data []byte `json:"-"`
}

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	extSubtitle   = ".srt"
	extText       = ".txt"
	extWords      = ".json"
	extArchive    = ".zip"
	suffixNoBreak = "_NR"
	suffixBreak   = "_R"
	suffixCore    = "_core"
)

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Artifacts renders the result as files named after the source:
// <name>.srt, <name>_NR.txt (continuous), <name>_R.txt (paced) and
// <name>.json (the word stream)
func (r *Result) Artifacts(name string) ([]Artifact, error) {
	if name == "" {
		return nil, errors.ErrBadParameter.With("missing artifact name")
	}
	words, err := json.MarshalIndent(r.Words, "", "  ")
	if err != nil {
		return nil, err
	}
	return []Artifact{
		{Name: name + extSubtitle, Data: []byte(srt.String(r.Cues))},
		{Name: name + suffixNoBreak + extText, Data: []byte(r.Continuous)},
		{Name: name + suffixBreak + extText, Data: []byte(r.Paced)},
		{Name: name + extWords, Data: words},
	}, nil
}

// CoreArchive returns the name of the archive which bundles the artifacts
// of a transcription
func CoreArchive(name string) string {
	return name + suffixCore + extArchive
}

// Bundle writes the artifacts to w as a zip archive
func Bundle(w io.Writer, artifacts []Artifact) error {
	zw := zip.NewWriter(w)
	for _, artifact := range artifacts {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     artifact.Name,
			Method:   zip.Deflate,
			Modified: time.Now(),
		})
		if err != nil {
			zw.Close()
			return err
		}
		if _, err := io.Copy(fw, bytes.NewReader(artifact.Data)); err != nil {
			zw.Close()
			return err
		}
	}
	return zw.Close()
}

// WriteFiles writes each artifact to a file in dir, returning the paths
// written
func WriteFiles(dir string, artifacts []Artifact) ([]string, error) {
	paths := make([]string, 0, len(artifacts))
	for _, artifact := range artifacts {
		path := filepath.Join(dir, artifact.Name)
		if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteArchive writes the artifacts as a zip archive in dir, returning
// the path written
func WriteArchive(dir, name string, artifacts []Artifact) (string, error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := Bundle(f, artifacts); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}
