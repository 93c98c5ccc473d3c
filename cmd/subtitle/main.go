package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	tablewriter "github.com/djthorpe/go-tablewriter"
	goclient "github.com/mutablelogic/go-client"
	client "github.com/mutablelogic/go-subtitle/pkg/client"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	Debug   bool          `name:"debug" help:"Enable debug output"`
	Timeout time.Duration `name:"timeout" help:"Timeout for transcription service requests" default:"5m"`

	// Writer and context
	writer *tablewriter.Writer
	ctx    context.Context
}

type CLI struct {
	Globals

	Segment    SegmentCmd    `cmd:"segment" help:"Segment a word stream into subtitles and transcripts"`
	Transcribe TranscribeCmd `cmd:"transcribe" help:"Transcribe audio with a remote service (OPENAI_API_KEY, ELEVENLABS_API_KEY, WHISPER_URL)"`
	Reformat   ReformatCmd   `cmd:"reformat" help:"Recover subtitle blocks from translated text"`
	Align      AlignCmd      `cmd:"align" help:"Align the cues of two subtitle documents"`
	Convert    ConvertCmd    `cmd:"convert" help:"Convert a subtitle file to SRT or WebVTT"`
	Models     ModelsCmd     `cmd:"models" help:"List transcription models"`
	Download   DownloadCmd   `cmd:"download" help:"Download a model on the whisper service"`
	Delete     DeleteCmd     `cmd:"delete" help:"Delete a model on the whisper service"`
	Server     ServerCmd     `cmd:"server" help:"Run the HTTP API"`
	Version    VersionCmd    `cmd:"version" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultListen = "localhost:8080"
	defaultBase   = "/api/v1"
)

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		name = filepath.Base(name)
	}

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(name),
		kong.Description("subtitle and transcript production"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"SUBTITLE_LISTEN": envOrDefault("SUBTITLE_LISTEN", defaultListen),
			"SUBTITLE_BASE":   envOrDefault("SUBTITLE_BASE", defaultBase),
		},
	)

	// Create a tablewriter object with text output
	writer := tablewriter.New(os.Stdout, tablewriter.OptOutputText())
	cli.Globals.writer = writer

	// Create a context
	var cancel context.CancelFunc
	cli.Globals.ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// client returns a client for the remote transcription services
// configured in the environment
func (app *Globals) client() (*client.Client, error) {
	opts := []goclient.ClientOpt{
		goclient.OptTimeout(app.Timeout),
	}
	if app.Debug {
		opts = append(opts, goclient.OptTrace(os.Stderr, true))
	}
	return client.New(opts...)
}

func envOrDefault(name, def string) string {
	if value := os.Getenv(name); value != "" {
		return value
	} else {
		return def
	}
}

// stem returns the file name without directory or extension, which names
// the artifacts written for it
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
