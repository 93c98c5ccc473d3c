// Package wav encodes and probes WAV audio. The duration of a recording is
// the denominator when reporting transcription progress.
package wav

import (
	"io"
	"os"
	"time"

	// Packages
	errors "github.com/djthorpe/go-errors"
	wav "github.com/go-audio/wav"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Duration reads the header of a WAV file and returns the length of
// the audio. The reader is left at an undefined position.
func Duration(r io.ReadSeeker) (time.Duration, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return 0, errors.ErrBadParameter.With("not a valid WAV file")
	}
	if err := decoder.FwdToPCM(); err != nil {
		return 0, err
	}

	// Bytes of PCM data over bytes per second
	rate := int64(decoder.SampleRate) * int64(decoder.NumChans) * int64(decoder.BitDepth) / 8
	if rate == 0 {
		return 0, errors.ErrBadParameter.With("WAV file has no sample rate")
	}
	return time.Duration(decoder.PCMLen()) * time.Second / time.Duration(rate), nil
}

// DurationFile returns the length of the audio in a WAV file
func DurationFile(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return Duration(f)
}
