package wav

import (
	"bytes"
	"io"
	"time"

	// Packages
	errors "github.com/djthorpe/go-errors"
	audio "github.com/go-audio/audio"
	wav "github.com/go-audio/wav"
	writerseeker "github.com/orcaman/writerseeker"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Audio is an encoded WAV file held in memory
type Audio struct {
	*bytes.Reader
	duration time.Duration
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewInt16 encodes interleaved 16-bit samples as a WAV file
func NewInt16(data []int16, sampleRate, channels int) (*Audio, error) {
	if sampleRate <= 0 {
		return nil, errors.ErrBadParameter.Withf("sample rate %d", sampleRate)
	} else if channels <= 0 {
		return nil, errors.ErrBadParameter.Withf("channels %d", channels)
	} else if len(data)%channels != 0 {
		return nil, errors.ErrBadParameter.Withf("%d samples is not a multiple of %d channels", len(data), channels)
	}

	// The encoder seeks back to write the header sizes
	buf := new(writerseeker.WriterSeeker)
	encoder := wav.NewEncoder(buf, sampleRate, 16, channels, 1)
	pcm := audio.PCMBuffer{
		I16:            data,
		DataType:       audio.DataTypeI16,
		SourceBitDepth: 16,
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: channels,
		},
	}
	if err := encoder.Write(pcm.AsIntBuffer()); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	encoded, err := io.ReadAll(buf.Reader())
	if err != nil {
		return nil, err
	}

	// Return success
	frames := len(data) / channels
	return &Audio{
		Reader:   bytes.NewReader(encoded),
		duration: time.Duration(frames) * time.Second / time.Duration(sampleRate),
	}, nil
}

// NewSilence encodes a mono WAV file of silence with the given duration
func NewSilence(d time.Duration, sampleRate int) (*Audio, error) {
	if d < 0 {
		return nil, errors.ErrBadParameter.Withf("duration %v", d)
	}
	frames := int(d * time.Duration(sampleRate) / time.Second)
	return NewInt16(make([]int16, frames), sampleRate, 1)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Duration returns the length of the encoded audio
func (a *Audio) Duration() time.Duration {
	return a.duration
}
