package wav_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	// Packages
	wav "github.com/mutablelogic/go-subtitle/pkg/wav"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Wav_001(t *testing.T) {
	assert := assert.New(t)
	audio, err := wav.NewSilence(2*time.Second, 16000)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal(2*time.Second, audio.Duration())

	// The header reports the same duration
	d, err := wav.Duration(audio)
	if assert.NoError(err) {
		assert.Equal(2*time.Second, d)
	}
}

func Test_Wav_002(t *testing.T) {
	assert := assert.New(t)

	// Stereo, a quarter of a second
	audio, err := wav.NewInt16(make([]int16, 2*11025), 44100, 2)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal(250*time.Millisecond, audio.Duration())

	// Write to a file and probe it
	data, err := io.ReadAll(audio)
	if !assert.NoError(err) {
		t.FailNow()
	}
	path := filepath.Join(t.TempDir(), "clip.wav")
	assert.NoError(os.WriteFile(path, data, 0o644))
	d, err := wav.DurationFile(path)
	if assert.NoError(err) {
		assert.Equal(250*time.Millisecond, d)
	}
}

func Test_Wav_003(t *testing.T) {
	assert := assert.New(t)

	_, err := wav.Duration(bytes.NewReader([]byte("not a wav file at all")))
	assert.Error(err)
	_, err = wav.NewInt16(make([]int16, 3), 16000, 2)
	assert.Error(err)
	_, err = wav.NewInt16(nil, 0, 1)
	assert.Error(err)
	_, err = wav.DurationFile(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(err)
}
