package schema_test

import (
	"errors"
	"testing"
	"time"

	// Packages
	"github.com/mutablelogic/go-subtitle/pkg/schema"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Timestamp_001(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		in  float64
		srt string
		vtt string
	}{
		{0, "00:00:00,000", "00:00:00.000"},
		{1.5, "00:00:01,500", "00:00:01.500"},
		{2.3, "00:00:02,300", "00:00:02.300"},
		{61.123, "00:01:01,123", "00:01:01.123"},
		{3600, "01:00:00,000", "01:00:00.000"},
		{3661.9999, "01:01:01,999", "01:01:01.999"},
		{359999.999, "99:59:59,999", "99:59:59.999"},
		{-1, "00:00:00,000", "00:00:00.000"},
	}
	for _, test := range tests {
		ts := schema.SecToTimestamp(test.in)
		assert.Equal(test.srt, schema.FormatSRT(ts))
		assert.Equal(test.vtt, schema.FormatVTT(ts))
	}
}

func Test_Timestamp_002(t *testing.T) {
	assert := assert.New(t)
	tests := []struct {
		in  string
		out time.Duration
	}{
		{"00:00:00,000", 0},
		{"00:00:01,500", 1500 * time.Millisecond},
		{"01:02:03,004", time.Hour + 2*time.Minute + 3*time.Second + 4*time.Millisecond},
		{"00:00:02.300", 2300 * time.Millisecond},
		{"100:00:00,000", 100 * time.Hour},
	}
	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			ts, err := schema.ParseTimestamp(test.in)
			if assert.NoError(err) {
				assert.Equal(test.out, time.Duration(ts))
			}
		})
	}
}

func Test_Timestamp_003(t *testing.T) {
	assert := assert.New(t)
	for _, in := range []string{"", "0:00:00,000", "00:00:00,00", "00:60:00,000", "00:00:61,000", "00:00:00;000", "aa:bb:cc,ddd", " 00:00:00,000"} {
		t.Run(in, func(t *testing.T) {
			_, err := schema.ParseTimestamp(in)
			assert.Error(err)
			assert.True(errors.Is(err, schema.ErrMalformedTimestamp))
		})
	}
}

func Test_Timestamp_004(t *testing.T) {
	assert := assert.New(t)

	// Parse(Format(s)) reproduces s at millisecond precision
	for ms := int64(0); ms <= 359999999; ms += 7919 {
		s := float64(ms) / 1000
		ts, err := schema.ParseTimestamp(schema.FormatSRT(schema.SecToTimestamp(s)))
		if !assert.NoError(err) {
			break
		}
		if !assert.Equal(ms, time.Duration(ts).Milliseconds(), "seconds=%v", s) {
			break
		}
	}
}

func Test_Timestamp_005(t *testing.T) {
	assert := assert.New(t)

	var ts schema.Timestamp
	assert.NoError(ts.UnmarshalJSON([]byte("2.3")))
	assert.Equal(2300*time.Millisecond, time.Duration(ts))

	data, err := ts.MarshalJSON()
	assert.NoError(err)
	assert.Equal("2.3", string(data))
}
