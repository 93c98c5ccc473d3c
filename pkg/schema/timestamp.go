package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

type Timestamp time.Duration

//////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	reTimestamp = regexp.MustCompile(`^(\d{2,}):(\d{2}):(\d{2})([,.])(\d{3})$`)
)

//////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// SecToTimestamp converts fractional seconds to a Timestamp, rounding to the
// nearest nanosecond so that values such as 2.3 do not truncate to 2.299
func SecToTimestamp(sec float64) Timestamp {
	return Timestamp(time.Duration(math.Round(sec * float64(time.Second))))
}

// ParseTimestamp parses a "HH:MM:SS,mmm" or "HH:MM:SS.mmm" clock string
func ParseTimestamp(value string) (Timestamp, error) {
	parts := reTimestamp.FindStringSubmatch(value)
	if parts == nil {
		return 0, ErrMalformedTimestamp.Withf("%q", value)
	}
	hours, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return 0, ErrMalformedTimestamp.Withf("%q", value)
	}
	minutes, _ := strconv.Atoi(parts[2])
	seconds, _ := strconv.Atoi(parts[3])
	millis, _ := strconv.Atoi(parts[5])
	if minutes > 59 || seconds > 59 {
		return 0, ErrMalformedTimestamp.Withf("%q out of range", value)
	}
	d := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond
	return Timestamp(d), nil
}

//////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t Timestamp) MarshalJSON() ([]byte, error) {
	// We convert durations into float64 seconds
	return json.Marshal(time.Duration(t).Seconds())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var seconds float64
	if err := json.Unmarshal(data, &seconds); err != nil {
		return err
	}
	*t = SecToTimestamp(seconds)
	return nil
}

func (t Timestamp) String() string {
	return FormatSRT(t)
}

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Seconds returns the timestamp as fractional seconds
func (t Timestamp) Seconds() float64 {
	return time.Duration(t).Seconds()
}

// FormatSRT returns the timestamp as "HH:MM:SS,mmm"
func FormatSRT(ts Timestamp) string {
	return format(ts, ',')
}

// FormatVTT returns the timestamp as "HH:MM:SS.mmm"
func FormatVTT(ts Timestamp) string {
	return format(ts, '.')
}

//////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func format(ts Timestamp, sep byte) string {
	d := time.Duration(ts)
	if d < 0 {
		d = 0
	}

	// Successive division, milliseconds are truncated
	total := d / time.Millisecond
	millis := total % 1000
	total /= 1000
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	return fmt.Sprintf("%02d:%02d:%02d%c%03d", hours, minutes, seconds, sep, millis)
}
