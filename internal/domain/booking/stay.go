package booking

import (
	"time"
)

const secondsPerNight = 24 * 60 * 60

// Stay is the half-open interval [checkIn, checkOut) in UTC.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

// ParseInstant accepts RFC 3339 only; inputs without an offset are rejected.
func ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, ErrInvalidInstant
	}
	return t.UTC(), nil
}

// NewStay validates a requested interval against now. Range is checked before
// the past-date rule so a reversed interval in the past reports InvalidRange.
func NewStay(checkIn, checkOut, now time.Time) (Stay, error) {
	checkIn, checkOut = checkIn.UTC(), checkOut.UTC()
	if !checkOut.After(checkIn) {
		return Stay{}, ErrInvalidRange
	}
	if checkIn.Before(now.UTC()) {
		return Stay{}, ErrPastDate
	}
	return Stay{checkIn: checkIn, checkOut: checkOut}, nil
}

func ReconstructStay(checkIn, checkOut time.Time) Stay {
	return Stay{checkIn: checkIn.UTC(), checkOut: checkOut.UTC()}
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }

// Nights counts whole 24h periods; a partial day is not charged. It works on
// Unix seconds because time.Duration saturates after about 292 years.
func (s Stay) Nights() int64 {
	secs := s.checkOut.Unix() - s.checkIn.Unix()
	if s.checkOut.Nanosecond() < s.checkIn.Nanosecond() {
		secs--
	}
	if secs <= 0 {
		return 0
	}
	return secs / secondsPerNight
}

// Overlaps is symmetric; stays that only touch at an endpoint do not overlap.
func (s Stay) Overlaps(other Stay) bool {
	return other.checkIn.Before(s.checkOut) && other.checkOut.After(s.checkIn)
}
