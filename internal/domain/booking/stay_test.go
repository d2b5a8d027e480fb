//go:build unit

package booking_test

import (
	"testing"
	"time"

	"guri24/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseInstant(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  time.Time
		errIs error
	}{
		{name: "Z offset", in: "2030-06-01T00:00:00Z", want: day(2030, 6, 1)},
		{name: "positive offset converted to UTC", in: "2030-06-01T05:00:00+05:00", want: day(2030, 6, 1)},
		{name: "fractional seconds", in: "2030-06-01T00:00:00.5Z", want: day(2030, 6, 1).Add(500 * time.Millisecond)},
		{name: "missing offset", in: "2030-06-01T00:00:00", errIs: booking.ErrInvalidInstant},
		{name: "date only", in: "2030-06-01", errIs: booking.ErrInvalidInstant},
		{name: "garbage", in: "tomorrow", errIs: booking.ErrInvalidInstant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := booking.ParseInstant(tt.in)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestNewStay(t *testing.T) {
	now := day(2030, 1, 1)

	t.Run("checkOut <= checkIn is always InvalidRange", func(t *testing.T) {
		for _, tc := range []struct{ in, out time.Time }{
			{day(2030, 6, 5), day(2030, 6, 1)},
			{day(2030, 6, 1), day(2030, 6, 1)},
			{day(2029, 6, 5), day(2029, 6, 1)},
		} {
			_, err := booking.NewStay(tc.in, tc.out, now)
			assert.ErrorIs(t, err, booking.ErrInvalidRange)
		}
	})

	t.Run("past check-in", func(t *testing.T) {
		_, err := booking.NewStay(now.Add(-time.Second), day(2030, 1, 3), now)
		assert.ErrorIs(t, err, booking.ErrPastDate)
	})

	t.Run("check-in at now is accepted", func(t *testing.T) {
		s, err := booking.NewStay(now, day(2030, 1, 3), now)
		require.NoError(t, err)
		assert.Equal(t, int64(2), s.Nights())
	})

	t.Run("offsets are normalized", func(t *testing.T) {
		tashkent := time.FixedZone("UZT", 5*60*60)
		s, err := booking.NewStay(time.Date(2030, 6, 1, 5, 0, 0, 0, tashkent), day(2030, 6, 2), now)
		require.NoError(t, err)
		assert.Equal(t, day(2030, 6, 1), s.CheckIn())
		assert.Equal(t, time.UTC, s.CheckIn().Location())
	})
}

func TestStay_Nights(t *testing.T) {
	start := day(2030, 6, 1)
	tests := []struct {
		dur  time.Duration
		want int64
	}{
		{72 * time.Hour, 3},
		{60 * time.Hour, 2},
		{24 * time.Hour, 1},
		{23 * time.Hour, 0},
		{time.Minute, 0},
	}
	for _, tt := range tests {
		s := booking.ReconstructStay(start, start.Add(tt.dur))
		assert.Equal(t, tt.want, s.Nights(), tt.dur.String())
	}
}

func TestStay_NightsBeyondDurationRange(t *testing.T) {
	s := booking.ReconstructStay(day(2030, 1, 1), day(9999, 1, 1))

	wantDays := (day(9999, 1, 1).Unix() - day(2030, 1, 1).Unix()) / 86400
	assert.Equal(t, wantDays, s.Nights())
	assert.Greater(t, s.Nights(), int64(2_900_000))
}

func TestStay_NightsSubSecondBoundary(t *testing.T) {
	in := day(2030, 6, 1).Add(900 * time.Millisecond)

	short := booking.ReconstructStay(in, in.Add(24*time.Hour-800*time.Millisecond))
	assert.Equal(t, int64(0), short.Nights())

	exact := booking.ReconstructStay(in, in.Add(24*time.Hour))
	assert.Equal(t, int64(1), exact.Nights())
}

func TestStay_Overlaps(t *testing.T) {
	// existing [A,B) = [06-01, 06-05)
	existing := booking.ReconstructStay(day(2030, 6, 1), day(2030, 6, 5))

	tests := []struct {
		name string
		c, d time.Time
		want bool
	}{
		{name: "ends on A", c: day(2030, 5, 28), d: day(2030, 6, 1), want: false},
		{name: "starts on B", c: day(2030, 6, 5), d: day(2030, 6, 7), want: false},
		{name: "straddles B", c: day(2030, 6, 4), d: day(2030, 6, 7), want: true},
		{name: "straddles A", c: day(2030, 5, 30), d: day(2030, 6, 2), want: true},
		{name: "inside", c: day(2030, 6, 2), d: day(2030, 6, 3), want: true},
		{name: "covers", c: day(2030, 5, 1), d: day(2030, 7, 1), want: true},
		{name: "identical", c: day(2030, 6, 1), d: day(2030, 6, 5), want: true},
		{name: "far after", c: day(2030, 8, 1), d: day(2030, 8, 2), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requested := booking.ReconstructStay(tt.c, tt.d)
			assert.Equal(t, tt.want, requested.Overlaps(existing))
			assert.Equal(t, tt.want, existing.Overlaps(requested), "overlap must be symmetric")
		})
	}
}
