//go:build unit

package pgconv

import (
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericToCents(t *testing.T) {
	tests := []struct {
		name    string
		in      pgtype.Numeric
		want    int64
		wantErr bool
	}{
		{name: "two fractional digits", in: pgtype.Numeric{Int: big.NewInt(4500000), Exp: -2, Valid: true}, want: 4500000},
		{name: "integer", in: pgtype.Numeric{Int: big.NewInt(1000), Exp: 0, Valid: true}, want: 100000},
		{name: "positive exponent", in: pgtype.Numeric{Int: big.NewInt(45), Exp: 3, Valid: true}, want: 4500000},
		{name: "trailing zero precision", in: pgtype.Numeric{Int: big.NewInt(12340), Exp: -3, Valid: true}, want: 1234},
		{name: "sub-cent precision", in: pgtype.Numeric{Int: big.NewInt(12345), Exp: -3, Valid: true}, wantErr: true},
		{name: "null", in: pgtype.Numeric{}, wantErr: true},
		{name: "nan", in: pgtype.Numeric{NaN: true, Valid: true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NumericToCents(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidNumeric)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCentsToNumeric_RoundTrip(t *testing.T) {
	got, err := NumericToCents(CentsToNumeric(90000))
	require.NoError(t, err)
	assert.Equal(t, int64(90000), got)
}

func TestTimestamp_DropsOffset(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	in := time.Date(2030, 6, 1, 23, 0, 0, 0, tokyo)

	pt := TimestampToPgtype(in)
	assert.Equal(t, time.UTC, pt.Time.Location())
	assert.Equal(t, 14, pt.Time.Hour())

	// pgx decodes naive columns in UTC already; a Local wall clock must be reinterpreted, not shifted.
	naive := pgtype.Timestamp{Time: time.Date(2030, 6, 1, 14, 0, 0, 0, time.Local), Valid: true}
	out := TimestampFromPgtype(naive)
	assert.Equal(t, time.Date(2030, 6, 1, 14, 0, 0, 0, time.UTC), out)
}
