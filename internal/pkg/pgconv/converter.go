package pgconv

import (
	"errors"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrInvalidNumeric = errors.New("numeric value is not representable as cents")

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func UUIDFromPgtype(pu pgtype.UUID) uuid.UUID {
	return uuid.UUID(pu.Bytes)
}

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func Int32PtrToPgtype(i *int32) pgtype.Int4 {
	if i == nil {
		return pgtype.Int4{Valid: false}
	}
	return pgtype.Int4{Int32: *i, Valid: true}
}

func Int32PtrFromPgtype(pi pgtype.Int4) *int32 {
	if !pi.Valid {
		return nil
	}
	return &pi.Int32
}

// TimestampToPgtype writes t as a timezone-naive UTC wall clock.
func TimestampToPgtype(t time.Time) pgtype.Timestamp {
	return pgtype.Timestamp{Time: t.UTC(), Valid: true}
}

func TimestampPtrToPgtype(t *time.Time) pgtype.Timestamp {
	if t == nil {
		return pgtype.Timestamp{Valid: false}
	}
	return TimestampToPgtype(*t)
}

// TimestampFromPgtype reads a naive column back as a UTC instant.
func TimestampFromPgtype(pt pgtype.Timestamp) time.Time {
	t := pt.Time
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func TimestampPtrFromPgtype(pt pgtype.Timestamp) *time.Time {
	if !pt.Valid {
		return nil
	}
	t := TimestampFromPgtype(pt)
	return &t
}

func TimestamptzToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TimestamptzFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time.UTC()
}

// CentsToNumeric encodes an amount in cents as numeric(15,2).
func CentsToNumeric(cents int64) pgtype.Numeric {
	return pgtype.Numeric{Int: big.NewInt(cents), Exp: -2, Valid: true}
}

// NumericToCents rescales a numeric to two fractional digits. Values with
// more precision than cents are rejected rather than rounded.
func NumericToCents(n pgtype.Numeric) (int64, error) {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite || n.Int == nil {
		return 0, ErrInvalidNumeric
	}

	v := new(big.Int).Set(n.Int)
	exp := n.Exp + 2
	ten := big.NewInt(10)
	for ; exp > 0; exp-- {
		v.Mul(v, ten)
	}
	for ; exp < 0; exp++ {
		var rem big.Int
		v.QuoRem(v, ten, &rem)
		if rem.Sign() != 0 {
			return 0, ErrInvalidNumeric
		}
	}
	if !v.IsInt64() {
		return 0, ErrInvalidNumeric
	}
	return v.Int64(), nil
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
