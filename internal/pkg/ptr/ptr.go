package ptr

import (
	"github.com/jackc/pgx/v5/pgtype"
)

func Of[T any](v T) *T {
	return &v
}

// NonEmpty returns nil for the empty string so optional filters stay unset.
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func Float64FromPgtype(pf pgtype.Float8) *float64 {
	if !pf.Valid {
		return nil
	}
	v := pf.Float64
	return &v
}
