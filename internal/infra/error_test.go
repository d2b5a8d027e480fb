//go:build unit

package infra

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr_Classification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []RepositoryErrorKind
		want RepositoryErrorKind
	}{
		{name: "exclusion", err: &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"}, want: KindExclusionViolated},
		{name: "unique", err: &pgconn.PgError{Code: "23505"}, want: KindDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: KindForeignKeyViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "57014"}, want: KindDBFailure},
		{name: "plain error", err: errors.New("connection reset"), want: KindDBFailure},
		{name: "explicit kind wins", err: pgx.ErrNoRows, kind: []RepositoryErrorKind{KindNotFound}, want: KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := WrapRepoErr("op", tt.err, tt.kind...)
			assert.True(t, IsKind(wrapped, tt.want), wrapped.Error())
			assert.ErrorIs(t, wrapped, tt.err)
		})
	}
}

func TestConstraintName(t *testing.T) {
	err := WrapRepoErr("insert", &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"})
	assert.Equal(t, "bookings_no_overlap", ConstraintName(err))
	assert.Empty(t, ConstraintName(errors.New("x")))
}
