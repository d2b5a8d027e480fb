package repository

import (
	"context"

	"guri24/internal/domain/booking"
	"guri24/internal/infra"
	"guri24/internal/infra/repository/converter"
	sqlc "guri24/internal/infra/sqlc/generated"
	"guri24/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	LockPropertyAdmission(ctx context.Context, db sqlc.DBTX, propertyID uuid.UUID) error
	ListConfirmedOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListConfirmedOverlappingParams) ([]sqlc.ListConfirmedOverlappingRow, error)
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

func (r *BookingRepository) LockProperty(ctx context.Context, tx sqlc.DBTX, propertyID uuid.UUID) error {
	if err := r.queries.LockPropertyAdmission(ctx, tx, propertyID); err != nil {
		return infra.WrapRepoErr("failed to acquire admission lock", err)
	}
	return nil
}

func (r *BookingRepository) ConfirmedOverlapping(ctx context.Context, tx sqlc.DBTX, propertyID uuid.UUID, stay booking.Stay) ([]booking.Stay, error) {
	rows, err := r.queries.ListConfirmedOverlapping(ctx, tx, sqlc.ListConfirmedOverlappingParams{
		PropertyID: propertyID,
		CheckIn:    pgconv.TimestampToPgtype(stay.CheckIn()),
		CheckOut:   pgconv.TimestampToPgtype(stay.CheckOut()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping bookings", err)
	}
	return converter.StaysFromOverlapRows(rows), nil
}

// Create surfaces bookings_no_overlap violations as KindExclusionViolated.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, tx, converter.BookingToInfra(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}
