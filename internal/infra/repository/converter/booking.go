package converter

import (
	"guri24/internal/domain/booking"
	sqlc "guri24/internal/infra/sqlc/generated"
	"guri24/internal/pkg/pgconv"
)

func BookingToInfra(b *booking.Booking) sqlc.CreateBookingParams {
	stay := b.Stay()
	return sqlc.CreateBookingParams{
		ID:         b.ID(),
		PropertyID: b.PropertyID(),
		UserID:     b.UserID(),
		CheckIn:    pgconv.TimestampToPgtype(stay.CheckIn()),
		CheckOut:   pgconv.TimestampToPgtype(stay.CheckOut()),
		GuestCount: int32(b.GuestCount()), // #nosec G115 -- bounded by request validation
		TotalPrice: pgconv.CentsToNumeric(b.TotalPrice().Cents()),
		Status:     b.Status().String(),
		CreatedAt:  pgconv.TimestampToPgtype(b.CreatedAt()),
	}
}

func StaysFromOverlapRows(rows []sqlc.ListConfirmedOverlappingRow) []booking.Stay {
	stays := make([]booking.Stay, len(rows))
	for i, row := range rows {
		stays[i] = booking.ReconstructStay(
			pgconv.TimestampFromPgtype(row.CheckIn),
			pgconv.TimestampFromPgtype(row.CheckOut),
		)
	}
	return stays
}
