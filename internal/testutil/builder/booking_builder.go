//go:build unit || e2e

package builder

import (
	"time"

	"guri24/internal/domain/booking"
	"guri24/internal/domain/money"
	sqlc "guri24/internal/infra/sqlc/generated"
	"guri24/internal/pkg/pgconv"
	"guri24/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	UserID     uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	GuestCount int
	TotalCents int64
	Status     booking.Status
	CreatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	checkIn := time.Date(2030, 6, 1, 15, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:         uuid.New(),
		PropertyID: uuid.New(),
		UserID:     uuid.New(),
		CheckIn:    checkIn,
		CheckOut:   checkIn.Add(72 * time.Hour),
		GuestCount: 2,
		TotalCents: 300000,
		Status:     booking.StatusConfirmed,
		CreatedAt:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn, b.CheckOut = checkIn, checkOut
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	total, err := money.FromCents(b.TotalCents)
	if err != nil {
		panic(err)
	}
	return booking.ReconstructBooking(
		b.ID, b.PropertyID, b.UserID,
		booking.ReconstructStay(b.CheckIn, b.CheckOut),
		b.GuestCount, total, b.Status, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildRow() sqlc.GetBookingByIDRow {
	return sqlc.GetBookingByIDRow{
		ID:            b.ID,
		PropertyID:    b.PropertyID,
		PropertyTitle: "Seaside Villa Getaway",
		PropertySlug:  "seaside-villa-getaway",
		UserID:        b.UserID,
		CheckIn:       pgconv.TimestampToPgtype(b.CheckIn),
		CheckOut:      pgconv.TimestampToPgtype(b.CheckOut),
		GuestCount:    int32(b.GuestCount), // #nosec G115
		TotalPrice:    pgconv.CentsToNumeric(b.TotalCents),
		Status:        b.Status.String(),
		CreatedAt:     pgconv.TimestampToPgtype(b.CreatedAt),
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	total, err := money.FromCents(b.TotalCents)
	if err != nil {
		panic(err)
	}
	return &queries.BookingView{
		ID:            b.ID,
		PropertyID:    b.PropertyID,
		PropertyTitle: "Seaside Villa Getaway",
		PropertySlug:  "seaside-villa-getaway",
		UserID:        b.UserID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		GuestCount:    b.GuestCount,
		TotalPrice:    total.String(),
		Status:        b.Status.String(),
		CreatedAt:     b.CreatedAt,
	}
}
