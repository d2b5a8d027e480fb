package readstore

import (
	"context"
	"time"

	"guri24/internal/infra"
	"guri24/internal/infra/repository/converter"
	sqlc "guri24/internal/infra/sqlc/generated"
	"guri24/internal/pkg/pgconv"
	"guri24/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingByIDRow, error)
	ListBookingsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListBookingsByUserRow, error)
	ListUpcomingConfirmedStays(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingConfirmedStaysParams) ([]sqlc.ListUpcomingConfirmedStaysRow, error)
	GetPropertyAdmissionSpec(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPropertyAdmissionSpecRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return toBookingView(row)
}

func (r *BookingReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}

	result := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		view, err := toBookingView(sqlc.GetBookingByIDRow(row))
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	return result, nil
}

func (r *BookingReadStore) UpcomingStays(ctx context.Context, propertyID uuid.UUID, from time.Time) ([]queries.StayInterval, error) {
	rows, err := r.queries.ListUpcomingConfirmedStays(ctx, r.db, sqlc.ListUpcomingConfirmedStaysParams{
		PropertyID: propertyID,
		CheckOut:   pgconv.TimestampToPgtype(from),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming stays", err)
	}

	stays := make([]queries.StayInterval, len(rows))
	for i, row := range rows {
		stays[i] = queries.StayInterval{
			CheckIn:  pgconv.TimestampFromPgtype(row.CheckIn),
			CheckOut: pgconv.TimestampFromPgtype(row.CheckOut),
		}
	}
	return stays, nil
}

func (r *BookingReadStore) PropertyExists(ctx context.Context, propertyID uuid.UUID) (bool, error) {
	if _, err := r.queries.GetPropertyAdmissionSpec(ctx, r.db, propertyID); err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to look up property", err)
	}
	return true, nil
}

// ListBookingsByUserRow shares GetBookingByIDRow's columns and converts directly.
func toBookingView(row sqlc.GetBookingByIDRow) (*queries.BookingView, error) {
	total, err := converter.MoneyFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking total price", err)
	}

	return &queries.BookingView{
		ID:            row.ID,
		PropertyID:    row.PropertyID,
		PropertyTitle: row.PropertyTitle,
		PropertySlug:  row.PropertySlug,
		UserID:        row.UserID,
		CheckIn:       pgconv.TimestampFromPgtype(row.CheckIn),
		CheckOut:      pgconv.TimestampFromPgtype(row.CheckOut),
		GuestCount:    int(row.GuestCount),
		TotalPrice:    total.String(),
		Status:        row.Status,
		CreatedAt:     pgconv.TimestampFromPgtype(row.CreatedAt),
	}, nil
}
