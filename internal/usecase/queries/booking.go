package queries

import (
	"context"
	"log/slog"
	"time"

	"guri24/internal/infra"
	"guri24/internal/pkg/clock"
	"guri24/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrPropertyNotFound = errs.New("property not found")
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	UpcomingStays(ctx context.Context, propertyID uuid.UUID, from time.Time) ([]StayInterval, error)
	PropertyExists(ctx context.Context, propertyID uuid.UUID) (bool, error)
}

// AvailabilityCache holds the confirmed-stay projection per property.
// Every invalidation bumps a per-property generation. Set records the
// generation the caller read before loading the stays, and Get reports a hit
// only while that generation is still current, so a snapshot loaded before an
// admission can never be served after it.
type AvailabilityCache interface {
	Generation(ctx context.Context, propertyID uuid.UUID) (int64, error)
	Get(ctx context.Context, propertyID uuid.UUID) ([]StayInterval, bool, error)
	Set(ctx context.Context, propertyID uuid.UUID, generation int64, stays []StayInterval) error
}

type BookingQueries interface {
	// GetForUser hides bookings owned by someone else behind ErrBookingNotFound.
	GetForUser(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error)
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	Availability(ctx context.Context, propertyID uuid.UUID) (*AvailabilityView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	cache AvailabilityCache
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, cache AvailabilityCache, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, cache: cache, clock: clk}
}

func (q *bookingQueriesImpl) GetForUser(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != actorID {
		return nil, ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	views, err := q.store.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []*BookingView{}
	}
	return views, nil
}

// Availability reads through the cache. Cached entries may hold stays that
// ended since they were stored, so the check_out >= now filter is re-applied.
func (q *bookingQueriesImpl) Availability(ctx context.Context, propertyID uuid.UUID) (*AvailabilityView, error) {
	now := q.clock.Now()

	if stays, ok := q.fromCache(ctx, propertyID); ok {
		return &AvailabilityView{PropertyID: propertyID, BookedDates: upcoming(stays, now)}, nil
	}

	// read before the store so an admission committed after the load
	// leaves this entry behind the generation.
	gen, cacheable := q.generation(ctx, propertyID)

	exists, err := q.store.PropertyExists(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPropertyNotFound
	}

	stays, err := q.store.UpcomingStays(ctx, propertyID, now)
	if err != nil {
		return nil, err
	}
	if stays == nil {
		stays = []StayInterval{}
	}

	if cacheable {
		if err := q.cache.Set(ctx, propertyID, gen, stays); err != nil {
			slog.Warn("availability cache write failed", "property_id", propertyID.String(), "error", err.Error())
		}
	}

	return &AvailabilityView{PropertyID: propertyID, BookedDates: stays}, nil
}

func (q *bookingQueriesImpl) generation(ctx context.Context, propertyID uuid.UUID) (int64, bool) {
	if q.cache == nil {
		return 0, false
	}
	gen, err := q.cache.Generation(ctx, propertyID)
	if err != nil {
		slog.Warn("availability generation read failed", "property_id", propertyID.String(), "error", err.Error())
		return 0, false
	}
	return gen, true
}

func (q *bookingQueriesImpl) fromCache(ctx context.Context, propertyID uuid.UUID) ([]StayInterval, bool) {
	if q.cache == nil {
		return nil, false
	}
	stays, ok, err := q.cache.Get(ctx, propertyID)
	if err != nil {
		slog.Warn("availability cache read failed", "property_id", propertyID.String(), "error", err.Error())
		return nil, false
	}
	return stays, ok
}

func upcoming(stays []StayInterval, now time.Time) []StayInterval {
	out := make([]StayInterval, 0, len(stays))
	for _, s := range stays {
		if !s.CheckOut.Before(now) {
			out = append(out, s)
		}
	}
	return out
}
