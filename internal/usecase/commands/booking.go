package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"guri24/internal/domain/booking"
	"guri24/internal/infra"
	"guri24/internal/pkg/errs"
	"guri24/internal/usecase/queries"
	"guri24/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPropertyNotFound  = errs.New("property not found")
	ErrNotBookable       = errs.New("property not bookable")
	ErrInvalidRange      = errs.New("invalid stay range")
	ErrPastDate          = errs.New("check-in in the past")
	ErrInvalidInstant    = errs.New("invalid instant")
	ErrBookingConflict   = errs.New("booking conflict")
	ErrInvalidGuestCount = errs.New("invalid guest count")
	ErrPriceOutOfRange   = errs.New("total price out of range")
	ErrAccountGone       = errs.New("booking account no longer exists")
	ErrUnavailable       = errs.New("storage unavailable")
)

const bookingUserFKName = "bookings_user_id_fkey"

// AvailabilityInvalidator drops the cached availability of a property.
type AvailabilityInvalidator interface {
	Invalidate(ctx context.Context, propertyID uuid.UUID) error
}

type AttemptBookingInput struct {
	PropertyID uuid.UUID
	UserID     uuid.UUID
	// RFC 3339 instants; an explicit offset is required.
	CheckIn    string
	CheckOut   string
	GuestCount int
}

type BookingCommands interface {
	AttemptBooking(ctx context.Context, in AttemptBookingInput) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	services *booking.Services
	reader   queries.BookingQueries
	cache    AvailabilityInvalidator
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	services *booking.Services,
	reader queries.BookingQueries,
	cache AvailabilityInvalidator,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		services: services,
		reader:   reader,
		cache:    cache,
	}
}

type bookingConfirmedPayload struct {
	BookingID  uuid.UUID `json:"booking_id"`
	PropertyID uuid.UUID `json:"property_id"`
	UserID     uuid.UUID `json:"user_id"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	GuestCount int       `json:"guest_count"`
	TotalPrice string    `json:"total_price"`
}

// AttemptBooking admits or rejects a stay. Rejections are checked in a fixed
// order: instant format, property existence, purpose, range, past date, overlap.
// A rejected attempt writes nothing.
func (uc *bookingCommandsImpl) AttemptBooking(ctx context.Context, in AttemptBookingInput) (*queries.BookingView, error) {
	checkIn, err := booking.ParseInstant(in.CheckIn)
	if err != nil {
		return nil, classifyAdmission(err)
	}
	checkOut, err := booking.ParseInstant(in.CheckOut)
	if err != nil {
		return nil, classifyAdmission(err)
	}

	var admitted *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().PropertyForAdmission(ctx, in.PropertyID)
		if derr != nil {
			return derr
		}
		spec := snap.Spec()
		if derr = booking.CheckEligibility(spec); derr != nil {
			return derr
		}

		stay, derr := booking.NewStay(checkIn, checkOut, uc.services.Clock.Now())
		if derr != nil {
			return derr
		}

		if derr = tx.Bookings().LockProperty(ctx, tx.DB(), spec.ID); derr != nil {
			return derr
		}
		confirmed, derr := tx.Bookings().ConfirmedOverlapping(ctx, tx.DB(), spec.ID, stay)
		if derr != nil {
			return derr
		}

		b, derr := booking.NewBooking(uc.services, spec, in.UserID, stay, in.GuestCount, confirmed)
		if derr != nil {
			return derr
		}
		if derr = tx.Bookings().Create(ctx, tx.DB(), b); derr != nil {
			return derr
		}

		payload, derr := json.Marshal(confirmedPayload(b))
		if derr != nil {
			return derr
		}
		if derr = tx.Notifications().CreateJob(ctx, tx.DB(), shared.TopicBookingConfirmed, payload, b.CreatedAt()); derr != nil {
			return derr
		}

		admitted = b
		return nil
	})
	if err != nil {
		return nil, classifyAdmission(err)
	}

	uc.invalidate(ctx, admitted.PropertyID())

	view, err := uc.reader.GetByIDSystem(ctx, admitted.ID())
	if err != nil {
		slog.Warn("read-after-write failed, answering from the admitted booking",
			"booking_id", admitted.ID().String(), "error", err.Error())
		return viewFromBooking(admitted), nil
	}
	return view, nil
}

func (uc *bookingCommandsImpl) invalidate(ctx context.Context, propertyID uuid.UUID) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, propertyID); err != nil {
		slog.Warn("failed to invalidate availability cache", "property_id", propertyID.String(), "error", err.Error())
	}
}

func classifyAdmission(err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidInstant):
		return errs.Mark(err, ErrInvalidInstant)
	case errors.Is(err, booking.ErrNotBookable):
		return errs.Mark(err, ErrNotBookable)
	case errors.Is(err, booking.ErrInvalidRange):
		return errs.Mark(err, ErrInvalidRange)
	case errors.Is(err, booking.ErrPastDate):
		return errs.Mark(err, ErrPastDate)
	case errors.Is(err, booking.ErrConflict):
		return errs.Mark(err, ErrBookingConflict)
	case errors.Is(err, booking.ErrInvalidGuestCount):
		return errs.Mark(err, ErrInvalidGuestCount)
	case errors.Is(err, booking.ErrPriceOutOfRange):
		return errs.Mark(err, ErrPriceOutOfRange)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrPropertyNotFound)
	case infra.IsKind(err, infra.KindExclusionViolated):
		return errs.Mark(err, ErrBookingConflict)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		// the property or the account was deleted after it was read
		if infra.ConstraintName(err) == bookingUserFKName {
			return errs.Mark(err, ErrAccountGone)
		}
		return errs.Mark(err, ErrPropertyNotFound)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return errs.Mark(err, ErrUnavailable)
	}
}

func confirmedPayload(b *booking.Booking) bookingConfirmedPayload {
	return bookingConfirmedPayload{
		BookingID:  b.ID(),
		PropertyID: b.PropertyID(),
		UserID:     b.UserID(),
		CheckIn:    b.Stay().CheckIn(),
		CheckOut:   b.Stay().CheckOut(),
		GuestCount: b.GuestCount(),
		TotalPrice: b.TotalPrice().String(),
	}
}

func viewFromBooking(b *booking.Booking) *queries.BookingView {
	return &queries.BookingView{
		ID:         b.ID(),
		PropertyID: b.PropertyID(),
		UserID:     b.UserID(),
		CheckIn:    b.Stay().CheckIn(),
		CheckOut:   b.Stay().CheckOut(),
		GuestCount: b.GuestCount(),
		TotalPrice: b.TotalPrice().String(),
		Status:     b.Status().String(),
		CreatedAt:  b.CreatedAt(),
	}
}
