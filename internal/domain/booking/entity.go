package booking

import (
	"time"

	"guri24/internal/domain/money"
	"guri24/internal/domain/property"
	"guri24/internal/pkg/clock"

	"github.com/google/uuid"
)

// PropertySpec is the slice of a listing that admission needs.
type PropertySpec struct {
	ID          uuid.UUID
	Purpose     property.Purpose
	NightlyRate money.Money
}

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

type Booking struct {
	id         uuid.UUID
	propertyID uuid.UUID
	userID     uuid.UUID
	stay       Stay
	guestCount int
	totalPrice money.Money
	status     Status
	createdAt  time.Time
}

func CheckEligibility(p PropertySpec) error {
	if !p.Purpose.IsBookable() {
		return ErrNotBookable
	}
	return nil
}

// FindConflict returns the first confirmed stay that overlaps requested.
func FindConflict(requested Stay, confirmed []Stay) (Stay, bool) {
	for _, s := range confirmed {
		if requested.Overlaps(s) {
			return s, true
		}
	}
	return Stay{}, false
}

// NewBooking admits a stay against the confirmed stays of the same property.
// The caller must hold the property's admission lock while confirmed is read
// and until the booking is persisted.
func NewBooking(
	services *Services,
	prop PropertySpec,
	userID uuid.UUID,
	stay Stay,
	guestCount int,
	confirmed []Stay,
) (*Booking, error) {
	if err := CheckEligibility(prop); err != nil {
		return nil, err
	}
	if guestCount < 1 {
		return nil, ErrInvalidGuestCount
	}
	if _, found := FindConflict(stay, confirmed); found {
		return nil, ErrConflict
	}

	total, err := services.PriceCalculator.CalculatePrice(PriceContext{
		PropertyID:  prop.ID,
		NightlyRate: prop.NightlyRate,
	}, stay)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:         uuid.New(),
		propertyID: prop.ID,
		userID:     userID,
		stay:       stay,
		guestCount: guestCount,
		totalPrice: total,
		status:     StatusConfirmed,
		createdAt:  services.Clock.Now(),
	}, nil
}

func ReconstructBooking(
	id, propertyID, userID uuid.UUID,
	stay Stay,
	guestCount int,
	totalPrice money.Money,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		propertyID: propertyID,
		userID:     userID,
		stay:       stay,
		guestCount: guestCount,
		totalPrice: totalPrice,
		status:     status,
		createdAt:  createdAt,
	}
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) PropertyID() uuid.UUID   { return b.propertyID }
func (b *Booking) UserID() uuid.UUID       { return b.userID }
func (b *Booking) Stay() Stay              { return b.stay }
func (b *Booking) GuestCount() int         { return b.guestCount }
func (b *Booking) TotalPrice() money.Money { return b.totalPrice }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
