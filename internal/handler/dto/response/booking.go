package response

import (
	"time"

	"github.com/google/uuid"
)

// NaiveLayout renders ledger instants, which are UTC without an offset.
const NaiveLayout = "2006-01-02T15:04:05"

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	PropertyID    uuid.UUID `json:"property_id"`
	PropertyTitle string    `json:"property_title,omitempty"`
	PropertySlug  string    `json:"property_slug,omitempty"`
	UserID        uuid.UUID `json:"user_id"`
	CheckIn       string    `json:"check_in" example:"2024-06-05T00:00:00"`
	CheckOut      string    `json:"check_out" example:"2024-06-07T00:00:00"`
	GuestCount    int       `json:"guest_count"`
	TotalPrice    string    `json:"total_price" example:"90000.00"`
	Status        string    `json:"status" example:"confirmed"`
	CreatedAt     time.Time `json:"created_at"`
}

type StayIntervalResponse struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type AvailabilityResponse struct {
	PropertyID  uuid.UUID              `json:"property_id"`
	BookedDates []StayIntervalResponse `json:"booked_dates"`
}
