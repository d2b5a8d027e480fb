package request

import (
	"guri24/internal/usecase/commands"

	"github.com/google/uuid"
)

// CreateBookingRequest carries offset-aware instants; they are normalized to
// naive UTC by the admission logic.
type CreateBookingRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	CheckIn    string    `json:"check_in" binding:"required,rfc3339" example:"2024-06-05T15:00:00+01:00"`
	CheckOut   string    `json:"check_out" binding:"required,rfc3339" example:"2024-06-07T11:00:00+01:00"`
	GuestCount int       `json:"guest_count" binding:"required,gte=1"`
}

func (r CreateBookingRequest) ToInput(userID uuid.UUID) commands.AttemptBookingInput {
	return commands.AttemptBookingInput{
		PropertyID: r.PropertyID,
		UserID:     userID,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		GuestCount: r.GuestCount,
	}
}
