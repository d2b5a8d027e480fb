package shared

import (
	"guri24/internal/domain/booking"
	"guri24/internal/domain/money"
	"guri24/internal/domain/property"
	"guri24/internal/domain/user"

	"github.com/google/uuid"
)

// Notification topics written to the outbox.
const (
	TopicBookingConfirmed  = "booking_confirmed"
	TopicEmailVerification = "email_verification"
	TopicPasswordReset     = "password_reset"
	TopicInquiryReceived   = "inquiry_received"
)

// Actor is the authenticated caller of a command that checks ownership.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

type PropertySnapshot struct {
	ID          uuid.UUID
	Purpose     property.Purpose
	NightlyRate money.Money
}

func (s PropertySnapshot) Spec() booking.PropertySpec {
	return booking.PropertySpec{ID: s.ID, Purpose: s.Purpose, NightlyRate: s.NightlyRate}
}

type NotificationJob struct {
	ID       uuid.UUID
	Topic    string
	Payload  []byte
	Attempts int
}
