package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID            uuid.UUID `json:"id"`
	PropertyID    uuid.UUID `json:"property_id"`
	PropertyTitle string    `json:"property_title"`
	PropertySlug  string    `json:"property_slug"`
	UserID        uuid.UUID `json:"user_id"`
	CheckIn       time.Time `json:"check_in"`
	CheckOut      time.Time `json:"check_out"`
	GuestCount    int       `json:"guest_count"`
	TotalPrice    string    `json:"total_price"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type StayInterval struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

type AvailabilityView struct {
	PropertyID  uuid.UUID      `json:"property_id"`
	BookedDates []StayInterval `json:"booked_dates"`
}

type PropertyView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Purpose     string    `json:"purpose"`
	Status      string    `json:"status"`
	Price       string    `json:"price"`
	Location    string    `json:"location"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Bedrooms    *int32    `json:"bedrooms,omitempty"`
	Bathrooms   *int32    `json:"bathrooms,omitempty"`
	AreaSqm     *int32    `json:"area_sqm,omitempty"`
	Features    []string  `json:"features"`
	Images      []string  `json:"images"`
	Views       int64     `json:"views"`
	AgentID     uuid.UUID `json:"agent_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type InquiryView struct {
	ID              uuid.UUID  `json:"id"`
	PropertyID      uuid.UUID  `json:"property_id"`
	PropertyAgentID uuid.UUID  `json:"property_agent_id"`
	UserID          *uuid.UUID `json:"user_id,omitempty"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           *string    `json:"phone,omitempty"`
	Message         string     `json:"message"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type PropertyFilter struct {
	Type          *string
	Purpose       *string
	Status        *string
	MinPriceCents *int64
	MaxPriceCents *int64
	Location      *string
	MinBedrooms   *int32
	Search        *string
	Page          int
	PageSize      int
}

type PropertyPage struct {
	Properties []*PropertyView `json:"properties"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
}

type UserView struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	Phone         *string    `json:"phone,omitempty"`
	Role          string     `json:"role"`
	Status        string     `json:"status"`
	EmailVerified bool       `json:"email_verified"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
