package response

import (
	"time"

	"github.com/google/uuid"
)

type InquiryResponse struct {
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
