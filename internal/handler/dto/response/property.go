package response

import (
	"time"

	"github.com/google/uuid"
)

type PropertyResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Purpose     string    `json:"purpose"`
	Status      string    `json:"status"`
	Price       string    `json:"price" example:"450.00"`
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

type PropertyListResponse struct {
	Properties []*PropertyResponse `json:"properties"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}
