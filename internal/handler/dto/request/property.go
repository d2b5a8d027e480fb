package request

import (
	"guri24/internal/domain/money"
	"guri24/internal/pkg/ptr"
	"guri24/internal/usecase/commands"
	"guri24/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CreatePropertyRequest struct {
	Title       string   `json:"title" binding:"required,min=10,max=500"`
	Description string   `json:"description" binding:"required,min=50"`
	Type        string   `json:"type" binding:"required,oneof=house apartment villa land commercial"`
	Purpose     string   `json:"purpose" binding:"required,oneof=sale rent stay"`
	Status      string   `json:"status,omitempty" binding:"omitempty,oneof=draft published archived"`
	Price       string   `json:"price" binding:"required,decimal2" example:"450.00"`
	Location    string   `json:"location" binding:"required,min=3,max=255"`
	Latitude    *float64 `json:"latitude,omitempty" binding:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude,omitempty" binding:"omitempty,gte=-180,lte=180"`
	Bedrooms    *int32   `json:"bedrooms,omitempty" binding:"omitempty,gte=0"`
	Bathrooms   *int32   `json:"bathrooms,omitempty" binding:"omitempty,gte=0"`
	AreaSqm     *int32   `json:"area_sqm,omitempty" binding:"omitempty,gte=0"`
	Features    []string `json:"features,omitempty" binding:"omitempty,max=50,dive,max=100"`
	Images      []string `json:"images,omitempty" binding:"omitempty,max=30,dive,url"`
}

func (r CreatePropertyRequest) ToInput() (commands.CreatePropertyInput, error) {
	var in commands.CreatePropertyInput
	if err := copier.Copy(&in, &r); err != nil {
		return commands.CreatePropertyInput{}, err
	}
	return in, nil
}

// ListPropertiesQuery binds the catalog filters from the query string.
// Prices are decimals in the listing currency.
type ListPropertiesQuery struct {
	Type        string `form:"type" binding:"omitempty,oneof=house apartment villa land commercial"`
	Purpose     string `form:"purpose" binding:"omitempty,oneof=sale rent stay"`
	Status      string `form:"status" binding:"omitempty,oneof=draft published archived"`
	MinPrice    string `form:"min_price" binding:"omitempty,decimal2"`
	MaxPrice    string `form:"max_price" binding:"omitempty,decimal2"`
	Location    string `form:"location" binding:"omitempty,max=255"`
	MinBedrooms *int32 `form:"min_bedrooms" binding:"omitempty,gte=0"`
	Search      string `form:"search" binding:"omitempty,max=255"`
	Page        int    `form:"page" binding:"omitempty,gte=1"`
	PageSize    int    `form:"page_size" binding:"omitempty,gte=1,lte=100"`
}

func (q ListPropertiesQuery) ToFilter() (queries.PropertyFilter, error) {
	minPrice, err := centsOrNil(q.MinPrice)
	if err != nil {
		return queries.PropertyFilter{}, err
	}
	maxPrice, err := centsOrNil(q.MaxPrice)
	if err != nil {
		return queries.PropertyFilter{}, err
	}

	return queries.PropertyFilter{
		Type:          ptr.NonEmpty(q.Type),
		Purpose:       ptr.NonEmpty(q.Purpose),
		Status:        ptr.NonEmpty(q.Status),
		MinPriceCents: minPrice,
		MaxPriceCents: maxPrice,
		Location:      ptr.NonEmpty(q.Location),
		MinBedrooms:   q.MinBedrooms,
		Search:        ptr.NonEmpty(q.Search),
		Page:          q.Page,
		PageSize:      q.PageSize,
	}, nil
}

func centsOrNil(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	m, err := money.Parse(s)
	if err != nil {
		return nil, err
	}
	return ptr.Of(m.Cents()), nil
}

// UpdatePropertyRequest is a partial update; omitted fields keep their value.
type UpdatePropertyRequest struct {
	Title       *string  `json:"title,omitempty" binding:"omitempty,min=10,max=500"`
	Description *string  `json:"description,omitempty" binding:"omitempty,min=50"`
	Type        *string  `json:"type,omitempty" binding:"omitempty,oneof=house apartment villa land commercial"`
	Purpose     *string  `json:"purpose,omitempty" binding:"omitempty,oneof=sale rent stay"`
	Status      *string  `json:"status,omitempty" binding:"omitempty,oneof=draft published archived"`
	Price       *string  `json:"price,omitempty" binding:"omitempty,decimal2" example:"450.00"`
	Location    *string  `json:"location,omitempty" binding:"omitempty,min=3,max=255"`
	Latitude    *float64 `json:"latitude,omitempty" binding:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude,omitempty" binding:"omitempty,gte=-180,lte=180"`
	Bedrooms    *int32   `json:"bedrooms,omitempty" binding:"omitempty,gte=0"`
	Bathrooms   *int32   `json:"bathrooms,omitempty" binding:"omitempty,gte=0"`
	AreaSqm     *int32   `json:"area_sqm,omitempty" binding:"omitempty,gte=0"`
	Features    []string `json:"features,omitempty" binding:"omitempty,max=50,dive,max=100"`
	Images      []string `json:"images,omitempty" binding:"omitempty,max=30,dive,url"`
}

func (r UpdatePropertyRequest) ToInput() (commands.UpdatePropertyInput, error) {
	var in commands.UpdatePropertyInput
	if err := copier.Copy(&in, &r); err != nil {
		return commands.UpdatePropertyInput{}, err
	}
	return in, nil
}
