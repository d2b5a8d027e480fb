package property

import (
	"errors"
	"time"
	"unicode/utf8"

	"guri24/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrTitleLength       = errors.New("title must be between 10 and 500 characters")
	ErrDescriptionLength = errors.New("description must be at least 50 characters")
	ErrLocationLength    = errors.New("location must be between 3 and 255 characters")
	ErrNonPositivePrice  = errors.New("price must be greater than zero")
	ErrNegativeCount     = errors.New("room counts and area cannot be negative")
	ErrEmptySlug         = errors.New("title does not produce a usable slug")
)

const (
	titleMin       = 10
	titleMax       = 500
	descriptionMin = 50
	locationMin    = 3
	locationMax    = 255
)

type Details struct {
	Title       string
	Description string
	Type        Type
	Purpose     Purpose
	Price       money.Money
	Location    string
	Latitude    *float64
	Longitude   *float64
	Bedrooms    *int32
	Bathrooms   *int32
	AreaSqm     *int32
	Features    []string
	Images      []string
}

type Property struct {
	id        uuid.UUID
	slug      string
	details   Details
	status    Status
	agentID   uuid.UUID
	views     int64
	createdAt time.Time
	updatedAt time.Time
}

// NewProperty validates a listing draft submitted by an agent.
// The slug is resolved later against the catalog.
func NewProperty(d Details, status Status, agentID uuid.UUID, now time.Time) (*Property, error) {
	if status == "" {
		status = StatusDraft
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if err := validate(d); err != nil {
		return nil, err
	}
	slug := Slugify(d.Title)
	return &Property{
		id:        uuid.New(),
		slug:      slug,
		details:   d,
		status:    status,
		agentID:   agentID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func validate(d Details) error {
	if n := utf8.RuneCountInString(d.Title); n < titleMin || n > titleMax {
		return ErrTitleLength
	}
	if utf8.RuneCountInString(d.Description) < descriptionMin {
		return ErrDescriptionLength
	}
	if n := utf8.RuneCountInString(d.Location); n < locationMin || n > locationMax {
		return ErrLocationLength
	}
	if !d.Type.IsValid() {
		return ErrInvalidType
	}
	if !d.Purpose.IsValid() {
		return ErrInvalidPurpose
	}
	if d.Price.IsZero() {
		return ErrNonPositivePrice
	}
	for _, v := range []*int32{d.Bedrooms, d.Bathrooms, d.AreaSqm} {
		if v != nil && *v < 0 {
			return ErrNegativeCount
		}
	}
	if Slugify(d.Title) == "" {
		return ErrEmptySlug
	}
	return nil
}

func ReconstructProperty(
	id uuid.UUID,
	slug string,
	d Details,
	status Status,
	agentID uuid.UUID,
	views int64,
	createdAt, updatedAt time.Time,
) *Property {
	return &Property{
		id:        id,
		slug:      slug,
		details:   d,
		status:    status,
		agentID:   agentID,
		views:     views,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Patch carries a partial listing update. Nil fields keep their current value.
type Patch struct {
	Title       *string
	Description *string
	Type        *Type
	Purpose     *Purpose
	Status      *Status
	Price       *money.Money
	Location    *string
	Latitude    *float64
	Longitude   *float64
	Bedrooms    *int32
	Bathrooms   *int32
	AreaSqm     *int32
	Features    []string
	Images      []string
}

func (pt Patch) merge(d Details) Details {
	if pt.Title != nil {
		d.Title = *pt.Title
	}
	if pt.Description != nil {
		d.Description = *pt.Description
	}
	if pt.Type != nil {
		d.Type = *pt.Type
	}
	if pt.Purpose != nil {
		d.Purpose = *pt.Purpose
	}
	if pt.Price != nil {
		d.Price = *pt.Price
	}
	if pt.Location != nil {
		d.Location = *pt.Location
	}
	if pt.Latitude != nil {
		d.Latitude = pt.Latitude
	}
	if pt.Longitude != nil {
		d.Longitude = pt.Longitude
	}
	if pt.Bedrooms != nil {
		d.Bedrooms = pt.Bedrooms
	}
	if pt.Bathrooms != nil {
		d.Bathrooms = pt.Bathrooms
	}
	if pt.AreaSqm != nil {
		d.AreaSqm = pt.AreaSqm
	}
	if pt.Features != nil {
		d.Features = pt.Features
	}
	if pt.Images != nil {
		d.Images = pt.Images
	}
	return d
}

// Apply validates the merged listing before mutating p. It reports whether
// the title changed, in which case the slug has been reset to its base form.
func (p *Property) Apply(pt Patch, now time.Time) (bool, error) {
	status := p.status
	if pt.Status != nil {
		status = *pt.Status
	}
	if !status.IsValid() {
		return false, ErrInvalidStatus
	}
	d := pt.merge(p.details)
	if err := validate(d); err != nil {
		return false, err
	}
	retitled := d.Title != p.details.Title
	p.details = d
	p.status = status
	p.updatedAt = now
	if retitled {
		p.slug = Slugify(d.Title)
	}
	return retitled, nil
}

// Archive hides the listing from the public catalog. Bookings keep referencing it.
func (p *Property) Archive(now time.Time) {
	p.status = StatusArchived
	p.updatedAt = now
}

func (p *Property) IsOwnedBy(agentID uuid.UUID) bool { return p.agentID == agentID }

// WithSlugAttempt rebinds the slug to the n-th collision candidate.
func (p *Property) WithSlugAttempt(n int) {
	p.slug = SlugCandidate(Slugify(p.details.Title), n)
}

func (p *Property) IsBookable() bool { return p.details.Purpose.IsBookable() }

func (p *Property) ID() uuid.UUID        { return p.id }
func (p *Property) Slug() string         { return p.slug }
func (p *Property) Details() Details     { return p.details }
func (p *Property) Status() Status       { return p.status }
func (p *Property) AgentID() uuid.UUID   { return p.agentID }
func (p *Property) Views() int64         { return p.views }
func (p *Property) CreatedAt() time.Time { return p.createdAt }
func (p *Property) UpdatedAt() time.Time { return p.updatedAt }
