//go:build unit || e2e

package builder

import (
	"time"

	"guri24/internal/domain/money"
	"guri24/internal/domain/property"
	sqlc "guri24/internal/infra/sqlc/generated"
	"guri24/internal/pkg/pgconv"
	"guri24/internal/usecase/queries"
	"guri24/internal/usecase/shared"

	"github.com/google/uuid"
)

type PropertyBuilder struct {
	ID          uuid.UUID
	Title       string
	Slug        string
	Description string
	Type        property.Type
	Purpose     property.Purpose
	Status      property.Status
	PriceCents  int64
	Location    string
	AgentID     uuid.UUID
	CreatedAt   time.Time
}

func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		ID:          uuid.New(),
		Title:       "Seaside Villa Getaway",
		Slug:        "seaside-villa-getaway",
		Description: "A bright villa a short walk from the beach, with a garden and two terraces.",
		Type:        property.TypeVilla,
		Purpose:     property.PurposeStay,
		Status:      property.StatusPublished,
		PriceCents:  100000,
		Location:    "Cascais",
		AgentID:     uuid.New(),
		CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (p *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(p)
	return p
}

func (p *PropertyBuilder) WithPurpose(purpose property.Purpose) *PropertyBuilder {
	p.Purpose = purpose
	return p
}

func (p *PropertyBuilder) WithPriceCents(cents int64) *PropertyBuilder {
	p.PriceCents = cents
	return p
}

func (p *PropertyBuilder) WithStatus(status property.Status) *PropertyBuilder {
	p.Status = status
	return p
}

func (p *PropertyBuilder) Details() property.Details {
	price, err := money.FromCents(p.PriceCents)
	if err != nil {
		panic(err)
	}
	return property.Details{
		Title:       p.Title,
		Description: p.Description,
		Type:        p.Type,
		Purpose:     p.Purpose,
		Price:       price,
		Location:    p.Location,
	}
}

func (p *PropertyBuilder) BuildSnapshot() *shared.PropertySnapshot {
	price, err := money.FromCents(p.PriceCents)
	if err != nil {
		panic(err)
	}
	return &shared.PropertySnapshot{ID: p.ID, Purpose: p.Purpose, NightlyRate: price}
}

func (p *PropertyBuilder) BuildInfra() sqlc.Properties {
	return sqlc.Properties{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,
		Type:        p.Type.String(),
		Purpose:     p.Purpose.String(),
		Status:      p.Status.String(),
		Price:       pgconv.CentsToNumeric(p.PriceCents),
		Location:    p.Location,
		Features:    []byte(`["pool","wifi"]`),
		Images:      []byte(`[]`),
		AgentID:     p.AgentID,
		CreatedAt:   pgconv.TimestampToPgtype(p.CreatedAt),
		UpdatedAt:   pgconv.TimestampToPgtype(p.CreatedAt),
	}
}

func (p *PropertyBuilder) BuildView() *queries.PropertyView {
	price, err := money.FromCents(p.PriceCents)
	if err != nil {
		panic(err)
	}
	return &queries.PropertyView{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,
		Type:        p.Type.String(),
		Purpose:     p.Purpose.String(),
		Status:      p.Status.String(),
		Price:       price.String(),
		Location:    p.Location,
		Features:    []string{"pool", "wifi"},
		Images:      []string{},
		AgentID:     p.AgentID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.CreatedAt,
	}
}
