package repository

import (
	"context"

	"guri24/internal/domain/property"
	"guri24/internal/infra"
	"guri24/internal/infra/repository/converter"
	sqlc "guri24/internal/infra/sqlc/generated"
	"guri24/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PropertyWriteQueries interface {
	CreateProperty(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePropertyParams) error
	IncrementPropertyViews(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	UpdateProperty(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePropertyParams) error
	SetPropertyStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.SetPropertyStatusParams) error
}

type PropertyRepository struct {
	queries PropertyWriteQueries
}

func NewPropertyRepository(queries PropertyWriteQueries) *PropertyRepository {
	return &PropertyRepository{queries: queries}
}

func (r *PropertyRepository) Create(ctx context.Context, tx sqlc.DBTX, p *property.Property) error {
	params, err := converter.PropertyToInfra(p)
	if err != nil {
		return infra.WrapRepoErr("failed to encode property", err)
	}
	if err := r.queries.CreateProperty(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create property", err)
	}
	return nil
}

func (r *PropertyRepository) Update(ctx context.Context, tx sqlc.DBTX, p *property.Property) error {
	params, err := converter.PropertyToUpdateParams(p)
	if err != nil {
		return infra.WrapRepoErr("failed to encode property", err)
	}
	if err := r.queries.UpdateProperty(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update property", err)
	}
	return nil
}

func (r *PropertyRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, p *property.Property) error {
	err := r.queries.SetPropertyStatus(ctx, tx, sqlc.SetPropertyStatusParams{
		ID:        p.ID(),
		Status:    p.Status().String(),
		UpdatedAt: pgconv.TimestampToPgtype(p.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update property status", err)
	}
	return nil
}

func (r *PropertyRepository) IncrementViews(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.IncrementPropertyViews(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to increment property views", err)
	}
	return nil
}
