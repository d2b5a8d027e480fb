package repository

import (
	"context"

	"guri24/internal/domain/inquiry"
	"guri24/internal/infra"
	"guri24/internal/infra/repository/converter"
	sqlc "guri24/internal/infra/sqlc/generated"
	"guri24/internal/pkg/pgconv"
)

type InquiryWriteQueries interface {
	CreateInquiry(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateInquiryParams) error
	UpdateInquiryStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateInquiryStatusParams) error
}

type InquiryRepository struct {
	queries InquiryWriteQueries
}

func NewInquiryRepository(queries InquiryWriteQueries) *InquiryRepository {
	return &InquiryRepository{queries: queries}
}

func (r *InquiryRepository) Create(ctx context.Context, tx sqlc.DBTX, i *inquiry.Inquiry) error {
	if err := r.queries.CreateInquiry(ctx, tx, converter.InquiryToInfra(i)); err != nil {
		return infra.WrapRepoErr("failed to create inquiry", err)
	}
	return nil
}

func (r *InquiryRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, i *inquiry.Inquiry) error {
	err := r.queries.UpdateInquiryStatus(ctx, tx, sqlc.UpdateInquiryStatusParams{
		ID:        i.ID(),
		Status:    i.Status().String(),
		UpdatedAt: pgconv.TimestampToPgtype(i.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update inquiry status", err)
	}
	return nil
}
