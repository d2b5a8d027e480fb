package readstore

import (
	"context"

	"guri24/internal/infra"
	sqlc "guri24/internal/infra/sqlc/generated"
	"guri24/internal/pkg/pgconv"
	"guri24/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type InquiryViewQueries interface {
	GetInquiryByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Inquiries, error)
	ListInquiriesByUser(ctx context.Context, db sqlc.DBTX, userID pgtype.UUID) ([]sqlc.Inquiries, error)
	ListInquiriesByAgent(ctx context.Context, db sqlc.DBTX, propertyAgentID uuid.UUID) ([]sqlc.Inquiries, error)
}

type InquiryReadStore struct {
	queries InquiryViewQueries
	db      sqlc.DBTX
}

func NewInquiryReadStore(queries InquiryViewQueries, db sqlc.DBTX) *InquiryReadStore {
	return &InquiryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *InquiryReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.InquiryView, error) {
	row, err := r.queries.GetInquiryByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("inquiry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find inquiry by ID", err)
	}
	return toInquiryView(row), nil
}

func (r *InquiryReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.InquiryView, error) {
	rows, err := r.queries.ListInquiriesByUser(ctx, r.db, pgconv.UUIDToPgtype(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inquiries by user", err)
	}
	return toInquiryViews(rows), nil
}

func (r *InquiryReadStore) FindByAgent(ctx context.Context, agentID uuid.UUID) ([]*queries.InquiryView, error) {
	rows, err := r.queries.ListInquiriesByAgent(ctx, r.db, agentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inquiries by agent", err)
	}
	return toInquiryViews(rows), nil
}

func toInquiryViews(rows []sqlc.Inquiries) []*queries.InquiryView {
	views := make([]*queries.InquiryView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toInquiryView(row))
	}
	return views
}

func toInquiryView(row sqlc.Inquiries) *queries.InquiryView {
	return &queries.InquiryView{
		ID:              row.ID,
		PropertyID:      row.PropertyID,
		PropertyAgentID: row.PropertyAgentID,
		UserID:          pgconv.UUIDPtrFromPgtype(row.UserID),
		Name:            row.Name,
		Email:           row.Email,
		Phone:           pgconv.StringPtrFromPgtype(row.Phone),
		Message:         row.Message,
		Status:          row.Status,
		CreatedAt:       pgconv.TimestampFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimestampFromPgtype(row.UpdatedAt),
	}
}
