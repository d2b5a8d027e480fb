package readstore

import (
	"context"
	"encoding/json"

	"guri24/internal/infra"
	"guri24/internal/infra/repository/converter"
	sqlc "guri24/internal/infra/sqlc/generated"
	"guri24/internal/pkg/pgconv"
	"guri24/internal/pkg/ptr"
	"guri24/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PropertyViewQueries interface {
	GetPropertyByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Properties, error)
	GetPropertyBySlug(ctx context.Context, db sqlc.DBTX, slug string) (sqlc.Properties, error)
	ListProperties(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPropertiesParams) ([]sqlc.Properties, error)
	CountProperties(ctx context.Context, db sqlc.DBTX, arg sqlc.CountPropertiesParams) (int64, error)
}

type PropertyReadStore struct {
	queries PropertyViewQueries
	db      sqlc.DBTX
}

func NewPropertyReadStore(queries PropertyViewQueries, db sqlc.DBTX) *PropertyReadStore {
	return &PropertyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PropertyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PropertyView, error) {
	row, err := r.queries.GetPropertyByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property by ID", err)
	}
	return toPropertyView(row)
}

func (r *PropertyReadStore) FindBySlug(ctx context.Context, slug string) (*queries.PropertyView, error) {
	row, err := r.queries.GetPropertyBySlug(ctx, r.db, slug)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property by slug", err)
	}
	return toPropertyView(row)
}

// List returns one page plus the total matching the same filter.
func (r *PropertyReadStore) List(ctx context.Context, filter queries.PropertyFilter) ([]*queries.PropertyView, int64, error) {
	count := countParams(filter)

	total, err := r.queries.CountProperties(ctx, r.db, count)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count properties", err)
	}

	rows, err := r.queries.ListProperties(ctx, r.db, sqlc.ListPropertiesParams{
		Type:        count.Type,
		Purpose:     count.Purpose,
		Status:      count.Status,
		MinPrice:    count.MinPrice,
		MaxPrice:    count.MaxPrice,
		Location:    count.Location,
		MinBedrooms: count.MinBedrooms,
		Search:      count.Search,
		PageLimit:   int32(filter.PageSize),                     // #nosec G115 -- clamped to 1..100
		PageOffset:  int32((filter.Page - 1) * filter.PageSize), // #nosec G115
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list properties", err)
	}

	views := make([]*queries.PropertyView, 0, len(rows))
	for _, row := range rows {
		view, err := toPropertyView(row)
		if err != nil {
			return nil, 0, err
		}
		views = append(views, view)
	}
	return views, total, nil
}

func countParams(f queries.PropertyFilter) sqlc.CountPropertiesParams {
	return sqlc.CountPropertiesParams{
		Type:        pgconv.StringPtrToPgtype(f.Type),
		Purpose:     pgconv.StringPtrToPgtype(f.Purpose),
		Status:      pgconv.StringPtrToPgtype(f.Status),
		MinPrice:    centsPtrToNumeric(f.MinPriceCents),
		MaxPrice:    centsPtrToNumeric(f.MaxPriceCents),
		Location:    pgconv.StringPtrToPgtype(f.Location),
		MinBedrooms: pgconv.Int32PtrToPgtype(f.MinBedrooms),
		Search:      pgconv.StringPtrToPgtype(f.Search),
	}
}

func centsPtrToNumeric(cents *int64) pgtype.Numeric {
	if cents == nil {
		return pgtype.Numeric{}
	}
	return pgconv.CentsToNumeric(*cents)
}

func toPropertyView(row sqlc.Properties) (*queries.PropertyView, error) {
	price, err := converter.MoneyFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid property price", err)
	}
	features, err := stringList(row.Features)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid property features", err)
	}
	images, err := stringList(row.Images)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid property images", err)
	}

	return &queries.PropertyView{
		ID:          row.ID,
		Title:       row.Title,
		Slug:        row.Slug,
		Description: row.Description,
		Type:        row.Type,
		Purpose:     row.Purpose,
		Status:      row.Status,
		Price:       price.String(),
		Location:    row.Location,
		Latitude:    ptr.Float64FromPgtype(row.Latitude),
		Longitude:   ptr.Float64FromPgtype(row.Longitude),
		Bedrooms:    pgconv.Int32PtrFromPgtype(row.Bedrooms),
		Bathrooms:   pgconv.Int32PtrFromPgtype(row.Bathrooms),
		AreaSqm:     pgconv.Int32PtrFromPgtype(row.AreaSqm),
		Features:    features,
		Images:      images,
		Views:       row.Views,
		AgentID:     row.AgentID,
		CreatedAt:   pgconv.TimestampFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimestampFromPgtype(row.UpdatedAt),
	}, nil
}

func stringList(raw []byte) ([]string, error) {
	out := []string{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
