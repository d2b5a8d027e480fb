package converter

import (
	"encoding/json"

	"guri24/internal/domain/money"
	"guri24/internal/domain/property"
	sqlc "guri24/internal/infra/sqlc/generated"
	"guri24/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func PropertyToInfra(p *property.Property) (sqlc.CreatePropertyParams, error) {
	d := p.Details()

	features, err := jsonList(d.Features)
	if err != nil {
		return sqlc.CreatePropertyParams{}, err
	}
	images, err := jsonList(d.Images)
	if err != nil {
		return sqlc.CreatePropertyParams{}, err
	}

	return sqlc.CreatePropertyParams{
		ID:          p.ID(),
		Title:       d.Title,
		Slug:        p.Slug(),
		Description: d.Description,
		Type:        d.Type.String(),
		Purpose:     d.Purpose.String(),
		Status:      p.Status().String(),
		Price:       pgconv.CentsToNumeric(d.Price.Cents()),
		Location:    d.Location,
		Latitude:    float8(d.Latitude),
		Longitude:   float8(d.Longitude),
		Bedrooms:    pgconv.Int32PtrToPgtype(d.Bedrooms),
		Bathrooms:   pgconv.Int32PtrToPgtype(d.Bathrooms),
		AreaSqm:     pgconv.Int32PtrToPgtype(d.AreaSqm),
		Features:    features,
		Images:      images,
		AgentID:     p.AgentID(),
		CreatedAt:   pgconv.TimestampToPgtype(p.CreatedAt()),
		UpdatedAt:   pgconv.TimestampToPgtype(p.UpdatedAt()),
	}, nil
}

func PropertyToUpdateParams(p *property.Property) (sqlc.UpdatePropertyParams, error) {
	row, err := PropertyToInfra(p)
	if err != nil {
		return sqlc.UpdatePropertyParams{}, err
	}
	return sqlc.UpdatePropertyParams{
		ID:          row.ID,
		Title:       row.Title,
		Slug:        row.Slug,
		Description: row.Description,
		Type:        row.Type,
		Purpose:     row.Purpose,
		Status:      row.Status,
		Price:       row.Price,
		Location:    row.Location,
		Latitude:    row.Latitude,
		Longitude:   row.Longitude,
		Bedrooms:    row.Bedrooms,
		Bathrooms:   row.Bathrooms,
		AreaSqm:     row.AreaSqm,
		Features:    row.Features,
		Images:      row.Images,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

// PropertyToDomain trusts stored enums; CHECK constraints keep them valid.
func PropertyToDomain(row sqlc.Properties) (*property.Property, error) {
	price, err := MoneyFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	var features, images []string
	if err := decodeList(row.Features, &features); err != nil {
		return nil, err
	}
	if err := decodeList(row.Images, &images); err != nil {
		return nil, err
	}
	d := property.Details{
		Title:       row.Title,
		Description: row.Description,
		Type:        property.Type(row.Type),
		Purpose:     property.Purpose(row.Purpose),
		Price:       price,
		Location:    row.Location,
		Bedrooms:    pgconv.Int32PtrFromPgtype(row.Bedrooms),
		Bathrooms:   pgconv.Int32PtrFromPgtype(row.Bathrooms),
		AreaSqm:     pgconv.Int32PtrFromPgtype(row.AreaSqm),
		Features:    features,
		Images:      images,
	}
	if row.Latitude.Valid {
		d.Latitude = &row.Latitude.Float64
	}
	if row.Longitude.Valid {
		d.Longitude = &row.Longitude.Float64
	}
	return property.ReconstructProperty(
		row.ID,
		row.Slug,
		d,
		property.Status(row.Status),
		row.AgentID,
		row.Views,
		pgconv.TimestampFromPgtype(row.CreatedAt),
		pgconv.TimestampFromPgtype(row.UpdatedAt),
	), nil
}

// MoneyFromNumeric reads a numeric(15,2) column into Money.
func MoneyFromNumeric(n pgtype.Numeric) (money.Money, error) {
	cents, err := pgconv.NumericToCents(n)
	if err != nil {
		return money.Money{}, err
	}
	return money.FromCents(cents)
}

func jsonList(items []string) ([]byte, error) {
	if items == nil {
		items = []string{}
	}
	return json.Marshal(items)
}

func decodeList(raw []byte, out *[]string) error {
	*out = []string{}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func float8(v *float64) pgtype.Float8 {
	if v == nil {
		return pgtype.Float8{}
	}
	return pgtype.Float8{Float64: *v, Valid: true}
}
