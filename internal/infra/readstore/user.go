package readstore

import (
	"context"

	"guri24/internal/infra"
	sqlc "guri24/internal/infra/sqlc/generated"
	"guri24/internal/pkg/pgconv"
	"guri24/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return toUserView(row), nil
}

func toUserView(row sqlc.Users) *queries.UserView {
	return &queries.UserView{
		ID:            row.ID,
		Email:         row.Email,
		Name:          row.Name,
		Phone:         pgconv.StringPtrFromPgtype(row.Phone),
		Role:          row.Role,
		Status:        row.Status,
		EmailVerified: row.EmailVerified,
		LastLogin:     pgconv.TimestampPtrFromPgtype(row.LastLogin),
		CreatedAt:     pgconv.TimestampFromPgtype(row.CreatedAt),
	}
}
