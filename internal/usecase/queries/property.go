package queries

import (
	"context"

	"guri24/internal/domain/property"
	"guri24/internal/domain/user"
	"guri24/internal/infra"
	"guri24/internal/pkg/patch"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type PropertyReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
	FindBySlug(ctx context.Context, slug string) (*PropertyView, error)
	List(ctx context.Context, filter PropertyFilter) ([]*PropertyView, int64, error)
}

type PropertyQueries interface {
	List(ctx context.Context, filter PropertyFilter, actorRole *user.Role) (*PropertyPage, error)
	GetBySlug(ctx context.Context, slug string, actorRole *user.Role) (*PropertyView, error)
	GetByID(ctx context.Context, id uuid.UUID, actorRole *user.Role) (*PropertyView, error)
}

type propertyQueriesImpl struct {
	store PropertyReadStore
}

func NewPropertyQueries(store PropertyReadStore) PropertyQueries {
	return &propertyQueriesImpl{store: store}
}

// List shows only published listings to anonymous users and non-staff; staff
// may filter by any status.
func (q *propertyQueriesImpl) List(ctx context.Context, filter PropertyFilter, actorRole *user.Role) (*PropertyPage, error) {
	filter.Page = max(filter.Page, 1)
	filter.PageSize = patch.Clamp(patch.Coalesce(nonZero(filter.PageSize), DefaultPageSize), 1, MaxPageSize)

	if !isStaff(actorRole) {
		published := property.StatusPublished.String()
		filter.Status = &published
	}

	views, total, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []*PropertyView{}
	}

	return &PropertyPage{
		Properties: views,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}

func (q *propertyQueriesImpl) GetBySlug(ctx context.Context, slug string, actorRole *user.Role) (*PropertyView, error) {
	view, err := q.store.FindBySlug(ctx, slug)
	return q.visible(view, err, actorRole)
}

func (q *propertyQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorRole *user.Role) (*PropertyView, error) {
	view, err := q.store.FindByID(ctx, id)
	return q.visible(view, err, actorRole)
}

func (q *propertyQueriesImpl) visible(view *PropertyView, err error, actorRole *user.Role) (*PropertyView, error) {
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	if view.Status != property.StatusPublished.String() && !isStaff(actorRole) {
		return nil, ErrPropertyNotFound
	}
	return view, nil
}

func isStaff(role *user.Role) bool {
	return role != nil && role.IsStaff()
}

func nonZero(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}
