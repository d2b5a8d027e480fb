//go:build unit

package queries_test

import (
	"context"
	"testing"

	"guri24/internal/domain/property"
	"guri24/internal/domain/user"
	"guri24/internal/infra"
	"guri24/internal/pkg/ptr"
	"guri24/internal/testutil/builder"
	"guri24/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPropertyReadStore struct {
	mock.Mock
}

func (m *MockPropertyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PropertyView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.PropertyView), args.Error(1)
}

func (m *MockPropertyReadStore) FindBySlug(ctx context.Context, slug string) (*queries.PropertyView, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.PropertyView), args.Error(1)
}

func (m *MockPropertyReadStore) List(ctx context.Context, filter queries.PropertyFilter) ([]*queries.PropertyView, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*queries.PropertyView), args.Get(1).(int64), args.Error(2)
}

func TestPropertyQueries_List(t *testing.T) {
	ctx := context.Background()
	admin := user.RoleAdmin
	guest := user.RoleUser

	tests := []struct {
		name       string
		in         queries.PropertyFilter
		role       *user.Role
		wantPage   int
		wantSize   int
		wantStatus *string
	}{
		{name: "defaults for anonymous", in: queries.PropertyFilter{}, wantPage: 1, wantSize: queries.DefaultPageSize, wantStatus: ptr.Of("published")},
		{name: "oversized page is clamped", in: queries.PropertyFilter{Page: 3, PageSize: 500}, role: &guest, wantPage: 3, wantSize: queries.MaxPageSize, wantStatus: ptr.Of("published")},
		{name: "negative page size becomes one", in: queries.PropertyFilter{Page: -2, PageSize: -5}, wantPage: 1, wantSize: 1, wantStatus: ptr.Of("published")},
		{name: "non-staff cannot ask for drafts", in: queries.PropertyFilter{Status: ptr.Of("draft")}, role: &guest, wantPage: 1, wantSize: queries.DefaultPageSize, wantStatus: ptr.Of("published")},
		{name: "staff keep their status filter", in: queries.PropertyFilter{Status: ptr.Of("draft")}, role: &admin, wantPage: 1, wantSize: queries.DefaultPageSize, wantStatus: ptr.Of("draft")},
		{name: "staff without status see everything", in: queries.PropertyFilter{}, role: &admin, wantPage: 1, wantSize: queries.DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockPropertyReadStore)
			views := []*queries.PropertyView{builder.NewPropertyBuilder().BuildView()}
			store.On("List", ctx, mock.MatchedBy(func(f queries.PropertyFilter) bool {
				return f.Page == tt.wantPage && f.PageSize == tt.wantSize && assert.ObjectsAreEqual(tt.wantStatus, f.Status)
			})).Return(views, int64(41), nil)

			page, err := queries.NewPropertyQueries(store).List(ctx, tt.in, tt.role)

			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantSize, page.PageSize)
			assert.Equal(t, int64(41), page.Total)
			assert.Len(t, page.Properties, 1)
			store.AssertExpectations(t)
		})
	}
}

func TestPropertyQueries_GetBySlug(t *testing.T) {
	ctx := context.Background()
	agent := user.RoleAgent
	draft := builder.NewPropertyBuilder().WithStatus(property.StatusDraft).BuildView()
	published := builder.NewPropertyBuilder().BuildView()

	t.Run("published listing is public", func(t *testing.T) {
		store := new(MockPropertyReadStore)
		store.On("FindBySlug", ctx, published.Slug).Return(published, nil)

		got, err := queries.NewPropertyQueries(store).GetBySlug(ctx, published.Slug, nil)

		require.NoError(t, err)
		assert.Equal(t, published, got)
	})

	t.Run("draft hidden from anonymous users", func(t *testing.T) {
		store := new(MockPropertyReadStore)
		store.On("FindBySlug", ctx, draft.Slug).Return(draft, nil)

		_, err := queries.NewPropertyQueries(store).GetBySlug(ctx, draft.Slug, nil)

		assert.ErrorIs(t, err, queries.ErrPropertyNotFound)
	})

	t.Run("draft visible to staff", func(t *testing.T) {
		store := new(MockPropertyReadStore)
		store.On("FindBySlug", ctx, draft.Slug).Return(draft, nil)

		got, err := queries.NewPropertyQueries(store).GetBySlug(ctx, draft.Slug, &agent)

		require.NoError(t, err)
		assert.Equal(t, draft, got)
	})

	t.Run("unknown slug", func(t *testing.T) {
		store := new(MockPropertyReadStore)
		store.On("FindBySlug", ctx, "nope").
			Return(nil, infra.WrapRepoErr("failed to get property", pgx.ErrNoRows, infra.KindNotFound))

		_, err := queries.NewPropertyQueries(store).GetBySlug(ctx, "nope", &agent)

		assert.ErrorIs(t, err, queries.ErrPropertyNotFound)
	})
}
