//go:build unit

package queries_test

import (
	"context"
	"testing"

	"guri24/internal/infra"
	"guri24/internal/testutil/builder"
	"guri24/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReadStore struct {
	mock.Mock
}

func (m *MockUserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.UserView), args.Error(1)
}

func TestUserQueries(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		user        *builder.UserBuilder
		missing     bool
		wantCurrent error
		wantBook    error
	}{
		{name: "verified active user", user: builder.NewUserBuilder()},
		{name: "unverified user can sign in but not book", user: builder.NewUserBuilder().AsUnverified(), wantBook: queries.ErrUnverified},
		{name: "suspended user", user: builder.NewUserBuilder().AsSuspended(), wantCurrent: queries.ErrUserInactive, wantBook: queries.ErrUserInactive},
		{name: "unknown user", user: builder.NewUserBuilder(), missing: true, wantCurrent: queries.ErrUserNotFound, wantBook: queries.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockUserReadStore)
			view := tt.user.BuildView()
			if tt.missing {
				store.On("FindByID", ctx, view.ID).
					Return(nil, infra.WrapRepoErr("failed to get user", pgx.ErrNoRows, infra.KindNotFound))
			} else {
				store.On("FindByID", ctx, view.ID).Return(view, nil)
			}
			uc := queries.NewUserQueries(store)

			got, err := uc.GetCurrentUser(ctx, view.ID)
			if tt.wantCurrent != nil {
				assert.ErrorIs(t, err, tt.wantCurrent)
			} else {
				require.NoError(t, err)
				assert.Equal(t, view, got)
			}

			_, err = uc.RequireBookableUser(ctx, view.ID)
			if tt.wantBook != nil {
				assert.ErrorIs(t, err, tt.wantBook)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("storage failure is passed through", func(t *testing.T) {
		store := new(MockUserReadStore)
		id := uuid.New()
		dbErr := infra.WrapRepoErr("failed to get user", assert.AnError)
		store.On("FindByID", ctx, id).Return(nil, dbErr)

		_, err := queries.NewUserQueries(store).GetCurrentUser(ctx, id)

		assert.ErrorIs(t, err, dbErr)
	})
}
