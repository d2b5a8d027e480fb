package queries

import (
	"context"

	"guri24/internal/domain/user"
	"guri24/internal/infra"
	"guri24/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
	ErrUnverified   = errs.New("email not verified")
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
	// RequireBookableUser accepts only active accounts with a verified email.
	RequireBookableUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if u.Status != user.StatusActive.String() {
		return nil, ErrUserInactive
	}

	return u, nil
}

func (q *userQueriesImpl) RequireBookableUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	u, err := q.GetCurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !u.EmailVerified {
		return nil, ErrUnverified
	}
	return u, nil
}
