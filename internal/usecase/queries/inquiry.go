package queries

import (
	"context"

	"guri24/internal/domain/user"
	"guri24/internal/infra"
	"guri24/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInquiryNotFound  = errs.New("inquiry not found")
	ErrInquiryForbidden = errs.New("inquiry not visible to caller")
)

type InquiryReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InquiryView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*InquiryView, error)
	FindByAgent(ctx context.Context, agentID uuid.UUID) ([]*InquiryView, error)
}

type InquiryQueries interface {
	// Get is open to the sender, the listing agent and staff.
	Get(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*InquiryView, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*InquiryView, error)
	// ListReceived returns inquiries sent about the agent's own listings.
	ListReceived(ctx context.Context, agentID uuid.UUID) ([]*InquiryView, error)
}

type inquiryQueriesImpl struct {
	store InquiryReadStore
}

func NewInquiryQueries(store InquiryReadStore) InquiryQueries {
	return &inquiryQueriesImpl{store: store}
}

func (q *inquiryQueriesImpl) Get(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*InquiryView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInquiryNotFound
		}
		return nil, err
	}
	if actorRole.IsStaff() || view.PropertyAgentID == actorID {
		return view, nil
	}
	if view.UserID != nil && *view.UserID == actorID {
		return view, nil
	}
	return nil, ErrInquiryForbidden
}

func (q *inquiryQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*InquiryView, error) {
	views, err := q.store.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []*InquiryView{}
	}
	return views, nil
}

func (q *inquiryQueriesImpl) ListReceived(ctx context.Context, agentID uuid.UUID) ([]*InquiryView, error) {
	views, err := q.store.FindByAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []*InquiryView{}
	}
	return views, nil
}
