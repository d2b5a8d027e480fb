package commands

import (
	"context"
	"encoding/json"
	"errors"

	"guri24/internal/domain/inquiry"
	"guri24/internal/domain/user"
	"guri24/internal/infra"
	"guri24/internal/pkg/clock"
	"guri24/internal/pkg/errs"
	"guri24/internal/usecase/queries"
	"guri24/internal/usecase/shared"

	"github.com/google/uuid"
)

const inquiryUserFKName = "inquiries_user_id_fkey"

var (
	ErrInvalidInquiry   = errs.New("invalid inquiry")
	ErrInquiryNotFound  = errs.New("inquiry not found")
	ErrInquiryForbidden = errs.New("inquiry belongs to another agent")
	ErrInquiryNotStored = errs.New("inquiry could not be stored")
)

type CreateInquiryInput struct {
	PropertyID uuid.UUID
	Name       string
	Email      string
	Phone      *string
	Message    string
}

type InquiryCommands interface {
	// Create records an inquiry; senderID is nil for anonymous visitors.
	Create(ctx context.Context, in CreateInquiryInput, senderID *uuid.UUID) (*queries.InquiryView, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, actor shared.Actor) (*queries.InquiryView, error)
}

type inquiryCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewInquiryCommands(uow shared.UnitOfWork, clk clock.Clock) InquiryCommands {
	return &inquiryCommandsImpl{uow: uow, clock: clk}
}

type inquiryReceivedPayload struct {
	InquiryID  uuid.UUID `json:"inquiry_id"`
	PropertyID uuid.UUID `json:"property_id"`
	AgentID    uuid.UUID `json:"agent_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone,omitempty"`
	Message    string    `json:"message"`
}

func (uc *inquiryCommandsImpl) Create(ctx context.Context, in CreateInquiryInput, senderID *uuid.UUID) (*queries.InquiryView, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInquiry)
	}
	contact, err := inquiry.NewContact(in.Name, email, in.Phone, in.Message)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInquiry)
	}

	var created *inquiry.Inquiry
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		agentID, derr := tx.Reads().PropertyOwner(ctx, in.PropertyID)
		if derr != nil {
			return derr
		}

		i := inquiry.NewInquiry(in.PropertyID, agentID, senderID, contact, uc.clock.Now())
		if derr = tx.Inquiries().Create(ctx, tx.DB(), i); derr != nil {
			return derr
		}

		payload, derr := json.Marshal(inquiryReceivedPayload{
			InquiryID:  i.ID(),
			PropertyID: i.PropertyID(),
			AgentID:    agentID,
			Name:       contact.Name,
			Email:      contact.Email.Value(),
			Phone:      contact.Phone,
			Message:    contact.Message,
		})
		if derr != nil {
			return derr
		}
		if derr = tx.Notifications().CreateJob(ctx, tx.DB(), shared.TopicInquiryReceived, payload, i.CreatedAt()); derr != nil {
			return derr
		}
		created = i
		return nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrPropertyNotFound)
		case infra.IsKind(err, infra.KindForeignKeyViolated) && infra.ConstraintName(err) == inquiryUserFKName:
			return nil, errs.Mark(err, ErrAccountGone)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, errs.Mark(err, ErrPropertyNotFound)
		default:
			return nil, errs.Mark(err, ErrInquiryNotStored)
		}
	}
	return inquiryView(created), nil
}

// UpdateStatus lets the listing agent, or staff, move an inquiry along.
func (uc *inquiryCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, raw string, actor shared.Actor) (*queries.InquiryView, error) {
	status, err := inquiry.NewStatus(raw)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInquiry)
	}

	var updated *inquiry.Inquiry
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		i, derr := tx.Reads().InquiryForUpdate(ctx, id)
		if derr != nil {
			return derr
		}
		if !i.ManageableBy(actor.ID, actor.Role) {
			return ErrInquiryForbidden
		}
		if derr = i.ChangeStatus(status, uc.clock.Now()); derr != nil {
			return errs.Mark(derr, ErrInvalidInquiry)
		}
		if derr = tx.Inquiries().UpdateStatus(ctx, tx.DB(), i); derr != nil {
			return derr
		}
		updated = i
		return nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrInquiryNotFound)
		case errors.Is(err, ErrInquiryForbidden), errors.Is(err, ErrInvalidInquiry):
			return nil, err
		default:
			return nil, errs.Mark(err, ErrInquiryNotStored)
		}
	}
	return inquiryView(updated), nil
}

// inquiryView renders the aggregate the same way the read store does.
func inquiryView(i *inquiry.Inquiry) *queries.InquiryView {
	c := i.Contact()
	return &queries.InquiryView{
		ID:              i.ID(),
		PropertyID:      i.PropertyID(),
		PropertyAgentID: i.PropertyAgentID(),
		UserID:          i.UserID(),
		Name:            c.Name,
		Email:           c.Email.Value(),
		Phone:           c.Phone,
		Message:         c.Message,
		Status:          i.Status().String(),
		CreatedAt:       i.CreatedAt(),
		UpdatedAt:       i.UpdatedAt(),
	}
}
