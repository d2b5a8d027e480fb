//go:build unit

package commands

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"guri24/internal/domain/inquiry"
	"guri24/internal/domain/user"
	"guri24/internal/infra"
	"guri24/internal/pkg/clock"
	"guri24/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
)

type InquiryCommandsSuite struct {
	suite.Suite
	store   *memoryStore
	clk     *clock.MockClock
	uc      InquiryCommands
	agent   shared.Actor
	listing uuid.UUID
}

func TestInquiryCommandsSuite(t *testing.T) {
	suite.Run(t, new(InquiryCommandsSuite))
}

func (s *InquiryCommandsSuite) SetupTest() {
	s.store = newMemoryStore()
	s.clk = clock.NewMockClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	s.uc = NewInquiryCommands(newMemoryUoW(s.store), s.clk)
	s.agent = shared.Actor{ID: uuid.New(), Role: user.RoleAgent}

	view, err := NewPropertyCommands(newMemoryUoW(s.store), &storeViewReader{store: s.store}, s.clk).
		Create(context.Background(), validPropertyInput(), s.agent.ID)
	s.Require().NoError(err)
	s.listing = view.ID
}

func (s *InquiryCommandsSuite) input() CreateInquiryInput {
	return CreateInquiryInput{
		PropertyID: s.listing,
		Name:       "Dilnoza",
		Email:      "Buyer@Example.com",
		Message:    "Is the loft free for the first week of June?",
	}
}

func (s *InquiryCommandsSuite) TestCreate_AnonymousQueuesAgentMail() {
	view, err := s.uc.Create(context.Background(), s.input(), nil)

	s.Require().NoError(err)
	s.Equal("new", view.Status)
	s.Equal("buyer@example.com", view.Email)
	s.Nil(view.UserID)
	s.Equal(s.clk.Now(), view.CreatedAt)

	s.Equal([]string{shared.TopicInquiryReceived}, s.store.outboxTopics())
	var payload inquiryReceivedPayload
	s.Require().NoError(json.Unmarshal(s.store.outbox[0].Payload, &payload))
	s.Equal(s.agent.ID, payload.AgentID)
	s.Equal(view.ID, payload.InquiryID)
	s.Contains(s.store.inquiries, view.ID)
}

func (s *InquiryCommandsSuite) TestCreate_SignedInSenderIsRecorded() {
	sender := uuid.New()

	view, err := s.uc.Create(context.Background(), s.input(), &sender)

	s.Require().NoError(err)
	s.Require().NotNil(view.UserID)
	s.Equal(sender, *view.UserID)
}

func (s *InquiryCommandsSuite) TestCreate_Rejections() {
	tests := []struct {
		name   string
		mutate func(*CreateInquiryInput)
		errIs  error
	}{
		{"unknown listing", func(in *CreateInquiryInput) { in.PropertyID = uuid.New() }, ErrPropertyNotFound},
		{"bad email", func(in *CreateInquiryInput) { in.Email = "nope" }, ErrInvalidInquiry},
		{"short message", func(in *CreateInquiryInput) { in.Message = "hi" }, ErrInvalidInquiry},
		{"short name", func(in *CreateInquiryInput) { in.Name = "D" }, ErrInvalidInquiry},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			in := s.input()
			tt.mutate(&in)

			_, err := s.uc.Create(context.Background(), in, nil)

			s.ErrorIs(err, tt.errIs)
		})
	}
	s.Empty(s.store.outboxTopics())
	s.Empty(s.store.inquiries)
}

func (s *InquiryCommandsSuite) TestCreate_DeletedSenderAccount() {
	s.store.createInquiryErr = infra.WrapRepoErr("failed to create inquiry",
		&pgconn.PgError{Code: "23503", ConstraintName: "inquiries_user_id_fkey"})
	sender := uuid.New()

	_, err := s.uc.Create(context.Background(), s.input(), &sender)

	s.ErrorIs(err, ErrAccountGone)
	s.Empty(s.store.outboxTopics())
}

func (s *InquiryCommandsSuite) seedInquiry() uuid.UUID {
	view, err := s.uc.Create(context.Background(), s.input(), nil)
	s.Require().NoError(err)
	return view.ID
}

func (s *InquiryCommandsSuite) TestUpdateStatus_ListingAgent() {
	id := s.seedInquiry()
	s.clk.Add(time.Hour)

	view, err := s.uc.UpdateStatus(context.Background(), id, "contacted", s.agent)

	s.Require().NoError(err)
	s.Equal("contacted", view.Status)
	s.Equal(s.clk.Now(), view.UpdatedAt)
	s.Equal(inquiry.StatusContacted, s.store.inquiries[id].Status())
}

func (s *InquiryCommandsSuite) TestUpdateStatus_Rejections() {
	id := s.seedInquiry()
	tests := []struct {
		name   string
		id     uuid.UUID
		status string
		actor  shared.Actor
		errIs  error
	}{
		{"other agent", id, "contacted", shared.Actor{ID: uuid.New(), Role: user.RoleAgent}, ErrInquiryForbidden},
		{"unknown status", id, "lost", s.agent, ErrInvalidInquiry},
		{"unknown inquiry", uuid.New(), "closed", s.agent, ErrInquiryNotFound},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.uc.UpdateStatus(context.Background(), tt.id, tt.status, tt.actor)

			s.ErrorIs(err, tt.errIs)
			s.Equal(inquiry.StatusNew, s.store.inquiries[id].Status())
		})
	}
}

func (s *InquiryCommandsSuite) TestUpdateStatus_Staff() {
	id := s.seedInquiry()
	admin := shared.Actor{ID: uuid.New(), Role: user.RoleAdmin}

	view, err := s.uc.UpdateStatus(context.Background(), id, "closed", admin)

	s.Require().NoError(err)
	s.Equal("closed", view.Status)
}
