package inquiry

import (
	"strings"
	"time"
	"unicode/utf8"

	"guri24/internal/domain/user"

	"github.com/google/uuid"
)

const (
	nameMin    = 2
	nameMax    = 255
	messageMin = 10
	phoneMax   = 20
)

// Contact is what a prospect leaves on a listing. Anonymous visitors may
// send one, so it does not depend on an account.
type Contact struct {
	Name    string
	Email   user.Email
	Phone   *string
	Message string
}

type Inquiry struct {
	id              uuid.UUID
	propertyID      uuid.UUID
	propertyAgentID uuid.UUID
	userID          *uuid.UUID
	contact         Contact
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

// NewContact trims and validates a prospect's contact details.
func NewContact(name string, email user.Email, phone *string, message string) (Contact, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < nameMin || n > nameMax {
		return Contact{}, ErrNameLength
	}
	message = strings.TrimSpace(message)
	if utf8.RuneCountInString(message) < messageMin {
		return Contact{}, ErrMessageLength
	}
	if phone != nil {
		trimmed := strings.TrimSpace(*phone)
		if utf8.RuneCountInString(trimmed) > phoneMax {
			return Contact{}, ErrPhoneLength
		}
		if trimmed == "" {
			phone = nil
		} else {
			phone = &trimmed
		}
	}
	return Contact{Name: name, Email: email, Phone: phone, Message: message}, nil
}

// NewInquiry opens an inquiry against a listing owned by agentID.
func NewInquiry(propertyID, agentID uuid.UUID, userID *uuid.UUID, c Contact, now time.Time) *Inquiry {
	return &Inquiry{
		id:              uuid.New(),
		propertyID:      propertyID,
		propertyAgentID: agentID,
		userID:          userID,
		contact:         c,
		status:          StatusNew,
		createdAt:       now,
		updatedAt:       now,
	}
}

type Snapshot struct {
	ID              uuid.UUID
	PropertyID      uuid.UUID
	PropertyAgentID uuid.UUID
	UserID          *uuid.UUID
	Contact         Contact
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func Reconstruct(s Snapshot) *Inquiry {
	return &Inquiry{
		id:              s.ID,
		propertyID:      s.PropertyID,
		propertyAgentID: s.PropertyAgentID,
		userID:          s.UserID,
		contact:         s.Contact,
		status:          s.Status,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
	}
}

func (i *Inquiry) ChangeStatus(s Status, now time.Time) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	i.status = s
	i.updatedAt = now
	return nil
}

// VisibleTo reports whether the actor sent the inquiry or owns the listing.
// Staff see every inquiry.
func (i *Inquiry) VisibleTo(actorID uuid.UUID, role user.Role) bool {
	if role.IsStaff() || i.propertyAgentID == actorID {
		return true
	}
	return i.userID != nil && *i.userID == actorID
}

// ManageableBy reports whether the actor may move the inquiry through its statuses.
func (i *Inquiry) ManageableBy(actorID uuid.UUID, role user.Role) bool {
	return role.IsStaff() || (role.AtLeast(user.RoleAgent) && i.propertyAgentID == actorID)
}

func (i *Inquiry) ID() uuid.UUID              { return i.id }
func (i *Inquiry) PropertyID() uuid.UUID      { return i.propertyID }
func (i *Inquiry) PropertyAgentID() uuid.UUID { return i.propertyAgentID }
func (i *Inquiry) UserID() *uuid.UUID         { return i.userID }
func (i *Inquiry) Contact() Contact           { return i.contact }
func (i *Inquiry) Status() Status             { return i.status }
func (i *Inquiry) CreatedAt() time.Time       { return i.createdAt }
func (i *Inquiry) UpdatedAt() time.Time       { return i.updatedAt }
