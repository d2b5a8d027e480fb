//go:build unit

package inquiry_test

import (
	"strings"
	"testing"
	"time"

	"guri24/internal/domain/inquiry"
	"guri24/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)

func mustEmail(t *testing.T) user.Email {
	t.Helper()
	e, err := user.NewEmail("buyer@example.com")
	require.NoError(t, err)
	return e
}

func TestNewContact(t *testing.T) {
	str := func(s string) *string { return &s }

	t.Run("trims fields and drops a blank phone", func(t *testing.T) {
		c, err := inquiry.NewContact("  Dilnoza  ", mustEmail(t), str("   "), "  Is the loft still free?  ")

		require.NoError(t, err)
		assert.Equal(t, "Dilnoza", c.Name)
		assert.Equal(t, "Is the loft still free?", c.Message)
		assert.Nil(t, c.Phone)
	})

	tests := []struct {
		name    string
		contact string
		phone   *string
		message string
		errIs   error
	}{
		{"name too short", "D", nil, "Is the loft still free?", inquiry.ErrNameLength},
		{"name too long", strings.Repeat("x", 256), nil, "Is the loft still free?", inquiry.ErrNameLength},
		{"message too short", "Dilnoza", nil, "  hello   ", inquiry.ErrMessageLength},
		{"phone too long", "Dilnoza", str("+998 90 123 45 67 890"), "Is the loft still free?", inquiry.ErrPhoneLength},
		{"phone at limit", "Dilnoza", str("+998 90 123 45 67 8"), "Is the loft still free?", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := inquiry.NewContact(tt.contact, mustEmail(t), tt.phone, tt.message)
			if tt.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestNewInquiry(t *testing.T) {
	c, err := inquiry.NewContact("Dilnoza", mustEmail(t), nil, "Is the loft still free?")
	require.NoError(t, err)
	propertyID, agentID := uuid.New(), uuid.New()

	i := inquiry.NewInquiry(propertyID, agentID, nil, c, now)

	assert.Equal(t, inquiry.StatusNew, i.Status())
	assert.Equal(t, propertyID, i.PropertyID())
	assert.Equal(t, agentID, i.PropertyAgentID())
	assert.Nil(t, i.UserID())
	assert.Equal(t, now, i.CreatedAt())
	assert.Equal(t, now, i.UpdatedAt())
}

func TestChangeStatus(t *testing.T) {
	i := inquiry.Reconstruct(inquiry.Snapshot{ID: uuid.New(), Status: inquiry.StatusNew, UpdatedAt: now})
	later := now.Add(time.Hour)

	require.NoError(t, i.ChangeStatus(inquiry.StatusContacted, later))
	assert.Equal(t, inquiry.StatusContacted, i.Status())
	assert.Equal(t, later, i.UpdatedAt())

	assert.ErrorIs(t, i.ChangeStatus("lost", later.Add(time.Hour)), inquiry.ErrInvalidStatus)
	assert.Equal(t, inquiry.StatusContacted, i.Status())
	assert.Equal(t, later, i.UpdatedAt())

	_, err := inquiry.NewStatus("converted")
	require.NoError(t, err)
	_, err = inquiry.NewStatus("pending")
	assert.ErrorIs(t, err, inquiry.ErrInvalidStatus)
}

func TestAccess(t *testing.T) {
	sender, agent, otherAgent, stranger := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	i := inquiry.Reconstruct(inquiry.Snapshot{ID: uuid.New(), PropertyAgentID: agent, UserID: &sender, Status: inquiry.StatusNew})
	anonymous := inquiry.Reconstruct(inquiry.Snapshot{ID: uuid.New(), PropertyAgentID: agent, Status: inquiry.StatusNew})

	tests := []struct {
		name       string
		actor      uuid.UUID
		role       user.Role
		subject    *inquiry.Inquiry
		visible    bool
		manageable bool
	}{
		{"sender", sender, user.RoleUser, i, true, false},
		{"listing agent", agent, user.RoleAgent, i, true, true},
		{"other agent", otherAgent, user.RoleAgent, i, false, false},
		{"admin", stranger, user.RoleAdmin, i, true, true},
		{"stranger", stranger, user.RoleUser, i, false, false},
		{"stranger on anonymous inquiry", stranger, user.RoleUser, anonymous, false, false},
		{"listing agent on anonymous inquiry", agent, user.RoleAgent, anonymous, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.visible, tt.subject.VisibleTo(tt.actor, tt.role))
			assert.Equal(t, tt.manageable, tt.subject.ManageableBy(tt.actor, tt.role))
		})
	}
}
