//go:build unit

package jwt

import (
	"testing"
	"time"

	"guri24/internal/domain/user"
	"guri24/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	svc := NewService("secret", time.Hour, clk)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, user.RoleAgent)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "agent", claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestService_ValidateToken(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	svc := NewService("secret", time.Hour, clk)
	token, err := svc.GenerateToken(uuid.New(), user.RoleUser)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		later := clock.NewMockClock(clk.Now().Add(2 * time.Hour))
		_, err := NewService("secret", time.Hour, later).ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewService("other", time.Hour, clk).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
