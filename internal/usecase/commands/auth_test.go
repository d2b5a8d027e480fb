//go:build unit

package commands

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"guri24/internal/domain/user"
	"guri24/internal/pkg/clock"
	"guri24/internal/pkg/password"
	"guri24/internal/testutil/builder"
	"guri24/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID uuid.UUID, role user.Role) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) Duration() time.Duration {
	return time.Hour
}

func newAuthFixture(t *testing.T) (*memoryStore, *clock.MockClock, *MockTokenIssuer, AuthCommands) {
	t.Helper()
	store := newMemoryStore()
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	tokens := new(MockTokenIssuer)
	return store, clk, tokens, NewAuthCommands(newMemoryUoW(store), tokens, clk)
}

func TestRegister(t *testing.T) {
	t.Run("creates an unverified user and queues the verification mail", func(t *testing.T) {
		store, _, _, uc := newAuthFixture(t)

		res, err := uc.Register(context.Background(), RegisterInput{
			Email:    "Guest@Example.com",
			Password: "correct-horse",
			Name:     "Guest One",
		})

		require.NoError(t, err)
		assert.Equal(t, "guest@example.com", res.Email)

		u := store.users[res.UserID]
		require.NotNil(t, u)
		assert.False(t, u.EmailVerified())
		assert.Equal(t, user.RoleUser, u.Role())
		assert.NoError(t, password.ComparePassword(u.PasswordHash(), "correct-horse"))

		require.Equal(t, []string{shared.TopicEmailVerification}, store.outboxTopics())
		var payload tokenMailPayload
		require.NoError(t, json.Unmarshal(store.outbox[0].Payload, &payload))
		assert.Equal(t, *u.VerificationToken(), payload.Token)
		assert.Equal(t, u.CreatedAt().Add(user.VerificationTTL), payload.ExpiresAt)
	})

	t.Run("duplicate email", func(t *testing.T) {
		store, _, _, uc := newAuthFixture(t)
		store.addUser(builder.NewUserBuilder().WithEmail("guest@example.com").BuildDomain())

		_, err := uc.Register(context.Background(), RegisterInput{
			Email:    "guest@example.com",
			Password: "correct-horse",
			Name:     "Guest Two",
		})

		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Empty(t, store.outboxTopics())
	})

	t.Run("validation", func(t *testing.T) {
		_, _, _, uc := newAuthFixture(t)
		for name, in := range map[string]RegisterInput{
			"bad email":      {Email: "nope", Password: "correct-horse", Name: "Guest"},
			"short password": {Email: "a@b.io", Password: "short", Name: "Guest"},
			"short name":     {Email: "a@b.io", Password: "correct-horse", Name: "G"},
		} {
			_, err := uc.Register(context.Background(), in)
			assert.ErrorIs(t, err, ErrInvalidRegistration, name)
		}
	})
}

func TestVerifyEmail(t *testing.T) {
	t.Run("marks the user verified", func(t *testing.T) {
		store, clk, _, uc := newAuthFixture(t)
		u := builder.NewUserBuilder().WithVerificationToken("tok", clk.Now().Add(time.Hour)).BuildDomain()
		store.addUser(u)

		require.NoError(t, uc.VerifyEmail(context.Background(), "tok"))

		assert.True(t, store.users[u.ID()].EmailVerified())
		assert.Nil(t, store.users[u.ID()].VerificationToken())
	})

	t.Run("expired token", func(t *testing.T) {
		store, clk, _, uc := newAuthFixture(t)
		u := builder.NewUserBuilder().WithVerificationToken("tok", clk.Now().Add(-time.Minute)).BuildDomain()
		store.addUser(u)

		err := uc.VerifyEmail(context.Background(), "tok")

		assert.ErrorIs(t, err, ErrVerificationExpired)
		assert.False(t, store.users[u.ID()].EmailVerified())
	})

	t.Run("unknown token", func(t *testing.T) {
		_, _, _, uc := newAuthFixture(t)

		assert.ErrorIs(t, uc.VerifyEmail(context.Background(), "missing"), ErrInvalidVerification)
		assert.ErrorIs(t, uc.VerifyEmail(context.Background(), ""), ErrInvalidVerification)
	})
}

func TestLogin(t *testing.T) {
	hash, err := password.HashPassword("correct-horse")
	require.NoError(t, err)

	t.Run("issues a token and records the login", func(t *testing.T) {
		store, clk, tokens, uc := newAuthFixture(t)
		u := builder.NewUserBuilder().WithPasswordHash(hash).BuildDomain()
		store.addUser(u)
		tokens.On("GenerateToken", u.ID(), user.RoleUser).Return("signed.jwt", nil)

		res, err := uc.Login(context.Background(), "GUEST@example.com", "correct-horse")

		require.NoError(t, err)
		assert.Equal(t, "signed.jwt", res.AccessToken)
		assert.Equal(t, clk.Now().Add(time.Hour), res.ExpiresAt)
		require.NotNil(t, store.users[u.ID()].LastLogin())
		assert.Equal(t, clk.Now(), *store.users[u.ID()].LastLogin())
		tokens.AssertExpectations(t)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		store, _, _, uc := newAuthFixture(t)
		store.addUser(builder.NewUserBuilder().WithPasswordHash(hash).BuildDomain())

		_, err := uc.Login(context.Background(), "guest@example.com", "wrong-horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = uc.Login(context.Background(), "nobody@example.com", "correct-horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("suspended account", func(t *testing.T) {
		store, _, _, uc := newAuthFixture(t)
		store.addUser(builder.NewUserBuilder().WithPasswordHash(hash).AsSuspended().BuildDomain())

		_, err := uc.Login(context.Background(), "guest@example.com", "correct-horse")

		assert.ErrorIs(t, err, ErrUserInactive)
	})
}

func TestResendVerification(t *testing.T) {
	t.Run("replaces the token and queues a new mail", func(t *testing.T) {
		store, clk, _, uc := newAuthFixture(t)
		u := builder.NewUserBuilder().WithVerificationToken("old", clk.Now().Add(-time.Hour)).BuildDomain()
		store.addUser(u)

		require.NoError(t, uc.ResendVerification(context.Background(), "Guest@Example.com"))

		stored := store.users[u.ID()]
		require.NotNil(t, stored.VerificationToken())
		assert.NotEqual(t, "old", *stored.VerificationToken())
		assert.Equal(t, clk.Now().Add(user.VerificationTTL), *stored.VerificationExpires())
		require.Equal(t, []string{shared.TopicEmailVerification}, store.outboxTopics())
		var payload tokenMailPayload
		require.NoError(t, json.Unmarshal(store.outbox[0].Payload, &payload))
		assert.Equal(t, *stored.VerificationToken(), payload.Token)

		require.NoError(t, uc.VerifyEmail(context.Background(), payload.Token))
		assert.ErrorIs(t, uc.VerifyEmail(context.Background(), "old"), ErrInvalidVerification)
	})

	t.Run("unknown or malformed address answers success without mail", func(t *testing.T) {
		store, _, _, uc := newAuthFixture(t)

		assert.NoError(t, uc.ResendVerification(context.Background(), "nobody@example.com"))
		assert.NoError(t, uc.ResendVerification(context.Background(), "not-an-email"))
		assert.Empty(t, store.outboxTopics())
	})

	t.Run("already verified", func(t *testing.T) {
		store, _, _, uc := newAuthFixture(t)
		store.addUser(builder.NewUserBuilder().BuildDomain())

		err := uc.ResendVerification(context.Background(), "guest@example.com")

		assert.ErrorIs(t, err, ErrAlreadyVerified)
		assert.Empty(t, store.outboxTopics())
	})
}

func TestForgotAndResetPassword(t *testing.T) {
	hash, err := password.HashPassword("correct-horse")
	require.NoError(t, err)

	t.Run("reset mail then new password", func(t *testing.T) {
		store, clk, tokens, uc := newAuthFixture(t)
		u := builder.NewUserBuilder().WithPasswordHash(hash).BuildDomain()
		store.addUser(u)

		require.NoError(t, uc.ForgotPassword(context.Background(), "guest@example.com"))

		require.Equal(t, []string{shared.TopicPasswordReset}, store.outboxTopics())
		var payload tokenMailPayload
		require.NoError(t, json.Unmarshal(store.outbox[0].Payload, &payload))
		assert.Equal(t, clk.Now().Add(user.ResetTTL), payload.ExpiresAt)

		clk.Add(30 * time.Minute)
		require.NoError(t, uc.ResetPassword(context.Background(), payload.Token, "battery-staple"))

		stored := store.users[u.ID()]
		assert.Nil(t, stored.ResetToken())
		assert.NoError(t, password.ComparePassword(stored.PasswordHash(), "battery-staple"))

		tokens.On("GenerateToken", u.ID(), user.RoleUser).Return("signed.jwt", nil)
		_, err := uc.Login(context.Background(), "guest@example.com", "battery-staple")
		require.NoError(t, err)
		_, err = uc.Login(context.Background(), "guest@example.com", "correct-horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		assert.ErrorIs(t, uc.ResetPassword(context.Background(), payload.Token, "another-one"), ErrInvalidResetToken)
	})

	t.Run("unknown address answers success without mail", func(t *testing.T) {
		store, _, _, uc := newAuthFixture(t)

		require.NoError(t, uc.ForgotPassword(context.Background(), "nobody@example.com"))
		assert.Empty(t, store.outboxTopics())
	})

	t.Run("disabled account gets no mail", func(t *testing.T) {
		store, _, _, uc := newAuthFixture(t)
		store.addUser(builder.NewUserBuilder().AsSuspended().BuildDomain())

		require.NoError(t, uc.ForgotPassword(context.Background(), "guest@example.com"))
		assert.Empty(t, store.outboxTopics())
	})

	tests := []struct {
		name     string
		token    string
		password string
		expires  time.Duration
		errIs    error
	}{
		{"expired token", "reset", "battery-staple", -time.Second, ErrResetTokenExpired},
		{"unknown token", "other", "battery-staple", time.Hour, ErrInvalidResetToken},
		{"empty token", "", "battery-staple", time.Hour, ErrInvalidResetToken},
		{"weak password", "reset", "short", time.Hour, ErrWeakPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, clk, _, uc := newAuthFixture(t)
			u := builder.NewUserBuilder().WithPasswordHash(hash).WithResetToken("reset", clk.Now().Add(tt.expires)).BuildDomain()
			store.addUser(u)

			err := uc.ResetPassword(context.Background(), tt.token, tt.password)

			assert.ErrorIs(t, err, tt.errIs)
			assert.Equal(t, hash, store.users[u.ID()].PasswordHash())
			assert.NotNil(t, store.users[u.ID()].ResetToken())
		})
	}
}
