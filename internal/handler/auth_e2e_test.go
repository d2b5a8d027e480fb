//go:build e2e

package handler_test

import (
	"context"
	"net/http"
	"testing"

	reqdto "guri24/internal/handler/dto/request"
	resdto "guri24/internal/handler/dto/response"
	"guri24/internal/testutil/dbtest"
	"guri24/internal/testutil/e2e"
	"guri24/internal/testutil/httptest"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestRegistrationFlow() {
	s.Run("register, verify, login, me, logout", func() {
		reg := reqdto.RegisterRequest{Email: "Ana@Example.com", Password: "correct-horse", Name: "Ana Lima"}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/register", reg, "")
		var registered resdto.RegisterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &registered)
		s.Equal("ana@example.com", registered.Email)
		s.Equal(1, dbtest.CountJobs(s.T(), s.DB, "email_verification"))

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/register", reg, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")

		var token string
		err := s.DB.QueryRow(context.Background(),
			"SELECT verification_token FROM users WHERE id = $1", registered.UserID).Scan(&token)
		require.NoError(s.T(), err)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/verify-email", reqdto.VerifyEmailRequest{Token: token}, "")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/verify-email", reqdto.VerifyEmailRequest{Token: token}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")

		login := reqdto.LoginRequest{Email: "ana@example.com", Password: "correct-horse"}
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login", login, "")
		var session resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &session)
		s.Require().NotNil(session.User)
		s.True(session.User.EmailVerified)
		cookie := httptest.ExtractCookie(rec, "access_token")
		s.Require().NotNil(cookie)

		rec = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet, "/api/auth/me", nil, []*http.Cookie{cookie}, "")
		var me resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &me)
		s.Equal(registered.UserID, me.ID)
		s.NotNil(me.LastLogin)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/logout", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("wrong password", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "guest@example.com", "user")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			reqdto.LoginRequest{Email: "guest@example.com", Password: "nope"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *authSuite) TestPasswordReset() {
	s.Run("forgot, reset, login with the new password", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "guest@example.com", "user")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/forgot-password",
			reqdto.EmailRequest{Email: "guest@example.com"}, "")
		s.Equal(http.StatusAccepted, rec.Code, rec.Body.String())
		s.Equal(1, dbtest.CountJobs(s.T(), s.DB, "password_reset"))

		var token string
		err := s.DB.QueryRow(context.Background(),
			"SELECT reset_token FROM users WHERE email = $1", "guest@example.com").Scan(&token)
		require.NoError(s.T(), err)

		reset := reqdto.ResetPasswordRequest{Token: token, NewPassword: "brand-new-secret"}
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/reset-password", reset, "")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/reset-password", reset, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reset token")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			reqdto.LoginRequest{Email: "guest@example.com", Password: dbtest.TestPassword}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			reqdto.LoginRequest{Email: "guest@example.com", Password: "brand-new-secret"}, "")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("unknown email is accepted without queueing mail", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/forgot-password",
			reqdto.EmailRequest{Email: "nobody@example.com"}, "")

		s.Equal(http.StatusAccepted, rec.Code)
		s.Equal(0, dbtest.CountJobs(s.T(), s.DB, "password_reset"))
	})

	s.Run("resend verification to a verified account", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "guest@example.com", "user")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/resend-verification",
			reqdto.EmailRequest{Email: "guest@example.com"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already verified")
	})
}
