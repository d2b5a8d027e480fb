package api

import (
	"errors"
	"net/http"

	reqdto "guri24/internal/handler/dto/request"
	resdto "guri24/internal/handler/dto/response"
	"guri24/internal/handler/httperr"
	"guri24/internal/handler/middleware"
	"guri24/internal/handler/validation"
	"guri24/internal/pkg/config"
	"guri24/internal/pkg/cookie"
	"guri24/internal/usecase/commands"
	"guri24/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds commands.AuthCommands
	q    queries.UserQueries
	cfg  config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{cmds: cmds, q: q, cfg: cfg}
}

// @Summary Register
// @Description Create an account. A verification link is mailed to the address.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration"
// @Success 201 {object} resdto.RegisterResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", validation.Describe(err))
		return
	}

	res, err := h.cmds.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email is already registered", nil)
		case errors.Is(err, commands.ErrInvalidRegistration):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid registration data", nil)
		default:
			httperr.Unavailable(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.RegisterResponse{
		UserID:  res.UserID,
		Email:   res.Email,
		Message: "Registration successful. Check your email to verify your account.",
	})
}

// @Summary Verify email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyEmailRequest true "Verification token"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req reqdto.VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", validation.Describe(err))
		return
	}

	if err := h.cmds.VerifyEmail(c.Request.Context(), req.Token); err != nil {
		switch {
		case errors.Is(err, commands.ErrVerificationExpired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Verification token has expired", nil)
		case errors.Is(err, commands.ErrInvalidVerification):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid verification token", nil)
		default:
			httperr.Unavailable(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Email verified"})
}

// @Summary Resend verification email
// @Description Always answers 202 for unknown addresses so registration cannot be enumerated.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.EmailRequest true "Account email"
// @Success 202 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/resend-verification [post]
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var req reqdto.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", validation.Describe(err))
		return
	}

	if err := h.cmds.ResendVerification(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, commands.ErrAlreadyVerified) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Email is already verified", nil)
			return
		}
		httperr.Unavailable(c, err)
		return
	}

	c.JSON(http.StatusAccepted, resdto.MessageResponse{Message: "If the account exists, a verification email is on its way."})
}

// @Summary Forgot password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.EmailRequest true "Account email"
// @Success 202 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req reqdto.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", validation.Describe(err))
		return
	}

	if err := h.cmds.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		httperr.Unavailable(c, err)
		return
	}

	c.JSON(http.StatusAccepted, resdto.MessageResponse{Message: "If the account exists, a reset link is on its way."})
}

// @Summary Reset password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req reqdto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", validation.Describe(err))
		return
	}

	if err := h.cmds.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidResetToken):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reset token", nil)
		case errors.Is(err, commands.ErrResetTokenExpired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Reset token has expired", nil)
		case errors.Is(err, commands.ErrWeakPassword):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Password does not meet requirements", nil)
		default:
			httperr.Unavailable(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Password has been reset"})
}

// @Summary User login
// @Description Login with email and password. The token is also set as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", validation.Describe(err))
		return
	}

	res, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errors.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.Unavailable(c, err)
		}
		return
	}

	current, err := h.q.GetCurrentUser(c.Request.Context(), res.UserID)
	if err != nil {
		httperr.Unavailable(c, err)
		return
	}
	user, err := resdto.FromUserView(current)
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cfg.Cookie, res.AccessToken, res.ExpiresIn)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: res.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   res.ExpiresAt,
		User:        user,
	})
}

// @Summary User logout
// @Description Clears the access token cookie. Tokens are stateless and expire on their own.
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, middleware.ErrUnauthenticated, "User not authenticated", nil)
		return
	}

	view, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errors.Is(err, queries.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.Unavailable(c, err)
		}
		return
	}

	res, err := resdto.FromUserView(view)
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
