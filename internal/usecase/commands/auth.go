package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"guri24/internal/domain/user"
	"guri24/internal/infra"
	"guri24/internal/pkg/clock"
	"guri24/internal/pkg/errs"
	"guri24/internal/pkg/password"
	"guri24/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials     = errs.New("invalid credentials")
	ErrUserInactive           = errs.New("user inactive")
	ErrEmailTaken             = errs.New("email already registered")
	ErrInvalidRegistration    = errs.New("invalid registration")
	ErrInvalidVerification    = errs.New("invalid verification token")
	ErrVerificationExpired    = errs.New("verification token expired")
	ErrTokenGeneration        = errs.New("token generation failed")
	ErrAuthenticationFailed   = errs.New("authentication failed")
	ErrRegistrationNotStored  = errs.New("registration could not be stored")
	ErrVerificationNotApplied = errs.New("verification could not be applied")
	ErrAlreadyVerified        = errs.New("email already verified")
	ErrInvalidResetToken      = errs.New("invalid reset token")
	ErrResetTokenExpired      = errs.New("reset token expired")
	ErrWeakPassword           = errs.New("password too weak")
	ErrMailNotQueued          = errs.New("mail could not be queued")
	ErrPasswordNotReset       = errs.New("password could not be reset")
)

// TokenIssuer is satisfied by *jwt.Service.
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
	Duration() time.Duration
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    *string
}

type RegisterResult struct {
	UserID uuid.UUID
	Email  string
}

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
	ExpiresIn   time.Duration
	ExpiresAt   time.Time
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*RegisterResult, error)
	VerifyEmail(ctx context.Context, token string) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ResendVerification(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		tokens: tokens,
		clock:  clk,
	}
}

// tokenMailPayload is the outbox body for verification and reset mails.
type tokenMailPayload struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRegistration)
	}
	name, err := user.NewName(in.Name)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRegistration)
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRegistration)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRegistration)
	}
	token, err := password.NewVerificationToken()
	if err != nil {
		return nil, errs.Mark(err, ErrRegistrationNotStored)
	}

	u := user.NewUser(email, name, in.Phone, hash, token, a.clock.Now())

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, derr := tx.Reads().EmailExists(ctx, email)
		if derr != nil {
			return derr
		}
		if exists {
			return ErrEmailTaken
		}

		if derr = tx.Users().Create(ctx, tx.DB(), u); derr != nil {
			return derr
		}

		return a.queueTokenMail(ctx, tx, shared.TopicEmailVerification, u, token, *u.VerificationExpires())
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			return nil, ErrEmailTaken
		case infra.IsKind(err, infra.KindDuplicateKey):
			// concurrent registration won the unique index
			return nil, errs.Mark(err, ErrEmailTaken)
		default:
			return nil, errs.Mark(err, ErrRegistrationNotStored)
		}
	}

	return &RegisterResult{UserID: u.ID(), Email: email.Value()}, nil
}

func (a *authCommandsImpl) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidVerification
	}

	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, derr := tx.Reads().UserByVerificationToken(ctx, token)
		if derr != nil {
			return derr
		}

		now := a.clock.Now()
		if derr = u.VerifyEmail(token, now); derr != nil {
			return derr
		}
		return tx.Users().MarkEmailVerified(ctx, tx.DB(), u.ID(), now)
	})
	if err == nil {
		return nil
	}

	switch {
	case infra.IsKind(err, infra.KindNotFound), errors.Is(err, user.ErrVerificationMismatch):
		return errs.Mark(err, ErrInvalidVerification)
	case errors.Is(err, user.ErrVerificationExpired):
		return errs.Mark(err, ErrVerificationExpired)
	default:
		return errs.Mark(err, ErrVerificationNotApplied)
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, rawEmail, rawPassword string) (*LoginResult, error) {
	u, err := a.authenticate(ctx, rawEmail, rawPassword)
	if err != nil {
		return nil, err
	}

	accessToken, err := a.tokens.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	now := a.clock.Now()
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), u.ID(), now)
	})
	if err != nil {
		// login already succeeded
		slog.Warn("failed to update last login", "user_id", u.ID().String(), "error", err.Error())
	}

	return &LoginResult{
		UserID:      u.ID(),
		AccessToken: accessToken,
		ExpiresIn:   a.tokens.Duration(),
		ExpiresAt:   now.Add(a.tokens.Duration()),
	}, nil
}

func (a *authCommandsImpl) authenticate(ctx context.Context, rawEmail, rawPassword string) (*user.User, error) {
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	u, err := a.uow.CommandReads().UserByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same answer as a wrong password to avoid account enumeration
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := password.ComparePassword(u.PasswordHash(), rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := u.CanSignIn(); err != nil {
		return nil, errs.Mark(err, ErrUserInactive)
	}

	return u, nil
}

// ResendVerification issues a fresh verification token. Unknown addresses
// succeed silently so the answer never reveals which emails are registered.
func (a *authCommandsImpl) ResendVerification(ctx context.Context, rawEmail string) error {
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return nil
	}
	token, err := password.NewVerificationToken()
	if err != nil {
		return errs.Mark(err, ErrMailNotQueued)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, derr := tx.Reads().UserByEmailForUpdate(ctx, email)
		if derr != nil {
			return derr
		}
		now := a.clock.Now()
		if derr = u.RenewVerification(token, now); derr != nil {
			return derr
		}
		if derr = tx.Users().SaveVerificationToken(ctx, tx.DB(), u); derr != nil {
			return derr
		}
		return a.queueTokenMail(ctx, tx, shared.TopicEmailVerification, u, token, *u.VerificationExpires())
	})
	switch {
	case err == nil, infra.IsKind(err, infra.KindNotFound):
		return nil
	case errors.Is(err, user.ErrAlreadyVerified):
		return errs.Mark(err, ErrAlreadyVerified)
	default:
		return errs.Mark(err, ErrMailNotQueued)
	}
}

// ForgotPassword queues a reset mail. Like ResendVerification it answers the
// same way whether or not the address is registered.
func (a *authCommandsImpl) ForgotPassword(ctx context.Context, rawEmail string) error {
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return nil
	}
	token, err := password.NewVerificationToken()
	if err != nil {
		return errs.Mark(err, ErrMailNotQueued)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, derr := tx.Reads().UserByEmailForUpdate(ctx, email)
		if derr != nil {
			return derr
		}
		if u.CanSignIn() != nil {
			slog.Info("password reset skipped for disabled account", "user_id", u.ID().String())
			return nil
		}
		u.IssueResetToken(token, a.clock.Now())
		if derr = tx.Users().SaveResetToken(ctx, tx.DB(), u); derr != nil {
			return derr
		}
		return a.queueTokenMail(ctx, tx, shared.TopicPasswordReset, u, token, *u.ResetExpires())
	})
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrMailNotQueued)
	}
	return nil
}

func (a *authCommandsImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return ErrInvalidResetToken
	}
	pw, err := user.NewPassword(newPassword)
	if err != nil {
		return errs.Mark(err, ErrWeakPassword)
	}
	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return errs.Mark(err, ErrPasswordNotReset)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, derr := tx.Reads().UserByResetToken(ctx, token)
		if derr != nil {
			return derr
		}
		if derr = u.ResetPassword(token, hash, a.clock.Now()); derr != nil {
			return derr
		}
		return tx.Users().SavePassword(ctx, tx.DB(), u)
	})
	if err == nil {
		return nil
	}

	switch {
	case infra.IsKind(err, infra.KindNotFound), errors.Is(err, user.ErrResetMismatch):
		return errs.Mark(err, ErrInvalidResetToken)
	case errors.Is(err, user.ErrResetExpired):
		return errs.Mark(err, ErrResetTokenExpired)
	default:
		return errs.Mark(err, ErrPasswordNotReset)
	}
}

func (a *authCommandsImpl) queueTokenMail(ctx context.Context, tx shared.Tx, topic string, u *user.User, token string, expires time.Time) error {
	payload, err := json.Marshal(tokenMailPayload{
		UserID:    u.ID(),
		Email:     u.Email().Value(),
		Name:      u.Name().Value(),
		Token:     token,
		ExpiresAt: expires,
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), topic, payload, u.UpdatedAt())
}
