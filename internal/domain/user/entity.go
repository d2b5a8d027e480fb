package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	VerificationTTL = 24 * time.Hour
	ResetTTL        = time.Hour
)

var (
	ErrAccountDisabled      = errors.New("account is suspended or banned")
	ErrVerificationMismatch = errors.New("verification token does not match")
	ErrVerificationExpired  = errors.New("verification token has expired")
	ErrAlreadyVerified      = errors.New("email is already verified")
	ErrResetMismatch        = errors.New("reset token does not match")
	ErrResetExpired         = errors.New("reset token has expired")
)

type User struct {
	id                  uuid.UUID
	email               Email
	name                Name
	phone               *string
	passwordHash        string
	role                Role
	status              Status
	emailVerified       bool
	verificationToken   *string
	verificationExpires *time.Time
	resetToken          *string
	resetExpires        *time.Time
	lastLogin           *time.Time
	createdAt           time.Time
	updatedAt           time.Time
}

// NewUser registers an active, unverified account holding a pending verification token.
func NewUser(email Email, name Name, phone *string, passwordHash string, verificationToken string, now time.Time) *User {
	expires := now.Add(VerificationTTL)
	return &User{
		id:                  uuid.New(),
		email:               email,
		name:                name,
		phone:               phone,
		passwordHash:        passwordHash,
		role:                RoleUser,
		status:              StatusActive,
		verificationToken:   &verificationToken,
		verificationExpires: &expires,
		createdAt:           now,
		updatedAt:           now,
	}
}

type Snapshot struct {
	ID                  uuid.UUID
	Email               Email
	Name                Name
	Phone               *string
	PasswordHash        string
	Role                Role
	Status              Status
	EmailVerified       bool
	VerificationToken   *string
	VerificationExpires *time.Time
	ResetToken          *string
	ResetExpires        *time.Time
	LastLogin           *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func Reconstruct(s Snapshot) *User {
	return &User{
		id:                  s.ID,
		email:               s.Email,
		name:                s.Name,
		phone:               s.Phone,
		passwordHash:        s.PasswordHash,
		role:                s.Role,
		status:              s.Status,
		emailVerified:       s.EmailVerified,
		verificationToken:   s.VerificationToken,
		verificationExpires: s.VerificationExpires,
		resetToken:          s.ResetToken,
		resetExpires:        s.ResetExpires,
		lastLogin:           s.LastLogin,
		createdAt:           s.CreatedAt,
		updatedAt:           s.UpdatedAt,
	}
}

func (u *User) CanSignIn() error {
	if u.status != StatusActive {
		return ErrAccountDisabled
	}
	return nil
}

// CanBook requires an active account with a verified email.
func (u *User) CanBook() bool {
	return u.status == StatusActive && u.emailVerified
}

func (u *User) VerifyEmail(token string, now time.Time) error {
	if u.verificationToken == nil || *u.verificationToken != token {
		return ErrVerificationMismatch
	}
	if u.verificationExpires == nil || now.After(*u.verificationExpires) {
		return ErrVerificationExpired
	}
	u.emailVerified = true
	u.verificationToken = nil
	u.verificationExpires = nil
	u.updatedAt = now
	return nil
}

// RenewVerification replaces any pending verification token with a fresh one.
func (u *User) RenewVerification(token string, now time.Time) error {
	if u.emailVerified {
		return ErrAlreadyVerified
	}
	expires := now.Add(VerificationTTL)
	u.verificationToken = &token
	u.verificationExpires = &expires
	u.updatedAt = now
	return nil
}

func (u *User) IssueResetToken(token string, now time.Time) {
	expires := now.Add(ResetTTL)
	u.resetToken = &token
	u.resetExpires = &expires
	u.updatedAt = now
}

// ResetPassword consumes the reset token and swaps in the new hash.
func (u *User) ResetPassword(token, passwordHash string, now time.Time) error {
	if u.resetToken == nil || *u.resetToken != token {
		return ErrResetMismatch
	}
	if u.resetExpires == nil || now.After(*u.resetExpires) {
		return ErrResetExpired
	}
	u.passwordHash = passwordHash
	u.resetToken = nil
	u.resetExpires = nil
	u.updatedAt = now
	return nil
}

func (u *User) RecordLogin(now time.Time) {
	u.lastLogin = &now
	u.updatedAt = now
}

func (u *User) ID() uuid.UUID                   { return u.id }
func (u *User) Email() Email                    { return u.email }
func (u *User) Name() Name                      { return u.name }
func (u *User) Phone() *string                  { return u.phone }
func (u *User) PasswordHash() string            { return u.passwordHash }
func (u *User) Role() Role                      { return u.role }
func (u *User) Status() Status                  { return u.status }
func (u *User) EmailVerified() bool             { return u.emailVerified }
func (u *User) VerificationToken() *string      { return u.verificationToken }
func (u *User) VerificationExpires() *time.Time { return u.verificationExpires }
func (u *User) ResetToken() *string             { return u.resetToken }
func (u *User) ResetExpires() *time.Time        { return u.resetExpires }
func (u *User) LastLogin() *time.Time           { return u.lastLogin }
func (u *User) CreatedAt() time.Time            { return u.createdAt }
func (u *User) UpdatedAt() time.Time            { return u.updatedAt }
