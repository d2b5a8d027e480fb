//go:build unit || e2e

package builder

import (
	"time"

	"guri24/internal/domain/user"
	sqlc "guri24/internal/infra/sqlc/generated"
	"guri24/internal/pkg/pgconv"
	"guri24/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID            uuid.UUID
	Email         string
	Name          string
	PasswordHash  string
	Role          user.Role
	Status        user.Status
	EmailVerified bool
	Token         *string
	TokenExpires  *time.Time
	ResetToken    *string
	ResetExpires  *time.Time
	CreatedAt     time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:            uuid.New(),
		Email:         "guest@example.com",
		Name:          "Test Guest",
		PasswordHash:  "hashed_password",
		Role:          user.RoleUser,
		Status:        user.StatusActive,
		EmailVerified: true,
		CreatedAt:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() *user.User {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		panic(err)
	}
	name, err := user.NewName(u.Name)
	if err != nil {
		panic(err)
	}

	return user.Reconstruct(user.Snapshot{
		ID:                  u.ID,
		Email:               email,
		Name:                name,
		PasswordHash:        u.PasswordHash,
		Role:                u.Role,
		Status:              u.Status,
		EmailVerified:       u.EmailVerified,
		VerificationToken:   u.Token,
		VerificationExpires: u.TokenExpires,
		ResetToken:          u.ResetToken,
		ResetExpires:        u.ResetExpires,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.CreatedAt,
	})
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	return sqlc.Users{
		ID:                       u.ID,
		Email:                    u.Email,
		Name:                     u.Name,
		PasswordHash:             u.PasswordHash,
		Role:                     u.Role.String(),
		Status:                   u.Status.String(),
		EmailVerified:            u.EmailVerified,
		VerificationToken:        pgconv.StringPtrToPgtype(u.Token),
		VerificationTokenExpires: pgconv.TimestampPtrToPgtype(u.TokenExpires),
		LastLogin:                pgtype.Timestamp{},
		CreatedAt:                pgconv.TimestampToPgtype(u.CreatedAt),
		UpdatedAt:                pgconv.TimestampToPgtype(u.CreatedAt),
		ResetToken:               pgconv.StringPtrToPgtype(u.ResetToken),
		ResetTokenExpires:        pgconv.TimestampPtrToPgtype(u.ResetExpires),
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Role:          u.Role.String(),
		Status:        u.Status.String(),
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role user.Role) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithVerificationToken(token string, expires time.Time) *UserBuilder {
	u.Token = &token
	u.TokenExpires = &expires
	u.EmailVerified = false
	return u
}

func (u *UserBuilder) WithResetToken(token string, expires time.Time) *UserBuilder {
	u.ResetToken = &token
	u.ResetExpires = &expires
	return u
}

func (u *UserBuilder) AsUnverified() *UserBuilder {
	u.EmailVerified = false
	return u
}

func (u *UserBuilder) AsSuspended() *UserBuilder {
	u.Status = user.StatusSuspended
	return u
}
