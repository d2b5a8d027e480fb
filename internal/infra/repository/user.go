package repository

import (
	"context"
	"time"

	"guri24/internal/domain/user"
	"guri24/internal/infra"
	"guri24/internal/infra/repository/converter"
	sqlc "guri24/internal/infra/sqlc/generated"
	"guri24/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserLastLoginParams) error
	MarkUserEmailVerified(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkUserEmailVerifiedParams) error
	SetUserVerificationToken(ctx context.Context, db sqlc.DBTX, arg sqlc.SetUserVerificationTokenParams) error
	SetUserResetToken(ctx context.Context, db sqlc.DBTX, arg sqlc.SetUserResetTokenParams) error
	ResetUserPassword(ctx context.Context, db sqlc.DBTX, arg sqlc.ResetUserPasswordParams) error
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	if err := r.queries.CreateUser(ctx, tx, converter.UserToInfra(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, at time.Time) error {
	err := r.queries.UpdateUserLastLogin(ctx, tx, sqlc.UpdateUserLastLoginParams{
		ID:        userID,
		LastLogin: pgconv.TimestampToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) MarkEmailVerified(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, at time.Time) error {
	err := r.queries.MarkUserEmailVerified(ctx, tx, sqlc.MarkUserEmailVerifiedParams{
		ID:        userID,
		UpdatedAt: pgconv.TimestampToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark email verified", err)
	}
	return nil
}

func (r *UserRepository) SaveVerificationToken(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	err := r.queries.SetUserVerificationToken(ctx, tx, sqlc.SetUserVerificationTokenParams{
		ID:                       u.ID(),
		VerificationToken:        pgconv.StringPtrToPgtype(u.VerificationToken()),
		VerificationTokenExpires: pgconv.TimestampPtrToPgtype(u.VerificationExpires()),
		UpdatedAt:                pgconv.TimestampToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to store verification token", err)
	}
	return nil
}

func (r *UserRepository) SaveResetToken(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	err := r.queries.SetUserResetToken(ctx, tx, sqlc.SetUserResetTokenParams{
		ID:                u.ID(),
		ResetToken:        pgconv.StringPtrToPgtype(u.ResetToken()),
		ResetTokenExpires: pgconv.TimestampPtrToPgtype(u.ResetExpires()),
		UpdatedAt:         pgconv.TimestampToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to store reset token", err)
	}
	return nil
}

// SavePassword stores the new hash and clears the consumed reset token.
func (r *UserRepository) SavePassword(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	err := r.queries.ResetUserPassword(ctx, tx, sqlc.ResetUserPasswordParams{
		ID:           u.ID(),
		PasswordHash: u.PasswordHash(),
		UpdatedAt:    pgconv.TimestampToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to reset password", err)
	}
	return nil
}
