package converter

import (
	"guri24/internal/domain/user"
	sqlc "guri24/internal/infra/sqlc/generated"
	"guri24/internal/pkg/pgconv"
)

func UserToInfra(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:                       u.ID(),
		Email:                    u.Email().Value(),
		Name:                     u.Name().Value(),
		Phone:                    pgconv.StringPtrToPgtype(u.Phone()),
		PasswordHash:             u.PasswordHash(),
		Role:                     u.Role().String(),
		Status:                   u.Status().String(),
		EmailVerified:            u.EmailVerified(),
		VerificationToken:        pgconv.StringPtrToPgtype(u.VerificationToken()),
		VerificationTokenExpires: pgconv.TimestampPtrToPgtype(u.VerificationExpires()),
		CreatedAt:                pgconv.TimestampToPgtype(u.CreatedAt()),
		UpdatedAt:                pgconv.TimestampToPgtype(u.UpdatedAt()),
	}
}

// UserToDomain trusts stored values; CHECK constraints keep role and status valid.
func UserToDomain(row sqlc.Users) *user.User {
	email, _ := user.NewEmail(row.Email)
	name, _ := user.NewName(row.Name)
	return user.Reconstruct(user.Snapshot{
		ID:                  row.ID,
		Email:               email,
		Name:                name,
		Phone:               pgconv.StringPtrFromPgtype(row.Phone),
		PasswordHash:        row.PasswordHash,
		Role:                user.Role(row.Role),
		Status:              user.Status(row.Status),
		EmailVerified:       row.EmailVerified,
		VerificationToken:   pgconv.StringPtrFromPgtype(row.VerificationToken),
		VerificationExpires: pgconv.TimestampPtrFromPgtype(row.VerificationTokenExpires),
		ResetToken:          pgconv.StringPtrFromPgtype(row.ResetToken),
		ResetExpires:        pgconv.TimestampPtrFromPgtype(row.ResetTokenExpires),
		LastLogin:           pgconv.TimestampPtrFromPgtype(row.LastLogin),
		CreatedAt:           pgconv.TimestampFromPgtype(row.CreatedAt),
		UpdatedAt:           pgconv.TimestampFromPgtype(row.UpdatedAt),
	})
}
