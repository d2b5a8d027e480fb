package shared

import (
	"context"
	"time"

	"guri24/internal/domain/booking"
	"guri24/internal/domain/inquiry"
	"guri24/internal/domain/property"
	"guri24/internal/domain/user"
	sqlc "guri24/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Properties() PropertyRepository
	Users() UserRepository
	Inquiries() InquiryRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	PropertyForAdmission(ctx context.Context, id uuid.UUID) (*PropertySnapshot, error)
	// PropertyForUpdate locks the listing row until the transaction ends.
	PropertyForUpdate(ctx context.Context, id uuid.UUID) (*property.Property, error)
	// PropertyOwner returns the agent that owns the listing.
	PropertyOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UserByEmail(ctx context.Context, email user.Email) (*user.User, error)
	UserByEmailForUpdate(ctx context.Context, email user.Email) (*user.User, error)
	UserByVerificationToken(ctx context.Context, token string) (*user.User, error)
	UserByResetToken(ctx context.Context, token string) (*user.User, error)
	EmailExists(ctx context.Context, email user.Email) (bool, error)
	InquiryForUpdate(ctx context.Context, id uuid.UUID) (*inquiry.Inquiry, error)
}

type BookingRepository interface {
	// LockProperty serializes admissions for one property until the transaction ends.
	LockProperty(ctx context.Context, tx sqlc.DBTX, propertyID uuid.UUID) error
	ConfirmedOverlapping(ctx context.Context, tx sqlc.DBTX, propertyID uuid.UUID, stay booking.Stay) ([]booking.Stay, error)
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}

type PropertyRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *property.Property) error
	Update(ctx context.Context, tx sqlc.DBTX, p *property.Property) error
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, p *property.Property) error
	IncrementViews(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, at time.Time) error
	MarkEmailVerified(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, at time.Time) error
	SaveVerificationToken(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	SaveResetToken(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	SavePassword(ctx context.Context, tx sqlc.DBTX, u *user.User) error
}

type InquiryRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, i *inquiry.Inquiry) error
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, i *inquiry.Inquiry) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error
	Reschedule(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, next, at time.Time) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, at time.Time) error
}
