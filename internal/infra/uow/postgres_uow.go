package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"guri24/internal/domain/inquiry"
	"guri24/internal/domain/property"
	"guri24/internal/domain/user"
	"guri24/internal/infra"
	"guri24/internal/infra/repository"
	"guri24/internal/infra/repository/converter"
	sqlc "guri24/internal/infra/sqlc/generated"
	"guri24/internal/pkg/errs"
	"guri24/internal/pkg/pgconv"
	"guri24/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	bookingRepo      shared.BookingRepository
	propertyRepo     shared.PropertyRepository
	userRepo         shared.UserRepository
	inquiryRepo      shared.InquiryRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q)
	}
	return t.bookingRepo
}

func (t *pgTx) Properties() shared.PropertyRepository {
	if t.propertyRepo == nil {
		t.propertyRepo = repository.NewPropertyRepository(t.uow.q)
	}
	return t.propertyRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) Inquiries() shared.InquiryRepository {
	if t.inquiryRepo == nil {
		t.inquiryRepo = repository.NewInquiryRepository(t.uow.q)
	}
	return t.inquiryRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

// commandReads loads the write-side snapshots. Inside a Tx it reads through the
// transaction, so a verification token lookup holds its row lock until commit.
type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX
}

func (r *commandReads) PropertyForAdmission(ctx context.Context, id uuid.UUID) (*shared.PropertySnapshot, error) {
	row, err := r.uow.q.GetPropertyAdmissionSpec(ctx, r.dbtx, id)
	if err != nil {
		return nil, notFoundOr("property", err)
	}

	rate, err := converter.MoneyFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid property price", err)
	}
	purpose, err := property.NewPurpose(row.Purpose)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid property purpose", err)
	}

	return &shared.PropertySnapshot{
		ID:          row.ID,
		Purpose:     purpose,
		NightlyRate: rate,
	}, nil
}

func (r *commandReads) PropertyForUpdate(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	row, err := r.uow.q.GetPropertyForUpdate(ctx, r.dbtx, id)
	if err != nil {
		return nil, notFoundOr("property", err)
	}
	p, err := converter.PropertyToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored property", err)
	}
	return p, nil
}

func (r *commandReads) PropertyOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	row, err := r.uow.q.GetPropertyOwner(ctx, r.dbtx, id)
	if err != nil {
		return uuid.Nil, notFoundOr("property", err)
	}
	return row.AgentID, nil
}

func (r *commandReads) SlugExists(ctx context.Context, slug string) (bool, error) {
	exists, err := r.uow.q.SlugExists(ctx, r.dbtx, slug)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slug", err)
	}
	return exists, nil
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.uow.q.GetUserByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, notFoundOr("user", err)
	}
	return converter.UserToDomain(row), nil
}

func (r *commandReads) UserByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	row, err := r.uow.q.GetUserByEmail(ctx, r.dbtx, email.Value())
	if err != nil {
		return nil, notFoundOr("user", err)
	}
	return converter.UserToDomain(row), nil
}

func (r *commandReads) UserByEmailForUpdate(ctx context.Context, email user.Email) (*user.User, error) {
	row, err := r.uow.q.GetUserByEmailForUpdate(ctx, r.dbtx, email.Value())
	if err != nil {
		return nil, notFoundOr("user", err)
	}
	return converter.UserToDomain(row), nil
}

func (r *commandReads) UserByResetToken(ctx context.Context, token string) (*user.User, error) {
	row, err := r.uow.q.GetUserByResetToken(ctx, r.dbtx, pgconv.StringToPgtype(token))
	if err != nil {
		return nil, notFoundOr("user", err)
	}
	return converter.UserToDomain(row), nil
}

func (r *commandReads) InquiryForUpdate(ctx context.Context, id uuid.UUID) (*inquiry.Inquiry, error) {
	row, err := r.uow.q.GetInquiryForUpdate(ctx, r.dbtx, id)
	if err != nil {
		return nil, notFoundOr("inquiry", err)
	}
	return converter.InquiryToDomain(row), nil
}

func (r *commandReads) UserByVerificationToken(ctx context.Context, token string) (*user.User, error) {
	row, err := r.uow.q.GetUserByVerificationToken(ctx, r.dbtx, pgconv.StringToPgtype(token))
	if err != nil {
		return nil, notFoundOr("user", err)
	}
	return converter.UserToDomain(row), nil
}

func (r *commandReads) EmailExists(ctx context.Context, email user.Email) (bool, error) {
	exists, err := r.uow.q.EmailExists(ctx, r.dbtx, email.Value())
	if err != nil {
		return false, infra.WrapRepoErr("failed to check email", err)
	}
	return exists, nil
}

func notFoundOr(entity string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(entity+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to load "+entity, err)
}
