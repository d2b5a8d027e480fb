package repository

import (
	"context"
	"time"

	"guri24/internal/infra"
	sqlc "guri24/internal/infra/sqlc/generated"
	"guri24/internal/pkg/pgconv"
	"guri24/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const maxLastErrorLen = 1000

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.ClaimDueNotificationJobsRow, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobSentParams) error
	RescheduleNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.RescheduleNotificationJobParams) error
	MarkNotificationJobFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobFailedParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		ID:            uuid.New(),
		Topic:         topic,
		Payload:       payload,
		NextAttemptAt: pgconv.TimestampToPgtype(runAt),
		CreatedAt:     pgconv.TimestampToPgtype(runAt),
	}

	if err := r.queries.CreateNotificationJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// ClaimDue row-locks up to limit due jobs; concurrent relays skip each other's rows.
func (r *NotificationRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, tx, sqlc.ClaimDueNotificationJobsParams{
		NextAttemptAt: pgconv.TimestampToPgtype(now),
		Limit:         int32(limit), // #nosec G115 -- configured batch size
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.NotificationJob{
			ID:       row.ID,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: int(row.Attempts),
		}
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, at time.Time) error {
	err := r.queries.MarkNotificationJobSent(ctx, tx, sqlc.MarkNotificationJobSentParams{
		ID:        id,
		UpdatedAt: pgconv.TimestampToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (r *NotificationRepository) Reschedule(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, next, at time.Time) error {
	err := r.queries.RescheduleNotificationJob(ctx, tx, sqlc.RescheduleNotificationJobParams{
		ID:            id,
		LastError:     lastError(lastErr),
		NextAttemptAt: pgconv.TimestampToPgtype(next),
		UpdatedAt:     pgconv.TimestampToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule notification job", err)
	}
	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, at time.Time) error {
	err := r.queries.MarkNotificationJobFailed(ctx, tx, sqlc.MarkNotificationJobFailedParams{
		ID:        id,
		LastError: lastError(lastErr),
		UpdatedAt: pgconv.TimestampToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}

func lastError(s string) pgtype.Text {
	if len(s) > maxLastErrorLen {
		s = s[:maxLastErrorLen]
	}
	return pgtype.Text{String: s, Valid: s != ""}
}
