//go:build unit

package relay

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlc "guri24/internal/infra/sqlc/generated"
	"guri24/internal/pkg/clock"
	"guri24/internal/pkg/config"
	"guri24/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type jobState struct {
	status   string
	attempts int
	next     time.Time
	lastErr  string
}

type fakeNotifications struct {
	queue    []shared.NotificationJob
	state    map[uuid.UUID]*jobState
	claimErr error
}

func (f *fakeNotifications) CreateJob(context.Context, sqlc.DBTX, string, []byte, time.Time) error {
	return nil
}

func (f *fakeNotifications) ClaimDue(_ context.Context, _ sqlc.DBTX, _ time.Time, limit int) ([]shared.NotificationJob, error) {
	if f.claimErr != nil {
		return nil, f.claimErr
	}
	n := min(limit, len(f.queue))
	return f.queue[:n], nil
}

func (f *fakeNotifications) MarkSent(_ context.Context, _ sqlc.DBTX, id uuid.UUID, _ time.Time) error {
	f.state[id] = &jobState{status: "sent", attempts: f.attempts(id) + 1}
	return nil
}

func (f *fakeNotifications) Reschedule(_ context.Context, _ sqlc.DBTX, id uuid.UUID, lastErr string, next, _ time.Time) error {
	f.state[id] = &jobState{status: "queued", attempts: f.attempts(id) + 1, next: next, lastErr: lastErr}
	return nil
}

func (f *fakeNotifications) MarkFailed(_ context.Context, _ sqlc.DBTX, id uuid.UUID, lastErr string, _ time.Time) error {
	f.state[id] = &jobState{status: "failed", attempts: f.attempts(id) + 1, lastErr: lastErr}
	return nil
}

func (f *fakeNotifications) attempts(id uuid.UUID) int {
	for _, j := range f.queue {
		if j.ID == id {
			return j.Attempts
		}
	}
	return 0
}

type fakeTx struct {
	notifications *fakeNotifications
}

func (t *fakeTx) Bookings() shared.BookingRepository           { return nil }
func (t *fakeTx) Properties() shared.PropertyRepository        { return nil }
func (t *fakeTx) Users() shared.UserRepository                 { return nil }
func (t *fakeTx) Notifications() shared.NotificationRepository { return t.notifications }
func (t *fakeTx) Reads() shared.CommandReads                   { return nil }
func (t *fakeTx) DB() sqlc.DBTX                                { return nil }

type fakeUoW struct {
	tx *fakeTx
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads { return nil }

type scriptedPublisher struct {
	failures  map[uuid.UUID]error
	published []uuid.UUID
}

func (p *scriptedPublisher) Publish(_ context.Context, job shared.NotificationJob) error {
	if err, ok := p.failures[job.ID]; ok {
		return err
	}
	p.published = append(p.published, job.ID)
	return nil
}

var relayNow = time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)

func newRelayFixture(jobs ...shared.NotificationJob) (*fakeNotifications, *scriptedPublisher, *OutboxRelay) {
	notifications := &fakeNotifications{queue: jobs, state: map[uuid.UUID]*jobState{}}
	pub := &scriptedPublisher{failures: map[uuid.UUID]error{}}
	cfg := config.OutboxConfig{
		PollInterval: 10 * time.Millisecond,
		BatchSize:    10,
		MaxAttempts:  3,
		BaseBackoff:  5 * time.Second,
	}
	relay := NewOutboxRelay(&fakeUoW{tx: &fakeTx{notifications: notifications}}, pub, clock.NewMockClock(relayNow), cfg)
	return notifications, pub, relay
}

func job(topic string, attempts int) shared.NotificationJob {
	return shared.NotificationJob{ID: uuid.New(), Topic: topic, Payload: []byte(`{}`), Attempts: attempts}
}

func TestRunOnce(t *testing.T) {
	t.Run("published jobs are marked sent", func(t *testing.T) {
		a := job(shared.TopicBookingConfirmed, 0)
		b := job(shared.TopicEmailVerification, 0)
		notifications, pub, relay := newRelayFixture(a, b)

		res, err := relay.RunOnce(context.Background())

		require.NoError(t, err)
		assert.Equal(t, BatchResult{Sent: 2}, res)
		assert.Equal(t, []uuid.UUID{a.ID, b.ID}, pub.published)
		assert.Equal(t, "sent", notifications.state[a.ID].status)
		assert.Equal(t, "sent", notifications.state[b.ID].status)
	})

	t.Run("broker failure reschedules with backoff", func(t *testing.T) {
		first := job(shared.TopicBookingConfirmed, 0)
		second := job(shared.TopicBookingConfirmed, 1)
		notifications, pub, relay := newRelayFixture(first, second)
		pub.failures[first.ID] = errors.New("broker unreachable")
		pub.failures[second.ID] = errors.New("broker unreachable")

		res, err := relay.RunOnce(context.Background())

		require.NoError(t, err)
		assert.Equal(t, BatchResult{Rescheduled: 2}, res)
		assert.Equal(t, relayNow.Add(5*time.Second), notifications.state[first.ID].next)
		assert.Equal(t, relayNow.Add(10*time.Second), notifications.state[second.ID].next)
		assert.Equal(t, "broker unreachable", notifications.state[first.ID].lastErr)
	})

	t.Run("last attempt marks the job failed", func(t *testing.T) {
		j := job(shared.TopicEmailVerification, 2)
		notifications, pub, relay := newRelayFixture(j)
		pub.failures[j.ID] = errors.New("topic missing")

		res, err := relay.RunOnce(context.Background())

		require.NoError(t, err)
		assert.Equal(t, BatchResult{Failed: 1}, res)
		assert.Equal(t, "failed", notifications.state[j.ID].status)
		assert.Equal(t, 3, notifications.state[j.ID].attempts)
	})

	t.Run("claim failure", func(t *testing.T) {
		notifications, _, relay := newRelayFixture()
		notifications.claimErr = errors.New("connection reset")

		_, err := relay.RunOnce(context.Background())

		assert.ErrorIs(t, err, ErrClaimFailed)
	})
}

func TestRun_StopsOnCancel(t *testing.T) {
	_, _, relay := newRelayFixture()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- relay.Run(ctx) }()
	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("relay did not stop after cancel")
	}
}

func TestBackoff(t *testing.T) {
	base := 5 * time.Second
	assert.Equal(t, 5*time.Second, Backoff(base, 0))
	assert.Equal(t, 5*time.Second, Backoff(base, 1))
	assert.Equal(t, 10*time.Second, Backoff(base, 2))
	assert.Equal(t, 40*time.Second, Backoff(base, 4))
	assert.Equal(t, time.Hour, Backoff(base, 30))
}
