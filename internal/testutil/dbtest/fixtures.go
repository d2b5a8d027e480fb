//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"guri24/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

var (
	hashOnce   sync.Once
	hashedTest string
)

func testPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.HashPassword(TestPassword)
		require.NoError(t, err)
		hashedTest = h
	})
	return hashedTest
}

// CreateTestUser inserts an active, verified user, or returns the id of an
// existing user with that email.
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO users (id, email, name, password_hash, role, status, email_verified)
		VALUES ($1, $2, $3, $4, $5, 'active', true)
		ON CONFLICT (email) DO NOTHING`,
		userID, email, "Test "+role, testPasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	return userID
}

// CreateTestProperty inserts a published listing owned by agentID. price is
// the nightly price as a decimal string.
func CreateTestProperty(t *testing.T, db DBLike, agentID uuid.UUID, purpose, price string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	slug := "test-property-" + strings.ReplaceAll(id.String(), "-", "")[:12]
	_, err := db.Exec(context.Background(), `
		INSERT INTO properties (id, title, slug, description, type, purpose, status, price, location, agent_id)
		VALUES ($1, $2, $3, $4, 'villa', $5, 'published', $6::numeric, 'Cascais', $7)`,
		id, "Test property "+slug, slug,
		"A fixture listing used by end-to-end tests, long enough to pass validation.",
		purpose, price, agentID)
	require.NoError(t, err)

	return id
}

func CountBookings(t *testing.T, db DBLike, propertyID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE property_id = $1 AND status = 'confirmed'", propertyID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
