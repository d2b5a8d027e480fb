package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"guri24/internal/infra/db"
	"guri24/internal/pkg/config"
	"guri24/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

var ErrSessionNotUTC = errs.New("database session time zone is not UTC")

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := VerifySessionZone(ctx, pool); err != nil {
		cleanup()
		return nil, err
	}
	logger.Info("Database connected",
		"host", cfg.DB.Host,
		"database", cfg.DB.DBName,
		"max_conns", pool.Config().MaxConns,
	)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("Closing database pool",
				"acquired_conns", stat.AcquiredConns(),
				"total_conns", stat.TotalConns(),
			)
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// VerifySessionZone fails when the server overrides the DSN time zone. Booking
// instants are written as naive UTC and would shift silently otherwise.
func VerifySessionZone(ctx context.Context, q rowQuerier) error {
	var zone string
	if err := q.QueryRow(ctx, "SHOW TimeZone").Scan(&zone); err != nil {
		return errs.Wrap(err, "failed to read session time zone")
	}
	switch zone {
	case "UTC", "Etc/UTC":
		return nil
	default:
		return errs.Wrapf(ErrSessionNotUTC, "session reports %q", zone)
	}
}
