package bootstrap

import (
	"strings"

	"guri24/internal/pkg/config"
	"guri24/internal/pkg/errs"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		LoadConfig,
	),
)

var ErrInvalidConfig = errs.New("invalid configuration")

// LoadConfig reads the environment and rejects settings the booking ledger
// and outbox cannot run with.
func LoadConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if err := ValidateConfig(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func ValidateConfig(cfg config.Config) error {
	switch {
	case !strings.EqualFold(cfg.DB.TimeZone, "UTC"):
		// stay instants are compared as naive UTC timestamps
		return errs.Wrapf(ErrInvalidConfig, "DB_TIMEZONE must be UTC, got %q", cfg.DB.TimeZone)
	case cfg.Booking.AvailabilityCacheTTL < 0:
		return errs.Wrap(ErrInvalidConfig, "BOOKING_AVAILABILITY_CACHE_TTL must not be negative")
	case cfg.Outbox.BatchSize <= 0:
		return errs.Wrap(ErrInvalidConfig, "OUTBOX_BATCH_SIZE must be positive")
	case cfg.Outbox.MaxAttempts <= 0:
		return errs.Wrap(ErrInvalidConfig, "OUTBOX_MAX_ATTEMPTS must be positive")
	case cfg.Outbox.PollInterval <= 0:
		return errs.Wrap(ErrInvalidConfig, "OUTBOX_POLL_INTERVAL must be positive")
	}
	return nil
}
