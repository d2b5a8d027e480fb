package components

import (
	"log/slog"

	"guri24/internal/domain/booking"
	"guri24/internal/infra/cache"
	"guri24/internal/pkg/clock"
	"guri24/internal/pkg/config"
	"guri24/internal/pkg/jwt"
	"guri24/internal/usecase"
	"guri24/internal/usecase/commands"
	"guri24/internal/usecase/queries"
	"guri24/internal/usecase/relay"
	"guri24/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		booking.NewNightlyPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	func(clock clock.Clock, calc booking.PriceCalculator) *booking.Services {
		return &booking.Services{
			Clock:           clock,
			PriceCalculator: calc,
		}
	},
	fx.Annotate(
		func(kv cache.KV, cfg config.Config) *cache.AvailabilityCache {
			return cache.NewAvailabilityCache(kv, cfg.Booking.AvailabilityCacheTTL)
		},
		fx.As(new(queries.AvailabilityCache)),
		fx.As(new(commands.AvailabilityInvalidator)),
	),
	func(s *jwt.Service) commands.TokenIssuer {
		return s
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewPropertyCommands,
		commands.NewInquiryCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewPropertyQueries,
		queries.NewInquiryQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var RelayModule = fx.Module("relay",
	fx.Provide(
		func(uow shared.UnitOfWork, pub relay.Publisher, clk clock.Clock, cfg config.Config, logger *slog.Logger) *relay.OutboxRelay {
			logger.Info("Outbox relay configured",
				"batch_size", cfg.Outbox.BatchSize,
				"poll_interval", cfg.Outbox.PollInterval.String(),
				"max_attempts", cfg.Outbox.MaxAttempts,
			)
			return relay.NewOutboxRelay(uow, pub, clk, cfg.Outbox)
		},
	),
)
