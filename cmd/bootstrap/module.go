package bootstrap

import (
	"guri24/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module wires the HTTP API.
var Module = fx.Options(
	ConfigModule,
	ClockModule,
	LoggerModule,
	DBModule,
	RedisModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)

// RelayModule wires the outbox relay process. It shares persistence with the
// API but has no HTTP surface.
var RelayModule = fx.Options(
	ConfigModule,
	ClockModule,
	LoggerModule,
	DBModule,
	KafkaModule,
	components.PersistenceModule,
	components.RelayModule,
)
