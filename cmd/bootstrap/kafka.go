package bootstrap

import (
	"context"

	"guri24/internal/infra/messaging"
	"guri24/internal/pkg/config"
	"guri24/internal/usecase/relay"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		fx.Annotate(
			NewKafkaPublisher,
			fx.As(new(relay.Publisher)),
		),
	),
)

func NewKafkaPublisher(lc fx.Lifecycle, cfg config.Config) *messaging.KafkaPublisher {
	writer := messaging.NewKafkaWriter(cfg.Kafka)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return writer.Close()
		},
	})
	return messaging.NewKafkaPublisher(writer, cfg.Kafka)
}
