package main

import (
	"context"
	"log/slog"
	"os"

	"guri24/cmd/bootstrap"
	"guri24/internal/usecase/relay"

	"go.uber.org/fx"
)

func runRelay(lc fx.Lifecycle, r *relay.OutboxRelay, shutdowner fx.Shutdowner, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("Starting outbox relay")
			go func() {
				defer close(done)
				if err := r.Run(ctx); err != nil {
					logger.Error("Outbox relay stopped", "error", err.Error())
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
			logger.Info("Outbox relay stopped")
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.RelayModule,
		fx.Invoke(runRelay),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("Outbox relay failed to start", "error", err)
		os.Exit(1)
	}

	sig := <-app.Wait()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("Outbox relay failed to stop cleanly", "error", err)
	}
	os.Exit(sig.ExitCode)
}
