package bootstrap

import (
	"context"
	"log/slog"

	"timebar/internal/infra/events"
	"timebar/internal/pkg/config"
	"timebar/internal/usecase/commands"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewImpressionPublisher,
	),
)

func NewImpressionPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.ImpressionPublisher, error) {
	if !cfg.Events.Enabled {
		logger.Info("impression event stream disabled")
		return events.NopPublisher{}, nil
	}

	producer, cleanup, err := events.NewImpressionProducer(cfg.Events, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return producer, nil
}
