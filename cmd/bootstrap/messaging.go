package bootstrap

import (
	"context"

	"foodshare/internal/infra/estimator"
	"foodshare/internal/infra/notifier"
	"foodshare/internal/pkg/config"
	"foodshare/internal/usecase/commands"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewNotificationPublisher,
		NewExpiryEstimator,
	),
)

func NewNotificationPublisher(lc fx.Lifecycle, cfg config.Config) commands.NotificationPublisher {
	publisher := notifier.NewKafkaPublisher(cfg.Kafka)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher
}

func NewExpiryEstimator(cfg config.Config) commands.ExpiryEstimator {
	return estimator.NewClient(cfg.Estimator)
}
