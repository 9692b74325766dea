package notifier

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/elcriollo/restaurant/internal/config"
)

// Module exposes the notification publisher to the fx graph.
var Module = fx.Options(
	fx.Provide(newPublisher),
	fx.Invoke(registerLifecycle),
)

type publisherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newPublisher(p publisherParams) *Publisher {
	return NewPublisher(p.Config.AMQPURI, p.Config.NotifyTimeout, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, pub *Publisher) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			pub.Close()
			return nil
		},
	})
}
