package di

import (
	"github.com/elcriollo/restaurant/internal/adapter/notifier"
	"github.com/elcriollo/restaurant/internal/app"
	"github.com/elcriollo/restaurant/internal/config"
	"github.com/elcriollo/restaurant/internal/logger"
	"github.com/elcriollo/restaurant/internal/pkg/auth"
	"github.com/elcriollo/restaurant/internal/server/http/handlers"
	"github.com/elcriollo/restaurant/internal/server/http/router"
	"github.com/elcriollo/restaurant/internal/storage/postgres"
	"github.com/elcriollo/restaurant/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		notifier.Module,
		fx.Provide(func(pub *notifier.Publisher) usecase.NotificationSink { return pub }),
		usecase.Module,
		fx.Provide(func(f *app.RestaurantFacade) handlers.RestaurantFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
