package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/elcriollo/restaurant/internal/adapter/notifier"
	"github.com/elcriollo/restaurant/internal/app"
	"github.com/elcriollo/restaurant/internal/config"
	"github.com/elcriollo/restaurant/internal/domain/repository"
	"github.com/elcriollo/restaurant/internal/storage/postgres"
	"github.com/elcriollo/restaurant/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		AMQPURI:         "amqp://stub",
		JWTSecret:       "secret",
		TokenTTL:        time.Minute,
		NotifyTimeout:   time.Millisecond,
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	users := test.NewUserRepositoryStub()
	tables := test.NewTableRepositoryStub()
	products := test.NewProductRepositoryStub()
	orders := test.NewOrderRepositoryStub(tables, users, products)

	var facade *app.RestaurantFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(&notifier.Publisher{}),
			fx.Replace(repository.UserRepository(users)),
			fx.Replace(repository.TableRepository(tables)),
			fx.Replace(repository.OrderRepository(orders)),
			fx.Replace(repository.ProductRepository(products)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected restaurant facade instance")
	}
}
