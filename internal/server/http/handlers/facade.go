package handlers

import (
	"context"

	"github.com/elcriollo/restaurant/internal/domain/model"
)

// AuthFacade describes authentication and account capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password, role string) (*model.RegisteredUser, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (*model.Actor, error)
	User(ctx context.Context, actor model.Actor, id int64) (*model.User, error)
	Users(ctx context.Context, actor model.Actor) ([]model.User, error)
}

// TableFacade encapsulates table operations exposed via HTTP.
type TableFacade interface {
	CreateTable(ctx context.Context, actor model.Actor, number, capacity int, location string) (*model.Table, error)
	Table(ctx context.Context, actor model.Actor, id int64) (*model.Table, error)
	Tables(ctx context.Context, actor model.Actor) ([]model.Table, error)
	UpdateTable(ctx context.Context, actor model.Actor, id int64, patch model.TablePatch) (*model.Table, error)
	DeleteTable(ctx context.Context, actor model.Actor, id int64) error
	TableStats(ctx context.Context, actor model.Actor) (*model.TableStats, error)
}

// OrderFacade encapsulates order lifecycle operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, actor model.Actor, tableID, userID int64, lines []model.OrderLineInput) (*model.OrderResult, error)
	AdvanceOrder(ctx context.Context, actor model.Actor, orderID int64, next model.OrderState) (*model.OrderResult, error)
	CancelOrder(ctx context.Context, actor model.Actor, orderID int64) (*model.OrderResult, error)
	Order(ctx context.Context, actor model.Actor, id int64) (*model.Order, error)
	Orders(ctx context.Context, actor model.Actor, filter model.OrderFilter) ([]model.Order, error)
	DeleteOrder(ctx context.Context, actor model.Actor, id int64) error
	OrderStats(ctx context.Context, actor model.Actor) (*model.OrderStats, error)
}

// ProductFacade encapsulates menu operations exposed via HTTP.
type ProductFacade interface {
	CreateProduct(ctx context.Context, actor model.Actor, p model.Product) (*model.Product, error)
	Product(ctx context.Context, actor model.Actor, id int64) (*model.Product, error)
	Products(ctx context.Context, actor model.Actor) ([]model.Product, error)
	ProductsByCategory(ctx context.Context, actor model.Actor, category string) ([]model.Product, error)
	AvailableProducts(ctx context.Context, actor model.Actor) ([]model.Product, error)
	UpdateProduct(ctx context.Context, actor model.Actor, id int64, p model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, actor model.Actor, id int64) error
}

// RestaurantFacade aggregates the full set of operations used across handlers.
type RestaurantFacade interface {
	AuthFacade
	TableFacade
	OrderFacade
	ProductFacade
}
