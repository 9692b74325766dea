package app

import (
	"context"

	"github.com/elcriollo/restaurant/internal/domain/model"
	"github.com/elcriollo/restaurant/internal/usecase"
)

// RestaurantFacade aggregates the use cases behind one surface consumed by
// the HTTP layer.
type RestaurantFacade struct {
	auth     *usecase.AuthUseCase
	tables   *usecase.TableUseCase
	orders   *usecase.OrderUseCase
	products *usecase.ProductUseCase
}

func NewRestaurantFacade(auth *usecase.AuthUseCase, tables *usecase.TableUseCase, orders *usecase.OrderUseCase, products *usecase.ProductUseCase) *RestaurantFacade {
	return &RestaurantFacade{auth: auth, tables: tables, orders: orders, products: products}
}

func (f *RestaurantFacade) Register(ctx context.Context, name, email, password, role string) (*model.RegisteredUser, error) {
	return f.auth.Register(ctx, name, email, password, role)
}

func (f *RestaurantFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *RestaurantFacade) ParseToken(token string) (*model.Actor, error) {
	return f.auth.ParseToken(token)
}

func (f *RestaurantFacade) User(ctx context.Context, actor model.Actor, id int64) (*model.User, error) {
	return f.auth.GetUser(ctx, actor, id)
}

func (f *RestaurantFacade) Users(ctx context.Context, actor model.Actor) ([]model.User, error) {
	return f.auth.ListUsers(ctx, actor)
}

func (f *RestaurantFacade) CreateTable(ctx context.Context, actor model.Actor, number, capacity int, location string) (*model.Table, error) {
	return f.tables.Create(ctx, actor, number, capacity, location)
}

func (f *RestaurantFacade) Table(ctx context.Context, actor model.Actor, id int64) (*model.Table, error) {
	return f.tables.Get(ctx, actor, id)
}

func (f *RestaurantFacade) Tables(ctx context.Context, actor model.Actor) ([]model.Table, error) {
	return f.tables.List(ctx, actor)
}

func (f *RestaurantFacade) UpdateTable(ctx context.Context, actor model.Actor, id int64, patch model.TablePatch) (*model.Table, error) {
	return f.tables.Update(ctx, actor, id, patch)
}

func (f *RestaurantFacade) DeleteTable(ctx context.Context, actor model.Actor, id int64) error {
	return f.tables.Delete(ctx, actor, id)
}

func (f *RestaurantFacade) TableStats(ctx context.Context, actor model.Actor) (*model.TableStats, error) {
	return f.tables.Stats(ctx, actor)
}

func (f *RestaurantFacade) PlaceOrder(ctx context.Context, actor model.Actor, tableID, userID int64, lines []model.OrderLineInput) (*model.OrderResult, error) {
	return f.orders.Place(ctx, actor, tableID, userID, lines)
}

func (f *RestaurantFacade) AdvanceOrder(ctx context.Context, actor model.Actor, orderID int64, next model.OrderState) (*model.OrderResult, error) {
	return f.orders.Advance(ctx, actor, orderID, next)
}

func (f *RestaurantFacade) CancelOrder(ctx context.Context, actor model.Actor, orderID int64) (*model.OrderResult, error) {
	return f.orders.Cancel(ctx, actor, orderID)
}

func (f *RestaurantFacade) Order(ctx context.Context, actor model.Actor, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, actor, id)
}

func (f *RestaurantFacade) Orders(ctx context.Context, actor model.Actor, filter model.OrderFilter) ([]model.Order, error) {
	return f.orders.List(ctx, actor, filter)
}

func (f *RestaurantFacade) DeleteOrder(ctx context.Context, actor model.Actor, id int64) error {
	return f.orders.HardDelete(ctx, actor, id)
}

func (f *RestaurantFacade) OrderStats(ctx context.Context, actor model.Actor) (*model.OrderStats, error) {
	return f.orders.Stats(ctx, actor)
}

func (f *RestaurantFacade) CreateProduct(ctx context.Context, actor model.Actor, p model.Product) (*model.Product, error) {
	return f.products.Create(ctx, actor, p)
}

func (f *RestaurantFacade) Product(ctx context.Context, actor model.Actor, id int64) (*model.Product, error) {
	return f.products.Get(ctx, actor, id)
}

func (f *RestaurantFacade) Products(ctx context.Context, actor model.Actor) ([]model.Product, error) {
	return f.products.List(ctx, actor)
}

func (f *RestaurantFacade) ProductsByCategory(ctx context.Context, actor model.Actor, category string) ([]model.Product, error) {
	return f.products.ListByCategory(ctx, actor, category)
}

func (f *RestaurantFacade) AvailableProducts(ctx context.Context, actor model.Actor) ([]model.Product, error) {
	return f.products.ListAvailable(ctx, actor)
}

func (f *RestaurantFacade) UpdateProduct(ctx context.Context, actor model.Actor, id int64, p model.Product) (*model.Product, error) {
	return f.products.Update(ctx, actor, id, p)
}

func (f *RestaurantFacade) DeleteProduct(ctx context.Context, actor model.Actor, id int64) error {
	return f.products.Delete(ctx, actor, id)
}
