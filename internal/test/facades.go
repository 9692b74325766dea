package test

import (
	"context"
	"time"

	"github.com/elcriollo/restaurant/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string, string) (*model.RegisteredUser, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseFn        func(string) (*model.Actor, error)
	UserFn         func(context.Context, model.Actor, int64) (*model.User, error)
	UsersFn        func(context.Context, model.Actor) ([]model.User, error)
}

// Register returns a registered account for successful scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, name, email, password, role string) (*model.RegisteredUser, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password, role)
	}
	return &model.RegisteredUser{
		User:  &model.User{ID: 1, Name: name, Email: email, Role: model.RoleServer, Active: true},
		Token: "token",
	}, nil
}

// Authenticate returns account and token for successful scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleServer, Active: true}, "token", nil
}

// ParseToken returns the stored actor for the authenticated request.
func (s AuthFacadeStub) ParseToken(token string) (*model.Actor, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return &model.Actor{UserID: 1, Role: model.RoleAdministrator}, nil
}

// User returns a single account.
func (s AuthFacadeStub) User(ctx context.Context, actor model.Actor, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, actor, id)
	}
	return &model.User{ID: id, Role: model.RoleServer, Active: true}, nil
}

// Users returns preconfigured accounts.
func (s AuthFacadeStub) Users(ctx context.Context, actor model.Actor) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx, actor)
	}
	return []model.User{{ID: 1, Role: model.RoleAdministrator, Active: true}}, nil
}

// TableFacadeStub provides controllable behaviour for table endpoints.
type TableFacadeStub struct {
	CreateFn func(context.Context, model.Actor, int, int, string) (*model.Table, error)
	GetFn    func(context.Context, model.Actor, int64) (*model.Table, error)
	ListFn   func(context.Context, model.Actor) ([]model.Table, error)
	UpdateFn func(context.Context, model.Actor, int64, model.TablePatch) (*model.Table, error)
	DeleteFn func(context.Context, model.Actor, int64) error
	StatsFn  func(context.Context, model.Actor) (*model.TableStats, error)
}

// CreateTable delegates to the override or returns a default Free table.
func (s TableFacadeStub) CreateTable(ctx context.Context, actor model.Actor, number, capacity int, location string) (*model.Table, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, actor, number, capacity, location)
	}
	return &model.Table{ID: 1, Number: number, Capacity: capacity, Location: location, State: model.TableStateFree}, nil
}

// Table returns a configured table.
func (s TableFacadeStub) Table(ctx context.Context, actor model.Actor, id int64) (*model.Table, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, actor, id)
	}
	return &model.Table{ID: id, Number: 1, Capacity: 4, State: model.TableStateFree}, nil
}

// Tables returns configured tables.
func (s TableFacadeStub) Tables(ctx context.Context, actor model.Actor) ([]model.Table, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, actor)
	}
	return []model.Table{{ID: 1, Number: 1, Capacity: 4, State: model.TableStateFree}}, nil
}

// UpdateTable delegates to the override or echoes the patch.
func (s TableFacadeStub) UpdateTable(ctx context.Context, actor model.Actor, id int64, patch model.TablePatch) (*model.Table, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, actor, id, patch)
	}
	return &model.Table{ID: id, Number: patch.Number, Capacity: patch.Capacity, Location: patch.Location, State: patch.State}, nil
}

// DeleteTable executes the configured handler.
func (s TableFacadeStub) DeleteTable(ctx context.Context, actor model.Actor, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, actor, id)
	}
	return nil
}

// TableStats returns configured counters.
func (s TableFacadeStub) TableStats(ctx context.Context, actor model.Actor) (*model.TableStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx, actor)
	}
	return &model.TableStats{Total: 1, Free: 1}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn   func(context.Context, model.Actor, int64, int64, []model.OrderLineInput) (*model.OrderResult, error)
	AdvanceFn func(context.Context, model.Actor, int64, model.OrderState) (*model.OrderResult, error)
	CancelFn  func(context.Context, model.Actor, int64) (*model.OrderResult, error)
	GetFn     func(context.Context, model.Actor, int64) (*model.Order, error)
	ListFn    func(context.Context, model.Actor, model.OrderFilter) ([]model.Order, error)
	DeleteFn  func(context.Context, model.Actor, int64) error
	StatsFn   func(context.Context, model.Actor) (*model.OrderStats, error)

	ListFilters []model.OrderFilter
}

// PlaceOrder delegates to the override or returns a default Placed order.
func (s *OrderFacadeStub) PlaceOrder(ctx context.Context, actor model.Actor, tableID, userID int64, lines []model.OrderLineInput) (*model.OrderResult, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, actor, tableID, userID, lines)
	}
	return &model.OrderResult{
		Order: &model.Order{ID: 1, TableID: tableID, UserID: userID, State: model.OrderStatePlaced},
		Table: &model.Table{ID: tableID, State: model.TableStateOccupied},
	}, nil
}

// AdvanceOrder delegates to the override or echoes the transition.
func (s *OrderFacadeStub) AdvanceOrder(ctx context.Context, actor model.Actor, orderID int64, next model.OrderState) (*model.OrderResult, error) {
	if s.AdvanceFn != nil {
		return s.AdvanceFn(ctx, actor, orderID, next)
	}
	return &model.OrderResult{Order: &model.Order{ID: orderID, State: next}}, nil
}

// CancelOrder delegates to the override or returns a Cancelled order.
func (s *OrderFacadeStub) CancelOrder(ctx context.Context, actor model.Actor, orderID int64) (*model.OrderResult, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, actor, orderID)
	}
	return &model.OrderResult{Order: &model.Order{ID: orderID, State: model.OrderStateCancelled}}, nil
}

// Order returns a configured order.
func (s *OrderFacadeStub) Order(ctx context.Context, actor model.Actor, id int64) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, actor, id)
	}
	return &model.Order{ID: id, State: model.OrderStatePlaced, CreatedAt: time.Unix(0, 0)}, nil
}

// Orders records the applied filter and returns configured orders.
func (s *OrderFacadeStub) Orders(ctx context.Context, actor model.Actor, filter model.OrderFilter) ([]model.Order, error) {
	s.ListFilters = append(s.ListFilters, filter)
	if s.ListFn != nil {
		return s.ListFn(ctx, actor, filter)
	}
	return []model.Order{{ID: 1, State: model.OrderStatePlaced}}, nil
}

// DeleteOrder executes the configured handler.
func (s *OrderFacadeStub) DeleteOrder(ctx context.Context, actor model.Actor, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, actor, id)
	}
	return nil
}

// OrderStats returns configured counters.
func (s *OrderFacadeStub) OrderStats(ctx context.Context, actor model.Actor) (*model.OrderStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx, actor)
	}
	return &model.OrderStats{Total: 1, Placed: 1}, nil
}

// ProductFacadeStub provides controllable behaviour for menu endpoints.
type ProductFacadeStub struct {
	CreateFn     func(context.Context, model.Actor, model.Product) (*model.Product, error)
	GetFn        func(context.Context, model.Actor, int64) (*model.Product, error)
	ListFn       func(context.Context, model.Actor) ([]model.Product, error)
	ByCategoryFn func(context.Context, model.Actor, string) ([]model.Product, error)
	AvailableFn  func(context.Context, model.Actor) ([]model.Product, error)
	UpdateFn     func(context.Context, model.Actor, int64, model.Product) (*model.Product, error)
	DeleteFn     func(context.Context, model.Actor, int64) error
}

// CreateProduct delegates to the override or echoes the product.
func (s ProductFacadeStub) CreateProduct(ctx context.Context, actor model.Actor, p model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, actor, p)
	}
	p.ID = 1
	return &p, nil
}

// Product returns a configured menu item.
func (s ProductFacadeStub) Product(ctx context.Context, actor model.Actor, id int64) (*model.Product, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, actor, id)
	}
	return &model.Product{ID: id, Name: "Mangu", Category: "Plato Principal", Price: 250, Available: true}, nil
}

// Products returns configured menu items.
func (s ProductFacadeStub) Products(ctx context.Context, actor model.Actor) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, actor)
	}
	return []model.Product{{ID: 1, Name: "Mangu", Category: "Plato Principal", Price: 250, Available: true}}, nil
}

// ProductsByCategory returns configured menu items for the category.
func (s ProductFacadeStub) ProductsByCategory(ctx context.Context, actor model.Actor, category string) ([]model.Product, error) {
	if s.ByCategoryFn != nil {
		return s.ByCategoryFn(ctx, actor, category)
	}
	return []model.Product{{ID: 1, Name: "Mangu", Category: category, Price: 250, Available: true}}, nil
}

// AvailableProducts returns configured available menu items.
func (s ProductFacadeStub) AvailableProducts(ctx context.Context, actor model.Actor) ([]model.Product, error) {
	if s.AvailableFn != nil {
		return s.AvailableFn(ctx, actor)
	}
	return []model.Product{{ID: 1, Name: "Mangu", Category: "Plato Principal", Price: 250, Available: true}}, nil
}

// UpdateProduct delegates to the override or echoes the update.
func (s ProductFacadeStub) UpdateProduct(ctx context.Context, actor model.Actor, id int64, p model.Product) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, actor, id, p)
	}
	p.ID = id
	return &p, nil
}

// DeleteProduct executes the configured handler.
func (s ProductFacadeStub) DeleteProduct(ctx context.Context, actor model.Actor, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, actor, id)
	}
	return nil
}

// RestaurantFacadeStub aggregates facade dependencies for HTTP layer tests.
type RestaurantFacadeStub struct {
	AuthFacadeStub
	TableFacadeStub
	OrderFacadeStub
	ProductFacadeStub
}
