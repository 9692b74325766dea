package usecase

import (
	"context"
	"log/slog"

	domainErrors "github.com/elcriollo/restaurant/internal/domain/errors"
	"github.com/elcriollo/restaurant/internal/domain/model"
	"github.com/elcriollo/restaurant/internal/domain/repository"
)

// OrderUseCase coordinates the order lifecycle and its table side effects.
// It is the only component allowed to change an order and its table as one
// logical unit; the repository provides the transactional boundary, this
// layer provides validation, the role gate and post-commit notifications.
type OrderUseCase struct {
	orders repository.OrderRepository
	users  repository.UserRepository
	sink   NotificationSink
	logger *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, users repository.UserRepository, sink NotificationSink, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, users: users, sink: sink, logger: logger}
}

func validLines(lines []model.OrderLineInput) bool {
	if len(lines) == 0 {
		return false
	}
	for _, l := range lines {
		if l.ProductID <= 0 {
			return false
		}
		if l.Quantity < model.MinLineQuantity || l.Quantity > model.MaxLineQuantity {
			return false
		}
	}
	return true
}

// Place creates an order for a table and marks the table Occupied, as one
// atomic unit. Validation and the role check happen before any write.
func (u *OrderUseCase) Place(ctx context.Context, actor model.Actor, tableID, userID int64, lines []model.OrderLineInput) (*model.OrderResult, error) {
	if !actor.Role.Can(model.OpPlaceOrder) {
		return nil, domainErrors.ErrForbidden
	}
	if !validLines(lines) {
		return nil, domainErrors.ErrInvalidInput
	}

	placing, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	order, table, err := u.orders.Create(ctx, tableID, userID, lines)
	if err != nil {
		u.logger.Error("place order failed",
			slog.Int64("table_id", tableID),
			slog.Int64("user_id", userID),
			slog.Int64("actor_id", actor.UserID),
			slog.String("error", err.Error()))
		return nil, err
	}

	sent := u.sink.Send(ctx, NotifyOrderConfirmation, placing.Email, map[string]any{
		"name":     placing.Name,
		"order_id": order.ID,
	})

	return &model.OrderResult{Order: order, Table: table, NotificationSent: sent}, nil
}

// Advance moves an order forward through its lifecycle. Delivering the last
// non-terminal order of a table frees that table in the same transaction.
// Cancellation is not reachable through this path; it has its own gate.
func (u *OrderUseCase) Advance(ctx context.Context, actor model.Actor, orderID int64, next model.OrderState) (*model.OrderResult, error) {
	if !actor.Role.Can(model.OpAdvanceOrder) {
		return nil, domainErrors.ErrForbidden
	}
	if !next.Valid() || next == model.OrderStateCancelled {
		return nil, domainErrors.ErrInvalidInput
	}

	order, table, err := u.orders.SetState(ctx, orderID, next)
	if err != nil {
		return nil, err
	}

	return &model.OrderResult{
		Order:            order,
		Table:            table,
		NotificationSent: u.notifyStateChange(ctx, order),
	}, nil
}

// Cancel sets an order to Cancelled and recomputes table occupancy. A
// delivered order cannot be cancelled.
func (u *OrderUseCase) Cancel(ctx context.Context, actor model.Actor, orderID int64) (*model.OrderResult, error) {
	if !actor.Role.Can(model.OpCancelOrder) {
		return nil, domainErrors.ErrForbidden
	}

	order, table, err := u.orders.SetState(ctx, orderID, model.OrderStateCancelled)
	if err != nil {
		return nil, err
	}

	return &model.OrderResult{
		Order:            order,
		Table:            table,
		NotificationSent: u.notifyStateChange(ctx, order),
	}, nil
}

func (u *OrderUseCase) notifyStateChange(ctx context.Context, order *model.Order) bool {
	placing, err := u.users.GetByID(ctx, order.UserID)
	if err != nil {
		u.logger.Warn("state change notification skipped",
			slog.Int64("order_id", order.ID),
			slog.Int64("user_id", order.UserID),
			slog.String("error", err.Error()))
		return false
	}
	return u.sink.Send(ctx, NotifyOrderStatus, placing.Email, map[string]any{
		"name":     placing.Name,
		"order_id": order.ID,
		"state":    string(order.State),
	})
}

// Get returns an order with its lines.
func (u *OrderUseCase) Get(ctx context.Context, actor model.Actor, id int64) (*model.Order, error) {
	if !actor.Role.Can(model.OpViewOrders) {
		return nil, domainErrors.ErrForbidden
	}
	return u.orders.GetByID(ctx, id)
}

// List returns orders newest first, optionally narrowed by state, table
// and user. Filters are conjunctive.
func (u *OrderUseCase) List(ctx context.Context, actor model.Actor, filter model.OrderFilter) ([]model.Order, error) {
	if !actor.Role.Can(model.OpViewOrders) {
		return nil, domainErrors.ErrForbidden
	}
	if filter.State != "" && !filter.State.Valid() {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.orders.List(ctx, filter)
}

// HardDelete removes an order physically. Administrative path; cancellation
// is the normal way out of the lifecycle.
func (u *OrderUseCase) HardDelete(ctx context.Context, actor model.Actor, id int64) error {
	if !actor.Role.Can(model.OpDeleteOrder) {
		return domainErrors.ErrForbidden
	}
	return u.orders.Delete(ctx, id)
}

// Stats aggregates order counts by state.
func (u *OrderUseCase) Stats(ctx context.Context, actor model.Actor) (*model.OrderStats, error) {
	if !actor.Role.Can(model.OpViewStats) {
		return nil, domainErrors.ErrForbidden
	}
	return u.orders.Stats(ctx)
}
