package repository

import (
	"context"

	"github.com/elcriollo/restaurant/internal/domain/model"
)

// OrderRepository describes persistence operations with orders. Compound
// operations that touch the owning table commit as one unit of work: either
// the order row and the table row both change, or neither does.
type OrderRepository interface {
	// Create persists a new Placed order with its lines and marks the owning
	// table Occupied in the same transaction. Unit prices are captured from
	// the catalog; unknown table or user fail with ErrNotFound, unknown or
	// unavailable products with ErrNotFound/ErrInvalidInput.
	Create(ctx context.Context, tableID, userID int64, lines []model.OrderLineInput) (*model.Order, *model.Table, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	// SetState validates the transition under the table row lock and
	// recomputes occupancy: entering a terminal state frees the table only
	// when no other non-terminal order references it.
	SetState(ctx context.Context, id int64, next model.OrderState) (*model.Order, *model.Table, error)
	// Delete removes the order physically, lines included. Administrative
	// path only; the order must exist.
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*model.OrderStats, error)
}
