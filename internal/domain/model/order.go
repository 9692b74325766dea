package model

import "time"

// OrderState describes the order lifecycle.
type OrderState string

const (
	OrderStatePlaced    OrderState = "Placed"
	OrderStatePreparing OrderState = "Preparing"
	OrderStateReady     OrderState = "Ready"
	OrderStateDelivered OrderState = "Delivered"
	OrderStateCancelled OrderState = "Cancelled"
)

// Valid reports whether the state is one of the known order states.
func (s OrderState) Valid() bool {
	switch s {
	case OrderStatePlaced, OrderStatePreparing, OrderStateReady, OrderStateDelivered, OrderStateCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed out of the state.
func (s OrderState) Terminal() bool {
	return s == OrderStateDelivered || s == OrderStateCancelled
}

// CanTransitionTo reports whether the order may move from s to next.
// Orders advance one step at a time and any non-terminal order may be cancelled.
func (s OrderState) CanTransitionTo(next OrderState) bool {
	if s.Terminal() {
		return false
	}
	if next == OrderStateCancelled {
		return true
	}
	switch s {
	case OrderStatePlaced:
		return next == OrderStatePreparing
	case OrderStatePreparing:
		return next == OrderStateReady
	case OrderStateReady:
		return next == OrderStateDelivered
	}
	return false
}

// Order describes a customer request for products tied to one table.
type Order struct {
	ID        int64
	TableID   int64
	UserID    int64
	State     OrderState
	Total     float64
	Lines     []OrderLine
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderLine is a single product position owned by an order. The unit price
// is captured at order time and never follows later catalog changes.
type OrderLine struct {
	ID          int64
	OrderID     int64
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   float64
	Note        string
}

// Subtotal returns quantity times the captured unit price.
func (l OrderLine) Subtotal() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// OrderLineInput carries a requested line on order creation.
type OrderLineInput struct {
	ProductID int64
	Quantity  int
	Note      string
}

// Limits for order line quantities.
const (
	MinLineQuantity = 1
	MaxLineQuantity = 20
)

// OrderFilter narrows order listings. Zero values mean "no filter".
type OrderFilter struct {
	State   OrderState
	TableID int64
	UserID  int64
}

// OrderResult is the outcome of a lifecycle operation: the mutated order,
// the owning table snapshot after occupancy recomputation, and whether the
// best-effort notification reached the sink.
type OrderResult struct {
	Order            *Order
	Table            *Table
	NotificationSent bool
}

// OrderStats aggregates order counts by state.
type OrderStats struct {
	Total     int
	Placed    int
	Preparing int
	Ready     int
	Delivered int
	Cancelled int
	Today     int
}
