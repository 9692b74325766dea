package dto

import "time"

// OrderLineRequest describes one requested product position.
type OrderLineRequest struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Note      string `json:"note,omitempty"`
}

// CreateOrderRequest describes a new order payload.
type CreateOrderRequest struct {
	TableID int64              `json:"table_id"`
	UserID  int64              `json:"user_id"`
	Lines   []OrderLineRequest `json:"lines"`
}

// UpdateOrderStateRequest carries the requested lifecycle transition.
type UpdateOrderStateRequest struct {
	State string `json:"state"`
}

// OrderLineResponse is the public view of an order line.
type OrderLineResponse struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
	Note        string  `json:"note,omitempty"`
}

// OrderResponse is the public view of an order.
type OrderResponse struct {
	ID        int64               `json:"id"`
	TableID   int64               `json:"table_id"`
	UserID    int64               `json:"user_id"`
	State     string              `json:"state"`
	Total     float64             `json:"total"`
	Lines     []OrderLineResponse `json:"lines,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// OrderResultResponse is the outcome of a lifecycle operation: the order,
// the owning table after occupancy recomputation, and whether the
// best-effort notification went out.
type OrderResultResponse struct {
	Order            OrderResponse  `json:"order"`
	Table            *TableResponse `json:"table,omitempty"`
	NotificationSent bool           `json:"notification_sent"`
}

// OrderStatsResponse aggregates order counts by state.
type OrderStatsResponse struct {
	Total     int `json:"total"`
	Placed    int `json:"placed"`
	Preparing int `json:"preparing"`
	Ready     int `json:"ready"`
	Delivered int `json:"delivered"`
	Cancelled int `json:"cancelled"`
	Today     int `json:"today"`
}
