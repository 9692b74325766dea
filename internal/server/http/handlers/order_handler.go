package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elcriollo/restaurant/internal/domain/model"
	"github.com/elcriollo/restaurant/internal/server/http/dto"
)

// OrderHandler manages order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	lines := make([]model.OrderLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, model.OrderLineInput{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Note:      l.Note,
		})
	}

	result, err := h.facade.PlaceOrder(c.Request.Context(), CurrentActor(c), req.TableID, req.UserID, lines)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusCreated, toOrderResultResponse(result))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), CurrentActor(c), id)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// List handles GET /api/orders. State, table and user filters come from
// query parameters.
func (h *OrderHandler) List(c *gin.Context) {
	filter := model.OrderFilter{State: model.OrderState(c.Query("state"))}
	if raw := c.Query("table_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		filter.TableID = id
	}
	if raw := c.Query("user_id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		filter.UserID = id
	}

	h.list(c, filter)
}

// ListByTable handles GET /api/orders/table/:tableID.
func (h *OrderHandler) ListByTable(c *gin.Context) {
	tableID, ok := pathID(c, "tableID")
	if !ok {
		return
	}
	h.list(c, model.OrderFilter{TableID: tableID})
}

func (h *OrderHandler) list(c *gin.Context, filter model.OrderFilter) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentActor(c), filter)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateState handles PATCH /api/orders/:id/state.
func (h *OrderHandler) UpdateState(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateOrderStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.AdvanceOrder(c.Request.Context(), CurrentActor(c), id, model.OrderState(req.State))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, toOrderResultResponse(result))
}

// Cancel handles POST /api/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.facade.CancelOrder(c.Request.Context(), CurrentActor(c), id)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, toOrderResultResponse(result))
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteOrder(c.Request.Context(), CurrentActor(c), id); err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Stats handles GET /api/orders/stats.
func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.facade.OrderStats(c.Request.Context(), CurrentActor(c))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, dto.OrderStatsResponse{
		Total:     stats.Total,
		Placed:    stats.Placed,
		Preparing: stats.Preparing,
		Ready:     stats.Ready,
		Delivered: stats.Delivered,
		Cancelled: stats.Cancelled,
		Today:     stats.Today,
	})
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	lines := make([]dto.OrderLineResponse, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, dto.OrderLineResponse{
			ID:          l.ID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Subtotal:    l.Subtotal(),
			Note:        l.Note,
		})
	}
	return dto.OrderResponse{
		ID:        order.ID,
		TableID:   order.TableID,
		UserID:    order.UserID,
		State:     string(order.State),
		Total:     order.Total,
		Lines:     lines,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

func toOrderResultResponse(result *model.OrderResult) dto.OrderResultResponse {
	response := dto.OrderResultResponse{
		Order:            toOrderResponse(*result.Order),
		NotificationSent: result.NotificationSent,
	}
	if result.Table != nil {
		table := toTableResponse(*result.Table)
		response.Table = &table
	}
	return response
}
