package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elcriollo/restaurant/internal/domain/model"
	"github.com/elcriollo/restaurant/internal/server/http/dto"
)

// TableHandler manages dining table endpoints.
type TableHandler struct {
	facade TableFacade
}

// NewTableHandler constructs TableHandler.
func NewTableHandler(facade TableFacade) *TableHandler {
	return &TableHandler{facade: facade}
}

// Create handles POST /api/tables.
func (h *TableHandler) Create(c *gin.Context) {
	var req dto.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	table, err := h.facade.CreateTable(c.Request.Context(), CurrentActor(c), req.Number, req.Capacity, req.Location)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusCreated, toTableResponse(*table))
}

// Get handles GET /api/tables/:id.
func (h *TableHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	table, err := h.facade.Table(c.Request.Context(), CurrentActor(c), id)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, toTableResponse(*table))
}

// List handles GET /api/tables.
func (h *TableHandler) List(c *gin.Context) {
	tables, err := h.facade.Tables(c.Request.Context(), CurrentActor(c))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	response := make([]dto.TableResponse, 0, len(tables))
	for _, t := range tables {
		response = append(response, toTableResponse(t))
	}
	c.JSON(http.StatusOK, response)
}

// Update handles PUT /api/tables/:id.
func (h *TableHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	patch := model.TablePatch{
		Number:   req.Number,
		Capacity: req.Capacity,
		Location: req.Location,
		State:    model.TableState(req.State),
	}
	table, err := h.facade.UpdateTable(c.Request.Context(), CurrentActor(c), id, patch)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, toTableResponse(*table))
}

// Delete handles DELETE /api/tables/:id.
func (h *TableHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteTable(c.Request.Context(), CurrentActor(c), id); err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Stats handles GET /api/tables/stats.
func (h *TableHandler) Stats(c *gin.Context) {
	stats, err := h.facade.TableStats(c.Request.Context(), CurrentActor(c))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, dto.TableStatsResponse{
		Total:    stats.Total,
		Free:     stats.Free,
		Occupied: stats.Occupied,
		Reserved: stats.Reserved,
	})
}

func toTableResponse(table model.Table) dto.TableResponse {
	return dto.TableResponse{
		ID:        table.ID,
		Number:    table.Number,
		Capacity:  table.Capacity,
		Location:  table.Location,
		State:     string(table.State),
		CreatedAt: table.CreatedAt,
	}
}
