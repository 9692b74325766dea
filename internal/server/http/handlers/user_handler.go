package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elcriollo/restaurant/internal/server/http/dto"
)

// UserHandler exposes account listings for administrators.
type UserHandler struct {
	facade AuthFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade AuthFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// List handles GET /api/users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context(), CurrentActor(c))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	response := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, toUserResponse(u))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.facade.User(c.Request.Context(), CurrentActor(c), id)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, toUserResponse(*user))
}
