package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elcriollo/restaurant/internal/domain/model"
	"github.com/elcriollo/restaurant/internal/server/http/dto"
	"github.com/elcriollo/restaurant/internal/server/http/middleware"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	registered, err := h.facade.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	middleware.SetAuthCookie(c, registered.Token)
	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token:            registered.Token,
		User:             toUserResponse(*registered.User),
		NotificationSent: registered.NotificationSent,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  toUserResponse(*user),
	})
}

func toUserResponse(user model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
	}
}
