package handler

import (
	"net/http"

	"pulse-chat/internal/domain/user"
	"pulse-chat/internal/services"
	"pulse-chat/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes the user routes. Errors are plain-text bodies;
// successes are the JSON projection of the user.
type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Signup handles POST /signup.
func (h *UserHandler) Signup(c *gin.Context) {
	var req httpdto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Valid() {
		c.String(http.StatusBadRequest, "Invalid user body")
		return
	}

	saved, err := h.service.Save(c.Request.Context(), user.User{
		Username: *req.Username,
		Password: *req.Password,
	})
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, saved)
}

// Login handles POST /login.
func (h *UserHandler) Login(c *gin.Context) {
	var req httpdto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Valid() {
		c.String(http.StatusBadRequest, "Invalid user body")
		return
	}

	u, err := h.service.Login(c.Request.Context(), user.Credentials{
		Username: *req.Username,
		Password: *req.Password,
	})
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}

// GetUser handles GET /getUser/:username.
func (h *UserHandler) GetUser(c *gin.Context) {
	u, err := h.service.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}

// DeleteUser handles DELETE /deleteUser/:username.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	u, err := h.service.DeleteByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}

// ResetPassword handles PATCH /resetPassword.
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req httpdto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Valid() {
		c.String(http.StatusBadRequest, "Invalid user body")
		return
	}

	u, err := h.service.Update(c.Request.Context(), *req.Username, user.Update{
		Password: req.Password,
	})
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}
