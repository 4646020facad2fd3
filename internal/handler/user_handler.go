package handler

import (
	"movieflix/internal/middleware"
	"movieflix/internal/service"
	"movieflix/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service service.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service service.UserServicer) *UserHandler {
	return &UserHandler{service: service}
}

// Me godoc
// @Summary      Current user
// @Description  Retrieve the profile of the authenticated user
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=models.User}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	username := middleware.GetUsername(c)
	if username == "" {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	user, err := h.service.GetByUsername(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, user)
}
