package handlers

import (
	"net/http"

	"aircnc/models"
	"aircnc/services/user"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(userService user.UserService) *UserHandler {
	return &UserHandler{UserService: userService}
}

// UpsertUserHandler handles PUT /users/:email.
func (h *UserHandler) UpsertUserHandler(c *gin.Context) {
	var fields models.User
	if err := c.ShouldBindJSON(&fields); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.UserService.UpsertUser(c.Request.Context(), c.Param("email"), fields)
	if err != nil {
		respondError(c, "upsert user", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetUserByEmailHandler handles GET /user/:email and answers null for unknown users.
func (h *UserHandler) GetUserByEmailHandler(c *gin.Context) {
	usr, err := h.UserService.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, "get user", err)
		return
	}
	c.JSON(http.StatusOK, usr)
}
