package handlers

import (
	"net/http"

	"aircnc/models"
	"aircnc/services/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	AuthService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) *AuthHandler {
	return &AuthHandler{AuthService: authService}
}

// IssueTokenHandler handles POST /jwt. The identity payload is signed as submitted.
func (h *AuthHandler) IssueTokenHandler(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		badRequest(c, err)
		return
	}

	token, err := h.AuthService.IssueToken(payload)
	if err != nil {
		respondError(c, "issue token", err)
		return
	}
	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}
