package handlers

import (
	"errors"
	"net/http"

	"aircnc/database/repository"
	"aircnc/services/payment"
	"aircnc/services/user"
	"aircnc/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps a service error to exactly one JSON response. Upstream failures
// are logged in full and reported as a generic 500.
func respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		utils.JSONError(c, http.StatusBadRequest, "Invalid id", err.Error())
	case errors.Is(err, payment.ErrInvalidPrice):
		utils.JSONError(c, http.StatusBadRequest, "Invalid price", err.Error())
	case errors.Is(err, user.ErrMissingEmail):
		utils.JSONError(c, http.StatusBadRequest, "Invalid email", err.Error())
	default:
		utils.RequestLogger(c).Error(op+" failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, utils.MsgInternal, "")
	}
}

func badRequest(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
}
