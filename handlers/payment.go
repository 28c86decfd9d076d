package handlers

import (
	"net/http"
	"strings"

	"aircnc/models"
	"aircnc/services/payment"

	"github.com/gin-gonic/gin"
)

// IdempotencyKeyHeader lets a client make intent creation safe to retry.
const IdempotencyKeyHeader = "Idempotency-Key"

type PaymentHandler struct {
	PaymentService payment.PaymentService
}

func NewPaymentHandler(paymentService payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{PaymentService: paymentService}
}

// CreatePaymentIntentHandler handles POST /create-payment-intent with body {"price": n}.
func (h *PaymentHandler) CreatePaymentIntentHandler(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	key := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))
	intent, err := h.PaymentService.CreateIntent(c.Request.Context(), req.Price, key)
	if err != nil {
		respondError(c, "create payment intent", err)
		return
	}
	c.JSON(http.StatusOK, intent)
}
