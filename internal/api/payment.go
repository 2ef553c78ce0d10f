package api

import (
	"net/http"

	"github.com/Mohib75/study-syncer-server/internal/metrics"
	"github.com/Mohib75/study-syncer-server/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// CreatePaymentIntent converts the posted price to cents and asks the
// provider for an intent. Amounts under one cent are rejected.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Price == nil {
		metrics.PaymentIntents.WithLabelValues("rejected").Inc()
		badRequest(c, "invalid price", "INVALID_PRICE")
		return
	}

	amount := req.Price.Cents()
	if amount < 1 {
		metrics.PaymentIntents.WithLabelValues("rejected").Inc()
		badRequest(c, "invalid price", "INVALID_PRICE")
		return
	}

	clientSecret, err := h.payments.CreatePaymentIntent(c.Request.Context(), amount)
	if err != nil {
		metrics.PaymentIntents.WithLabelValues("failed").Inc()
		log.Error().Err(err).Int64("amount", amount).Msg("Payment provider rejected intent")
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error: "Failed to create payment intent",
			Code:  "PAYMENT_PROVIDER_ERROR",
		})
		return
	}

	metrics.PaymentIntents.WithLabelValues("created").Inc()
	c.JSON(http.StatusOK, models.PaymentIntentResponse{ClientSecret: clientSecret})
}
