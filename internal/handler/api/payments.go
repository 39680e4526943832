package api

import (
	"errors"
	"net/http"

	"tagmytrophy/internal/domain/plan"
	reqdto "tagmytrophy/internal/handler/dto/request"
	resdto "tagmytrophy/internal/handler/dto/response"
	"tagmytrophy/internal/handler/httperr"
	"tagmytrophy/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Create a payment intent
// @Description Price the selected plan server-side and open a provider intent
// @Tags payments
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key; generated when absent"
// @Param request body reqdto.CreatePaymentIntentRequest true "Checkout request"
// @Success 200 {object} resdto.CreateIntentResponse
// @Failure 400 {object} httperr.Response
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req reqdto.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "plan, customerEmail, customerName and shippingAddress are required", nil)
		return
	}

	idempotencyKey := c.GetHeader("Idempotency-Key")
	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}

	result, err := h.cmds.CreatePaymentIntent(c.Request.Context(), req, idempotencyKey)
	if err != nil {
		if errors.Is(err, commands.ErrUnknownPlan) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown plan",
				gin.H{"validPlans": plan.IDs()})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create payment intent", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.CreateIntentResponse{
		ClientSecret:    result.ClientSecret,
		PaymentIntentID: result.PaymentIntentID,
		CustomerID:      result.CustomerID,
		Amount:          result.AmountCents,
	})
}
