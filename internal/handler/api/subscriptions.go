package api

import (
	"errors"
	"net/http"

	reqdto "tagmytrophy/internal/handler/dto/request"
	resdto "tagmytrophy/internal/handler/dto/response"
	"tagmytrophy/internal/handler/httperr"
	"tagmytrophy/internal/handler/middleware"
	"tagmytrophy/internal/usecase"
	"tagmytrophy/internal/usecase/commands"
	"tagmytrophy/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	cmds commands.SubscriptionCommands
	q    queries.SubscriptionQueries
}

func NewSubscriptionHandler(cmds commands.SubscriptionCommands, q queries.SubscriptionQueries) *SubscriptionHandler {
	return &SubscriptionHandler{cmds: cmds, q: q}
}

// @Summary Cancel the caller's subscription
// @Description Default is at period end; immediately=true cancels right away
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CancelSubscriptionRequest true "Cancel request"
// @Success 200 {object} resdto.CancelSubscriptionResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /subscriptions/cancel [post]
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	email, ok := middleware.GetAdminEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrNotAuthenticated, "Unauthorized", nil)
		return
	}

	var req reqdto.CancelSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	result, err := h.cmds.Cancel(c.Request.Context(), email, req.Immediately)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrProfileNotFound),
			errors.Is(err, commands.ErrSubscriptionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No subscription found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to cancel subscription", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CancelSubscriptionResponse{
		Success:           true,
		Status:            result.Status,
		CancelAtPeriodEnd: result.CancelAtPeriodEnd,
	})
}

// @Summary Open a billing portal session
// @Description Returns a provider-hosted portal URL for the caller
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PortalRequest true "Portal request"
// @Success 200 {object} resdto.PortalResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /subscriptions/portal [post]
func (h *SubscriptionHandler) Portal(c *gin.Context) {
	email, ok := middleware.GetAdminEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrNotAuthenticated, "Unauthorized", nil)
		return
	}

	var req reqdto.PortalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return
	}

	url, err := h.cmds.PortalSession(c.Request.Context(), email, req.ReturnURL)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrProfileNotFound),
			errors.Is(err, commands.ErrSubscriptionNotFound),
			errors.Is(err, commands.ErrNoBillingAccount):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No billing account found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create portal session", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.PortalResponse{Success: true, URL: url})
}

// @Summary Subscription status
// @Description Live provider state for the caller's subscription
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SubscriptionStatusResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /subscription/status [get]
func (h *SubscriptionHandler) Status(c *gin.Context) {
	email, ok := middleware.GetAdminEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrNotAuthenticated, "Unauthorized", nil)
		return
	}

	view, err := h.q.Status(c.Request.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrProfileNotFound),
			errors.Is(err, queries.ErrSubscriptionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No subscription found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load subscription", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSubscriptionStatus(view))
}
