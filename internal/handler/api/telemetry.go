package api

import (
	"log/slog"
	"net/http"

	reqdto "tagmytrophy/internal/handler/dto/request"
	"tagmytrophy/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

type TelemetryHandler struct{}

func NewTelemetryHandler() *TelemetryHandler {
	return &TelemetryHandler{}
}

// @Summary Log a client-side error
// @Description Write-only sink for browser error reports
// @Tags telemetry
// @Accept json
// @Produce json
// @Param request body reqdto.LogErrorRequest true "Error report"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /errors/log [post]
func (h *TelemetryHandler) LogError(c *gin.Context) {
	var req reqdto.LogErrorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "message is required", nil)
		return
	}

	attrs := []any{
		slog.String("message", req.Message),
		slog.String("client_ip", c.ClientIP()),
	}
	if req.Stack != nil {
		attrs = append(attrs, slog.String("stack", *req.Stack))
	}
	if req.URL != nil {
		attrs = append(attrs, slog.String("url", *req.URL))
	}
	if req.UserAgent != nil {
		attrs = append(attrs, slog.String("user_agent", *req.UserAgent))
	}

	slog.Error("Client error report", attrs...)

	c.JSON(http.StatusOK, gin.H{"success": true})
}
