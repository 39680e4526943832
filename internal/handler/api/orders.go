package api

import (
	"errors"
	"net/http"

	reqdto "tagmytrophy/internal/handler/dto/request"
	resdto "tagmytrophy/internal/handler/dto/response"
	"tagmytrophy/internal/handler/httperr"
	"tagmytrophy/internal/usecase/commands"
	"tagmytrophy/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
	qr   queries.QRCodeQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries, qr queries.QRCodeQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q, qr: qr}
}

// @Summary List orders
// @Description All orders, newest first; the admin panel renders the full list
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ListOrdersResponse
// @Failure 401 {object} httperr.Response
// @Router /orders/list [post]
func (h *OrderHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load orders", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderList(views))
}

// @Summary Scan a QR tag
// @Description Look up a tag at the point of sale; sold tags conflict
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ScanQRRequest true "Scan request"
// @Success 200 {object} resdto.ScanQRResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/scan-qr [post]
func (h *OrderHandler) ScanQR(c *gin.Context) {
	var req reqdto.ScanQRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "qrCodeId is required", nil)
		return
	}

	view, err := h.qr.Scan(c.Request.Context(), req.QRCodeID)
	if err != nil {
		var conflict *queries.ScanConflictError
		switch {
		case errors.Is(err, queries.ErrQRCodeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "QR code not found", nil)
		case errors.As(err, &conflict):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "QR code is not available",
				gin.H{"status": conflict.Status})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ScanQRResponse{QRCode: resdto.FromQRCodeView(view)})
}

// @Summary Update an order
// @Description Set the status and merge any supplied shipment fields
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateOrderRequest true "Update request"
// @Success 200 {object} resdto.UpdateOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/update [post]
func (h *OrderHandler) Update(c *gin.Context) {
	var req reqdto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "orderId and status are required", nil)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidOrderState):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order status", nil)
		case errors.Is(err, commands.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.UpdateOrderResponse{Success: true})
}
