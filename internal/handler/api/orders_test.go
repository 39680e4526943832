//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"tagmytrophy/internal/handler/api"
	reqdto "tagmytrophy/internal/handler/dto/request"
	resdto "tagmytrophy/internal/handler/dto/response"
	"tagmytrophy/internal/usecase/commands"
	"tagmytrophy/internal/usecase/queries"
	"tagmytrophy/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type orderCommandsStub struct {
	updateErr error
	updated   *reqdto.UpdateOrderRequest
}

func (s *orderCommandsStub) Update(_ context.Context, req reqdto.UpdateOrderRequest) error {
	s.updated = &req
	return s.updateErr
}

type orderQueriesStub struct {
	views []*queries.OrderView
	err   error
}

func (s *orderQueriesStub) List(_ context.Context) ([]*queries.OrderView, error) {
	return s.views, s.err
}

type qrQueriesStub struct {
	scanView *queries.QRCodeView
	scanErr  error
}

func (s *qrQueriesStub) Scan(_ context.Context, _ string) (*queries.QRCodeView, error) {
	if s.scanErr != nil {
		return nil, s.scanErr
	}
	return s.scanView, nil
}

type OrderHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	cmds   *orderCommandsStub
	orders *orderQueriesStub
	qr     *qrQueriesStub
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.cmds = &orderCommandsStub{}
	s.orders = &orderQueriesStub{}
	s.qr = &qrQueriesStub{}
	handler := api.NewOrderHandler(s.cmds, s.orders, s.qr)

	s.router.POST("/orders/list", handler.List)
	s.router.POST("/orders/scan-qr", handler.ScanQR)
	s.router.POST("/orders/update", handler.Update)
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestList() {
	s.Run("success: returns the full order list", func() {
		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		s.orders.views = []*queries.OrderView{{
			ID:            uuid.New(),
			Status:        "pending",
			CustomerEmail: "hunter@example.com",
			CustomerName:  "Hunter",
			Subtotal:      decimal.RequireFromString("29.99"),
			Tax:           decimal.RequireFromString("2.40"),
			Shipping:      decimal.Zero,
			Total:         decimal.RequireFromString("32.39"),
			CreatedAt:     now,
			UpdatedAt:     now,
		}}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/list", nil, "")

		var response resdto.ListOrdersResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Orders, 1)
		s.Equal("pending", response.Orders[0].Status)
		s.InDelta(32.39, response.Orders[0].Total, 0.001)
	})

	s.Run("success: empty inventory returns an empty list, not null", func() {
		s.orders.views = nil

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/list", nil, "")

		var response resdto.ListOrdersResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotNil(response.Orders)
		s.Empty(response.Orders)
	})
}

func (s *OrderHandlerTestSuite) TestScanQR() {
	s.Run("success: scannable tag comes back", func() {
		s.qr.scanView = &queries.QRCodeView{
			ID:     uuid.New(),
			Code:   "qr00042",
			Status: "in_store",
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/scan-qr",
			map[string]any{"qrCodeId": "qr00042"}, "")

		var response resdto.ScanQRResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("qr00042", response.QRCode.Code)
	})

	s.Run("error: 404 when the code is unknown", func() {
		s.qr.scanErr = queries.ErrQRCodeNotFound

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/scan-qr",
			map[string]any{"qrCodeId": "qr99999"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "QR code not found")
	})

	s.Run("error: 400 with status detail when the tag is already sold", func() {
		s.qr.scanErr = &queries.ScanConflictError{Status: "claimed"}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/scan-qr",
			map[string]any{"qrCodeId": "qr00042"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "not available")
		s.Contains(rec.Body.String(), "claimed")
	})

	s.Run("error: 400 when qrCodeId is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/scan-qr",
			map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *OrderHandlerTestSuite) TestUpdate() {
	orderID := uuid.New()

	s.Run("success: forwards status and shipment fields", func() {
		tracking := "1Z999"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/update",
			map[string]any{"orderId": orderID, "status": "shipped", "trackingNumber": tracking}, "")

		var response resdto.UpdateOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)

		s.Require().NotNil(s.cmds.updated)
		s.Equal(orderID, s.cmds.updated.OrderID)
		s.Equal("shipped", s.cmds.updated.Status)
		s.Require().NotNil(s.cmds.updated.TrackingNumber)
		s.Equal(tracking, *s.cmds.updated.TrackingNumber)
	})

	s.Run("error: 400 on an unknown status", func() {
		s.cmds.updateErr = commands.ErrInvalidOrderState

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/update",
			map[string]any{"orderId": orderID, "status": "teleported"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order status")
	})

	s.Run("error: 404 on an unknown order", func() {
		s.cmds.updateErr = commands.ErrOrderNotFound

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders/update",
			map[string]any{"orderId": uuid.New(), "status": "shipped"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}
