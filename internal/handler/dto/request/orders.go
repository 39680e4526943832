package request

import "github.com/google/uuid"

type ScanQRRequest struct {
	QRCodeID string `json:"qrCodeId" binding:"required"`
}

// UpdateOrderRequest carries a target status plus optional shipment fields;
// only non-nil optional fields are merged into the stored order.
type UpdateOrderRequest struct {
	OrderID        uuid.UUID `json:"orderId" binding:"required"`
	Status         string    `json:"status" binding:"required"`
	TrackingNumber *string   `json:"trackingNumber"`
	Carrier        *string   `json:"carrier"`
	Notes          *string   `json:"notes"`
}
