package response

import (
	"encoding/json"

	"tagmytrophy/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type OrderResponse struct {
	ID              string          `json:"id"`
	Status          string          `json:"status"`
	CustomerEmail   string          `json:"customer_email"`
	CustomerName    string          `json:"customer_name"`
	ShippingAddress json.RawMessage `json:"shipping_address"`
	Items           json.RawMessage `json:"items"`
	Subtotal        float64         `json:"subtotal"`
	Tax             float64         `json:"tax"`
	Shipping        float64         `json:"shipping"`
	Total           float64         `json:"total"`
	TrackingNumber  *string         `json:"tracking_number,omitempty"`
	Carrier         *string         `json:"carrier,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	CreatedAt       int64           `json:"created_at"`
	UpdatedAt       int64           `json:"updated_at"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	var resp OrderResponse
	// same-named scalar fields map 1:1, the rest need explicit conversion
	_ = copier.Copy(&resp, v)

	resp.ID = v.ID.String()
	resp.Subtotal = v.Subtotal.InexactFloat64()
	resp.Tax = v.Tax.InexactFloat64()
	resp.Shipping = v.Shipping.InexactFloat64()
	resp.Total = v.Total.InexactFloat64()
	resp.CreatedAt = v.CreatedAt.Unix()
	resp.UpdatedAt = v.UpdatedAt.Unix()
	return &resp
}

type ListOrdersResponse struct {
	Orders []*OrderResponse `json:"orders"`
}

func FromOrderList(views []*queries.OrderView) *ListOrdersResponse {
	orders := make([]*OrderResponse, len(views))
	for i, v := range views {
		orders[i] = FromOrderView(v)
	}
	return &ListOrdersResponse{Orders: orders}
}

type UpdateOrderResponse struct {
	Success bool `json:"success"`
}
