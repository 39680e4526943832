package request

type ShippingAddress struct {
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

type CreatePaymentIntentRequest struct {
	Plan            string            `json:"plan" binding:"required"`
	CustomerEmail   string            `json:"customerEmail" binding:"required,email"`
	CustomerName    string            `json:"customerName" binding:"required"`
	ShippingAddress ShippingAddress   `json:"shippingAddress" binding:"required"`
	Customization   map[string]string `json:"customization"`
}

type CancelSubscriptionRequest struct {
	// Immediately cancels right away; the default is at period end.
	Immediately bool `json:"immediately"`
}

type PortalRequest struct {
	// ReturnURL defaults to the site base URL when omitted.
	ReturnURL *string `json:"returnUrl" binding:"omitempty,url"`
}
