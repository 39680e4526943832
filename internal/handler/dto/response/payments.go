package response

import (
	"tagmytrophy/internal/usecase/queries"
)

type CreateIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
	CustomerID      string `json:"customerId"`
	// Amount is in cents, matching what the provider will charge.
	Amount int64 `json:"amount"`
}

type CancelSubscriptionResponse struct {
	Success           bool   `json:"success"`
	Status            string `json:"status"`
	CancelAtPeriodEnd bool   `json:"cancelAtPeriodEnd"`
}

type PortalResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

type SubscriptionStatusResponse struct {
	Status            string `json:"status"`
	CurrentPeriodEnd  int64  `json:"currentPeriodEnd"`
	CancelAtPeriodEnd bool   `json:"cancelAtPeriodEnd"`
	TrialEnd          *int64 `json:"trialEnd"`
	CardBrand         string `json:"cardBrand,omitempty"`
	CardLast4         string `json:"cardLast4,omitempty"`
}

func FromSubscriptionStatus(v *queries.SubscriptionStatusView) *SubscriptionStatusResponse {
	resp := &SubscriptionStatusResponse{
		Status:            v.Status,
		CurrentPeriodEnd:  v.CurrentPeriodEnd.Unix(),
		CancelAtPeriodEnd: v.CancelAtPeriodEnd,
		CardBrand:         v.CardBrand,
		CardLast4:         v.CardLast4,
	}
	if v.TrialEnd != nil {
		trialEnd := v.TrialEnd.Unix()
		resp.TrialEnd = &trialEnd
	}
	return resp
}
