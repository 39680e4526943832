package response

import (
	"tagmytrophy/internal/usecase/commands"
	"tagmytrophy/internal/usecase/queries"
)

type QRCodeResponse struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Status       string  `json:"status"`
	OwnerID      *string `json:"owner_id,omitempty"`
	StoreID      *string `json:"store_id,omitempty"`
	StoreName    *string `json:"store_name,omitempty"`
	Slug         *string `json:"slug,omitempty"`
	ImageDataURL *string `json:"image_data_url,omitempty"`
	Claimed      bool    `json:"claimed"`
	CreatedAt    int64   `json:"created_at"`
	UpdatedAt    int64   `json:"updated_at"`
}

func FromQRCodeView(v *queries.QRCodeView) *QRCodeResponse {
	resp := &QRCodeResponse{
		ID:           v.ID.String(),
		Code:         v.Code,
		Status:       v.Status,
		StoreName:    v.StoreName,
		Slug:         v.Slug,
		ImageDataURL: v.ImageDataURL,
		Claimed:      v.Claimed,
		CreatedAt:    v.CreatedAt.Unix(),
		UpdatedAt:    v.UpdatedAt.Unix(),
	}
	if v.OwnerID != nil {
		owner := v.OwnerID.String()
		resp.OwnerID = &owner
	}
	if v.StoreID != nil {
		store := v.StoreID.String()
		resp.StoreID = &store
	}
	return resp
}

func FromQRCodeList(views []*queries.QRCodeView) []*QRCodeResponse {
	out := make([]*QRCodeResponse, len(views))
	for i, v := range views {
		out[i] = FromQRCodeView(v)
	}
	return out
}

type ScanQRResponse struct {
	QRCode *QRCodeResponse `json:"qrCode"`
}

type AssignStoreResponse struct {
	Success      bool              `json:"success"`
	UpdatedCount int64             `json:"updated_count"`
	QRCodes      []*QRCodeResponse `json:"qr_codes"`
}

type GenerateIDsResponse struct {
	Success   bool     `json:"success"`
	QRCodeIDs []string `json:"qrCodeIds"`
	Count     int      `json:"count"`
}

type DeleteSlugResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Slug       string `json:"slug"`
	WasClaimed bool   `json:"wasClaimed"`
}

type RegenerateSlugResponse struct {
	Success       bool    `json:"success"`
	Slug          string  `json:"slug"`
	QRCodeDataURL string  `json:"qrCodeDataUrl"`
	OwnerID       *string `json:"ownerId"`
	IsClaimed     bool    `json:"isClaimed"`
}

func FromRegenerateResult(r *commands.RegenerateSlugResult) *RegenerateSlugResponse {
	return &RegenerateSlugResponse{
		Success:       true,
		Slug:          r.Slug,
		QRCodeDataURL: r.ImageDataURL,
		OwnerID:       r.OwnerID,
		IsClaimed:     r.IsClaimed,
	}
}
