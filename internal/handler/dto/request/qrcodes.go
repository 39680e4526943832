package request

import "github.com/google/uuid"

// AssignStoreRequest assigns a batch of tags to a store; a null store_id
// unassigns them back to open inventory.
type AssignStoreRequest struct {
	QRCodeIDs []uuid.UUID `json:"qr_code_ids" binding:"required,min=1"`
	StoreID   *uuid.UUID  `json:"store_id"`
}

type GenerateIDsRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=1000"`
}

type SlugRequest struct {
	SlugID string `json:"slugId" binding:"required"`
}
