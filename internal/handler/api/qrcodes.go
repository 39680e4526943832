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

	"github.com/gin-gonic/gin"
)

type QRCodeHandler struct {
	cmds commands.QRCodeCommands
}

func NewQRCodeHandler(cmds commands.QRCodeCommands) *QRCodeHandler {
	return &QRCodeHandler{cmds: cmds}
}

// @Summary Generate sequential tag identifiers
// @Description Extend the inventory with the next run of codes
// @Tags qr-codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GenerateIDsRequest true "Quantity"
// @Success 200 {object} resdto.GenerateIDsResponse
// @Failure 400 {object} httperr.Response
// @Router /qr-codes/generate-ids [post]
func (h *QRCodeHandler) GenerateIDs(c *gin.Context) {
	var req reqdto.GenerateIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "quantity must be between 1 and 1000", nil)
		return
	}

	result, err := h.cmds.GenerateIDs(c.Request.Context(), req.Quantity)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to generate QR code IDs", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.GenerateIDsResponse{
		Success:   true,
		QRCodeIDs: result.Codes,
		Count:     len(result.Codes),
	})
}

// @Summary Assign or unassign tags to a store
// @Description Batch assignment; a null store_id reverts tags to available
// @Tags qr-codes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AssignStoreRequest true "Assignment"
// @Success 200 {object} resdto.AssignStoreResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /qr-codes/assign-store [post]
func (h *QRCodeHandler) AssignStore(c *gin.Context) {
	email, ok := middleware.GetAdminEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrNotAuthenticated, "Unauthorized", nil)
		return
	}

	var req reqdto.AssignStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "qr_code_ids are required", nil)
		return
	}

	result, err := h.cmds.AssignStore(c.Request.Context(), req, email)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotAuthenticated):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
		case errors.Is(err, usecase.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Administrator role required", nil)
		case errors.Is(err, commands.ErrStoreNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Store not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AssignStoreResponse{
		Success:      true,
		UpdatedCount: result.UpdatedCount,
		QRCodes:      resdto.FromQRCodeList(result.QRCodes),
	})
}

// @Summary Delete a QR-linked slug
// @Description Remove the record entirely; reports whether it was claimed
// @Tags qr
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SlugRequest true "Slug"
// @Success 200 {object} resdto.DeleteSlugResponse
// @Failure 404 {object} httperr.Response
// @Router /qr/delete [post]
func (h *QRCodeHandler) DeleteSlug(c *gin.Context) {
	var req reqdto.SlugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "slugId is required", nil)
		return
	}

	result, err := h.cmds.DeleteSlug(c.Request.Context(), req.SlugID)
	if err != nil {
		if errors.Is(err, commands.ErrSlugNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slug not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.DeleteSlugResponse{
		Success:    true,
		Message:    "QR code deleted",
		Slug:       result.Slug,
		WasClaimed: result.WasClaimed,
	})
}

// @Summary Regenerate a slug's QR image
// @Description Re-encode the canonical story URL; ownership and claim state survive
// @Tags qr
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SlugRequest true "Slug"
// @Success 200 {object} resdto.RegenerateSlugResponse
// @Failure 404 {object} httperr.Response
// @Router /qr/regenerate [post]
func (h *QRCodeHandler) RegenerateSlug(c *gin.Context) {
	var req reqdto.SlugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "slugId is required", nil)
		return
	}

	result, err := h.cmds.RegenerateSlug(c.Request.Context(), req.SlugID)
	if err != nil {
		if errors.Is(err, commands.ErrSlugNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slug not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRegenerateResult(result))
}
