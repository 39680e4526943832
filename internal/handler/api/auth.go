package api

import (
	"errors"
	"net/http"

	reqdto "tagmytrophy/internal/handler/dto/request"
	resdto "tagmytrophy/internal/handler/dto/response"
	"tagmytrophy/internal/handler/httperr"
	"tagmytrophy/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	sessions usecase.SessionManager
}

func NewAuthHandler(sessions usecase.SessionManager) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// @Summary Admin login
// @Description Exchange the admin credential pair for a 24h session token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Email and password are required", nil)
		return
	}

	token, err := h.sessions.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errors.Is(err, usecase.ErrMissingAdminConfig):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Server configuration error", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{Success: true, Token: token})
}

// @Summary Admin logout
// @Description Advisory logout; the token stays valid until its natural expiry
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.TokenRequest true "Token"
// @Success 200 {object} resdto.LogoutResponse
// @Router /admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// No server-side revocation exists; the client discards the token.
	var req reqdto.TokenRequest
	_ = c.ShouldBindJSON(&req)

	c.JSON(http.StatusOK, resdto.LogoutResponse{Success: true})
}

// @Summary Verify admin session
// @Description Validate a session token; a valid token comes back refreshed
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.TokenRequest true "Token"
// @Success 200 {object} resdto.VerifyResponse
// @Router /admin/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	var req reqdto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, resdto.VerifyResponse{Valid: false})
		return
	}

	result := h.sessions.Verify(req.Token)
	c.JSON(http.StatusOK, resdto.VerifyResponse{Valid: result.Valid, Token: result.Token})
}
