package handler

import (
	"net/http"

	"shopops/internal/apierror"
	"shopops/internal/dto"
	"shopops/internal/middleware"
	"shopops/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WalletHandler struct{ svc service.WalletService }

func NewWalletHandler(svc service.WalletService) *WalletHandler {
	return &WalletHandler{svc: svc}
}

// TopUp godoc
// @Summary Credit a shop's wallet and record the ledger entry
// @Tags wallet
// @Accept json
// @Produce json
// @Param id path string true "Shop id"
// @Param body body dto.TopUpRequest true "Top-up"
// @Success 200 {object} dto.ShopResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /v1/shops/{id}/topup [post]
func (h *WalletHandler) TopUp(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	var req dto.TopUpRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.TopUp(c.Request.Context(), middleware.CallerFrom(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListTransactions returns the top-up history recorded by the calling user,
// newest first.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	resp, err := h.svc.ListTransactions(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
