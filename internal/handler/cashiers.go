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

type CashiersHandler struct{ svc service.CashierService }

func NewCashiersHandler(svc service.CashierService) *CashiersHandler {
	return &CashiersHandler{svc: svc}
}

func (h *CashiersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CashiersHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Register a new cashier, linked to the calling user
// @Tags cashiers
// @Accept json
// @Produce json
// @Param body body dto.CreateCashierRequest true "Cashier"
// @Success 201 {object} dto.CashierResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/cashiers [post]
func (h *CashiersHandler) Create(c *gin.Context) {
	var req dto.CreateCashierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), middleware.CallerFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CashiersHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	var req dto.UpdateCashierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), middleware.CallerFrom(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CashiersHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.CallerFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
