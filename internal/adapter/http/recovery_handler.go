package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mandi-ledger-backend/internal/usecase/dashboard"
	"mandi-ledger-backend/internal/usecase/recovery"
)

type RecoveryHandler struct {
	uc   *recovery.Usecase
	dash *dashboard.Usecase
}

func NewRecoveryHandler(uc *recovery.Usecase, dash *dashboard.Usecase) *RecoveryHandler {
	return &RecoveryHandler{uc: uc, dash: dash}
}

type createRecoveryReq struct {
	CustomerID   string  `json:"customer_id"   validate:"required,hex32"`
	Amount       float64 `json:"amount"        validate:"required,gt=0,dec2"`
	RecoveryDate string  `json:"recovery_date" validate:"required,datetime=2006-01-02"`
}

func (h *RecoveryHandler) CreateRecovery(c echo.Context) error {
	var req createRecoveryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), recovery.CreateRecoveryInput(req))
	if err != nil {
		return writeError(c, err)
	}
	if h.dash != nil {
		h.dash.Invalidate(c.Request().Context())
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RecoveryHandler) ListRecoveries(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
