package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mandi-ledger-backend/internal/usecase/dashboard"
	"mandi-ledger-backend/internal/usecase/loan"
)

type LoanHandler struct {
	uc   *loan.Usecase
	dash *dashboard.Usecase
}

func NewLoanHandler(uc *loan.Usecase, dash *dashboard.Usecase) *LoanHandler {
	return &LoanHandler{uc: uc, dash: dash}
}

type createLoanReq struct {
	CustomerID   string  `json:"customer_id"   validate:"required,hex32"`
	Amount       float64 `json:"amount"        validate:"required,gt=0,dec2"`
	InterestRate float64 `json:"interest_rate" validate:"omitempty,gte=0,dec2"`
	LoanDate     string  `json:"loan_date"     validate:"required,datetime=2006-01-02"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput(req))
	if err != nil {
		return writeError(c, err)
	}
	if h.dash != nil {
		h.dash.Invalidate(c.Request().Context())
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
