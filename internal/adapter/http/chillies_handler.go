package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mandi-ledger-backend/internal/usecase/chillies"
	"mandi-ledger-backend/internal/usecase/dashboard"
)

type ChilliesHandler struct {
	uc   *chillies.Usecase
	dash *dashboard.Usecase
}

func NewChilliesHandler(uc *chillies.Usecase, dash *dashboard.Usecase) *ChilliesHandler {
	return &ChilliesHandler{uc: uc, dash: dash}
}

type createTransactionReq struct {
	CustomerID      string  `json:"customer_id"      validate:"required,hex32"`
	NumberOfBags    int     `json:"number_of_bags"   validate:"required,gt=0"`
	WeightKg        float64 `json:"weight_kg"        validate:"required,gt=0,dec2"`
	MarketRate      float64 `json:"market_rate"      validate:"required,gt=0,dec2"`
	TransactionDate string  `json:"transaction_date" validate:"required,datetime=2006-01-02"`
}

func (h *ChilliesHandler) CreateTransaction(c echo.Context) error {
	var req createTransactionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), chillies.CreateTransactionInput(req))
	if err != nil {
		return writeError(c, err)
	}
	if h.dash != nil {
		h.dash.Invalidate(c.Request().Context())
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ChilliesHandler) ListTransactions(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
