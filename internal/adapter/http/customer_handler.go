package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mandi-ledger-backend/internal/usecase/customer"
	"mandi-ledger-backend/internal/usecase/dashboard"
)

type CustomerHandler struct {
	uc   *customer.Usecase
	dash *dashboard.Usecase
}

func NewCustomerHandler(uc *customer.Usecase, dash *dashboard.Usecase) *CustomerHandler {
	return &CustomerHandler{uc: uc, dash: dash}
}

type createCustomerReq struct {
	Name    string `json:"name"    validate:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req createCustomerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), customer.CreateCustomerInput(req))
	if err != nil {
		return writeError(c, err)
	}
	h.invalidate(c)
	return c.JSON(http.StatusCreated, dto)
}

func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("customer_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	var req createCustomerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("customer_id"), customer.UpdateCustomerInput(req))
	if err != nil {
		return writeError(c, err)
	}
	h.invalidate(c)
	return c.JSON(http.StatusOK, dto)
}

func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("customer_id")); err != nil {
		return writeError(c, err)
	}
	h.invalidate(c)
	return c.NoContent(http.StatusNoContent)
}

func (h *CustomerHandler) GetCustomerBalance(c echo.Context) error {
	dto, err := h.uc.Balance(c.Request().Context(), c.Param("customer_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CustomerHandler) invalidate(c echo.Context) {
	if h.dash != nil {
		h.dash.Invalidate(c.Request().Context())
	}
}
