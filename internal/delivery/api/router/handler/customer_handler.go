package handler

import (
	"net/http"

	"bookkeeper/internal/delivery/api/response"
	"bookkeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
}

// CustomerHandler serves the owner's customers.
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
}

// NewCustomerHandler is the constructor for CustomerHandler.
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{customerUC: params.CustomerUC}
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.CustomerInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.CreateCustomer(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newCustomerResponse(customer))
}

func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	customers, err := h.customerUC.ListCustomers(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(customers, newCustomerResponse))
}

func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.GetCustomer(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCustomerResponse(customer))
}

func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.CustomerPatch
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.UpdateCustomer(c.Request().Context(), userID, id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCustomerResponse(customer))
}

func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.customerUC.DeleteCustomer(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
