package handler

import (
	"net/http"

	"bookkeeper/internal/delivery/api/response"
	"bookkeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HppHandlerParams holds dependencies for HppHandler, injected by Fx.
type HppHandlerParams struct {
	fx.In

	HppUC usecase.HppUsecase
}

// HppHandler serves HPP calculations.
type HppHandler struct {
	hppUC usecase.HppUsecase
}

// NewHppHandler is the constructor for HppHandler.
func NewHppHandler(params HppHandlerParams) *HppHandler {
	return &HppHandler{hppUC: params.HppUC}
}

// PreviewHpp calculates without saving.
func (h *HppHandler) PreviewHpp(c echo.Context) error {
	var req usecase.HppInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.hppUC.PreviewHpp(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newHppResponse(out))
}

func (h *HppHandler) CreateHpp(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.HppInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.hppUC.CreateHpp(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newHppResponse(out))
}

func (h *HppHandler) ListHpp(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	calcs, err := h.hppUC.ListHpp(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(calcs, newHppCalculationResponse))
}

func (h *HppHandler) UpdateHpp(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.HppInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.hppUC.UpdateHpp(c.Request().Context(), userID, id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newHppResponse(out))
}

func (h *HppHandler) DeleteHpp(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.hppUC.DeleteHpp(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
