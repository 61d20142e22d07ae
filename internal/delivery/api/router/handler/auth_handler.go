package handler

import (
	"log/slog"
	"net/http"

	"bookkeeper/internal/delivery/api/response"
	"bookkeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler exchanges identity provider tokens for access tokens.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{authUC: params.AuthUC, logger: params.Logger}
}

// Register signs the user in, creating the account on first use.
// It answers 201 when the user was created and 200 otherwise.
func (h *AuthHandler) Register(c echo.Context) error {
	var req usecase.RegisterInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.Register(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if out.Created {
		status = http.StatusCreated
	}

	return response.Success(c, status, &authResponse{
		User:        newUserResponse(out.User),
		AccessToken: out.AccessToken,
		ExpiresAt:   out.ExpiresAt,
		Created:     out.Created,
	})
}
