package handler

import (
	"net/http"
	"time"

	"bookkeeper/config"
	"bookkeeper/internal/delivery/api/response"
	"bookkeeper/internal/domain/entity"
	"bookkeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TransactionHandlerParams holds dependencies for TransactionHandler, injected by Fx.
type TransactionHandlerParams struct {
	fx.In

	TransactionUC usecase.TransactionUsecase
	Config        *config.Config
}

// TransactionHandler serves the ledger.
type TransactionHandler struct {
	transactionUC usecase.TransactionUsecase
	location      *time.Location
}

// NewTransactionHandler is the constructor for TransactionHandler.
func NewTransactionHandler(params TransactionHandlerParams) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: params.TransactionUC,
		location:      params.Config.Ledger.Location(),
	}
}

func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.TransactionInput
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	tx, err := h.transactionUC.CreateTransaction(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newTransactionResponse(tx))
}

// ListTransactions accepts optional start, end, kind and limit query parameters.
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	start, end, err := queryRange(c, h.location)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	txs, err := h.transactionUC.ListTransactions(c.Request().Context(), userID, &usecase.ListTransactionsInput{
		Start: start,
		End:   end,
		Kind:  entity.TransactionKind(c.QueryParam("kind")),
		Limit: limit,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(txs, newTransactionResponse))
}

func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tx, err := h.transactionUC.GetTransaction(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTransactionResponse(tx))
}

func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.TransactionPatch
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	tx, err := h.transactionUC.UpdateTransaction(c.Request().Context(), userID, id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTransactionResponse(tx))
}

func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.transactionUC.DeleteTransaction(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ReceiptQR returns the transaction receipt as a PNG QR code.
func (h *TransactionHandler) ReceiptQR(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.transactionUC.ReceiptQR(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Blob(c, "image/png", "", png)
}
