package handler

import (
	"net/http"
	"strconv"
	"time"

	"bookkeeper/config"
	"bookkeeper/internal/delivery/api/response"
	"bookkeeper/internal/domain/entity"
	"bookkeeper/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Config   *config.Config
}

// ReportHandler serves the financial reports.
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	location *time.Location
}

// NewReportHandler is the constructor for ReportHandler.
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		location: params.Config.Ledger.Location(),
	}
}

func (h *ReportHandler) period(c echo.Context) (*usecase.PeriodInput, error) {
	start, end, err := queryRange(c, h.location)
	if err != nil {
		return nil, err
	}

	return &usecase.PeriodInput{Start: start, End: end}, nil
}

func (h *ReportHandler) Summary(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	period, err := h.period(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	report, err := h.reportUC.Summary(c.Request().Context(), userID, period)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// CategoryDistribution requires a kind query parameter.
func (h *ReportHandler) CategoryDistribution(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	period, err := h.period(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	dist, err := h.reportUC.CategoryDistribution(c.Request().Context(), userID, &usecase.DistributionInput{
		PeriodInput: *period,
		Kind:        entity.TransactionKind(c.QueryParam("kind")),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dist)
}

// Trend accepts optional months and until query parameters.
func (h *ReportHandler) Trend(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	months, err := queryInt(c, "months", 0)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	until, err := queryTime(c, "until", h.location, false)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	report, err := h.reportUC.Trend(c.Request().Context(), userID, &usecase.TrendInput{Until: until, Months: months})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// BreakEven accepts an optional unitsSold query parameter.
func (h *ReportHandler) BreakEven(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	period, err := h.period(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.BreakEvenInput{PeriodInput: *period}
	if raw := c.QueryParam("unitsSold"); raw != "" {
		units, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.HandleAppError(c, invalidParam("unitsSold", "must be an integer"))
		}
		input.UnitsSold = &units
	}

	report, err := h.reportUC.BreakEven(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// Export downloads the period as an XLSX workbook.
func (h *ReportHandler) Export(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	period, err := h.period(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.reportUC.Export(c.Request().Context(), userID, period)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Blob(c, out.ContentType, out.Filename, out.Data)
}
