// Package handler contains the HTTP handlers for the API.
package handler

import (
	"strconv"
	"strings"
	"time"

	deliverycontext "bookkeeper/internal/delivery/context"
	domainerrors "bookkeeper/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// currentUser returns the owner resolved by the auth middleware.
func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return userID, nil
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, invalidParam(name, "must be a UUID")
	}

	return id, nil
}

func invalidParam(name, reason string) error {
	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " " + reason))
}

// queryTime parses an RFC3339 timestamp or a YYYY-MM-DD date in loc. A date-only
// upper bound covers the whole day, so it resolves to the following midnight.
// An absent parameter yields the zero time.
func queryTime(c echo.Context, name string, loc *time.Location, upperBound bool) (time.Time, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	day, err := time.ParseInLocation(time.DateOnly, raw, loc)
	if err != nil {
		return time.Time{}, invalidParam(name, "must be RFC3339 or YYYY-MM-DD")
	}
	if upperBound {
		day = day.AddDate(0, 0, 1)
	}

	return day, nil
}

// queryRange parses the start and end query parameters.
func queryRange(c echo.Context, loc *time.Location) (time.Time, time.Time, error) {
	start, err := queryTime(c, "start", loc, false)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end, err := queryTime(c, "end", loc, true)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return start, end, nil
}

// queryInt returns def when the parameter is absent.
func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalidParam(name, "must be an integer")
	}

	return n, nil
}

// bindAndValidate decodes the body into req and runs its validate tags.
// Rule failures are rendered field by field by the error middleware.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("request body could not be decoded"))
	}

	return errors.WithStack(c.Validate(req))
}
