// Package impl contains the implementation of the application's business logic.
package impl

import (
	domainerrors "bookkeeper/internal/domain/errors"
	"bookkeeper/internal/domain/finance"
	"bookkeeper/internal/errors"
)

// validationFailed reports a rejected input field to the client.
func validationFailed(field, reason string) error {
	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(field + " " + reason))
}

// fromEngineError turns a finance.ValidationError into the API validation error.
// Any other error is returned unchanged.
func fromEngineError(err error) error {
	if verr, ok := errors.AsType[*finance.ValidationError](err); ok {
		return validationFailed(verr.Field, verr.Reason)
	}

	return err
}
