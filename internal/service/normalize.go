package service

import (
	"errors"

	apperrors "github.com/criseulises/customer-admin-go/internal/errors"
)

// normalizeErr collapses any failure into a single error kind carrying one
// human-readable message. Backend-reported messages (and the fixed
// connection-error message) pass through verbatim; anything without a
// message gets the operation-specific fallback. Unauthorized errors pass
// through untouched so the top-level controller can recognize them.
func normalizeErr(err error, fallback string) error {
	if err == nil {
		return nil
	}
	if apperrors.IsUnauthorized(err) {
		return err
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Message != "" {
			return appErr
		}
		return apperrors.Wrap(appErr, appErr.Code, fallback)
	}
	return apperrors.Wrap(err, apperrors.ErrCodeBackend, fallback)
}
