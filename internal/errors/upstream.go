package errors

import (
	"context"
	"errors"
	"net/http"

	"github.com/bokuwaitgel/smart-locker-panel/internal/gateway"
)

// MapGatewayError maps errors returned by the API gateway to AppError instances:
//   - auth expired → Unauthorized
//   - 400/422 → Validation, 403 → Forbidden, 404 → NotFound, other statuses → Upstream
//   - context deadline/cancel → Timeout/Canceled
//   - anything else (network) → Upstream
//
// AppErrors pass through unchanged.
func MapGatewayError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Wrap(err, ErrCodeTimeout, "The locker service did not answer in time. Please try again.")
	}
	if errors.Is(err, context.Canceled) {
		return Wrap(err, ErrCodeCanceled, "Request was canceled.")
	}

	switch gateway.Classify(err) {
	case gateway.OutcomeAuthExpired:
		return Wrap(err, ErrCodeUnauthorized, "Your session has expired. Please sign in again.")
	case gateway.OutcomeHTTPError:
		return mapStatus(err, gateway.StatusOf(err))
	default:
		return Wrap(err, ErrCodeUpstream, "The locker service is unreachable.")
	}
}

func mapStatus(err error, status int) *AppError {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return Wrap(err, ErrCodeValidation, "The locker service rejected the request.")
	case http.StatusForbidden:
		return Wrap(err, ErrCodeForbidden, "You are not allowed to perform this action.")
	case http.StatusNotFound:
		return Wrap(err, ErrCodeNotFound, "The requested item no longer exists.")
	default:
		return Wrapf(err, ErrCodeUpstream, "The locker service failed (status %d).", status)
	}
}
