package httpx

import (
	"context"
	"errors"
	"net/http"

	apperrors "github.com/bokuwaitgel/smart-locker-panel/internal/errors"
	"github.com/bokuwaitgel/smart-locker-panel/internal/service"
)

// ErrorRenderer renders page data, typically UIHandlers.renderDashboardPage.
type ErrorRenderer func(w http.ResponseWriter, r *http.Request, data map[string]any)

// ErrorOpts contains all options needed to render an error response.
type ErrorOpts struct {
	W http.ResponseWriter
	R *http.Request
	// Err is optional when only FieldErrors are reported.
	Err         error
	FieldErrors map[string]string
	Renderer    ErrorRenderer
	PageMeta    PageMeta
	// Data is merged into the template data, e.g. the submitted form and the page lists.
	Data map[string]any
	// StatusCode defaults to 200 so htmx swaps the response.
	StatusCode int
	// ShowToast adds a showToast trigger with the error message.
	ShowToast bool
}

// RenderError renders a page with a general message and field errors taken
// from Err and FieldErrors.
func RenderError(opts ErrorOpts) {
	if opts.Renderer == nil {
		http.Error(opts.W, "misconfigured error renderer", http.StatusInternalServerError)
		return
	}

	builder := NewTemplateData(opts.R, opts.PageMeta)
	generalError := processError(opts.Err, &opts.FieldErrors)
	builder.WithFieldErrors(opts.FieldErrors)

	switch {
	case generalError != "":
		builder.WithError(generalError)
	case len(opts.FieldErrors) > 0:
		builder.WithError(errMsgFixBelow)
	}

	for k, v := range opts.Data {
		builder.With(k, v)
	}

	if opts.ShowToast && generalError != "" {
		triggerToast(opts.W, generalError, flashError)
	}
	if opts.StatusCode != 0 {
		opts.W.WriteHeader(opts.StatusCode)
	}
	opts.Renderer(opts.W, opts.R, builder.Build())
}

// processError returns the general message for err and moves field-bound
// validation errors into fieldErrors.
func processError(err error, fieldErrors *map[string]string) string {
	if err == nil {
		return ""
	}
	if field := apperrors.GetField(err); field != "" && apperrors.IsValidation(err) && fieldErrors != nil {
		if *fieldErrors == nil {
			*fieldErrors = make(map[string]string)
		}
		(*fieldErrors)[field] = errorMessage(err, errMsgGeneric)
		return errMsgFixBelow
	}
	return errorMessage(err, errMsgGeneric)
}

// errorMessage returns the text to show an operator for err.
func errorMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "Request timed out. Please try again."
	}
	if errors.Is(err, context.Canceled) {
		return "Request was canceled."
	}

	var action *service.ActionError
	if errors.As(err, &action) && action.Message != "" {
		return action.Message
	}
	var appErr *apperrors.AppError
	if errors.As(apperrors.MapGatewayError(err), &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
