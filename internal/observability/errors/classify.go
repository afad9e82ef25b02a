package errors

import (
	"context"
	goerrors "errors"
	"net"
	"reflect"
	"strings"
)

// Classed is implemented by errors that carry their own metrics label.
// Gateway errors use it so the label survives wrapping.
type Classed interface {
	ErrorClass() string
}

// Classify returns a low-cardinality error label for the gateway_requests_total
// error_class dimension and for logs.
//
// Order: context cancellation and deadlines, then the outermost Classed error
// in the chain, then network timeouts, then the innermost concrete type name
// in snake case.
func Classify(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case goerrors.Is(err, context.Canceled):
		return "canceled"
	case goerrors.Is(err, context.DeadlineExceeded):
		return "timeout"
	}

	var classed Classed
	if goerrors.As(err, &classed) {
		if label := classed.ErrorClass(); label != "" {
			return label
		}
	}

	var netErr net.Error
	if goerrors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}

	return typeName(err)
}

func typeName(err error) string {
	for {
		unwrapped := goerrors.Unwrap(err)
		if unwrapped == nil {
			break
		}
		err = unwrapped
	}

	t := reflect.TypeOf(err)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "unknown"
	}
	name := strings.ToLower(strings.ReplaceAll(t.String(), ".", "_"))
	if name == "" {
		return "unknown"
	}
	return name
}
