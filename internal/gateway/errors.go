package gateway

import (
	"errors"
	"fmt"
)

// ErrAuthExpired is returned when the backend answered 401. By the time a caller
// sees it the token has been removed and the login redirect has fired.
var ErrAuthExpired error = authExpiredError{}

type authExpiredError struct{}

func (authExpiredError) Error() string      { return "session expired" }
func (authExpiredError) ErrorClass() string { return "auth_expired" }

// HTTPError is any non-2xx status other than 401, passed through unmodified.
type HTTPError struct {
	Method string
	Path   string
	Status int
	Body   []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: backend returned %d", e.Method, e.Path, e.Status)
}

// ErrorClass labels the error by status family, e.g. "http_4xx".
func (e *HTTPError) ErrorClass() string {
	if e.Status < 100 || e.Status > 599 {
		return "http_other"
	}
	return fmt.Sprintf("http_%dxx", e.Status/100)
}

// NetworkError wraps a failure to reach the backend or to read its answer.
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ErrorClass labels transport failures; timeouts and cancellations inside are
// labelled by the classifier before this is consulted.
func (e *NetworkError) ErrorClass() string { return "network" }

// Outcome tags the result of a gateway call.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeAuthExpired
	OutcomeHTTPError
	OutcomeNetworkError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeAuthExpired:
		return "auth_expired"
	case OutcomeHTTPError:
		return "http_error"
	default:
		return "network_error"
	}
}

// Classify maps an error returned by Client.Do (or anything wrapping one) to
// its Outcome. Errors the gateway did not produce count as network errors.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	if errors.Is(err, ErrAuthExpired) {
		return OutcomeAuthExpired
	}
	var he *HTTPError
	if errors.As(err, &he) {
		return OutcomeHTTPError
	}
	return OutcomeNetworkError
}

// StatusOf returns the backend status carried by err, or 0.
func StatusOf(err error) int {
	if errors.Is(err, ErrAuthExpired) {
		return 401
	}
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Status
	}
	return 0
}

// BodyOf returns the response body carried by an HTTPError, or nil.
func BodyOf(err error) []byte {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Body
	}
	return nil
}
