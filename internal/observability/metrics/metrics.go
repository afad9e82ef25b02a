// Package metrics records panel-level measurements: backend calls made through
// the API gateway and session lifecycle events.
package metrics

import (
	"time"

	obserrors "github.com/bokuwaitgel/smart-locker-panel/internal/observability/errors"
)

// Result constants for metric labels.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Session events.
const (
	SessionLogin   = "login"
	SessionLogout  = "logout"
	SessionExpired = "expired"
)

// GatewayCall captures one backend call for metric emission.
type GatewayCall struct {
	Method   string
	Route    string // path template, e.g. /lockers/{id}/status
	Outcome  string
	Status   int
	Duration time.Duration
	Err      error
}

// Recorder is the sink the gateway and HTTP layer report to.
type Recorder interface {
	ObserveGatewayCall(call GatewayCall)
	SessionEvent(event string)
}

// Noop discards everything.
type Noop struct{}

func (Noop) ObserveGatewayCall(GatewayCall) {}
func (Noop) SessionEvent(string)            {}

// OrNoop returns r, or Noop when r is nil.
func OrNoop(r Recorder) Recorder {
	if r == nil {
		return Noop{}
	}
	return r
}

// ErrorClass returns the error class label for a call ("" when it succeeded).
func ErrorClass(call GatewayCall) string {
	if call.Err == nil {
		return ""
	}
	return obserrors.Classify(call.Err)
}
