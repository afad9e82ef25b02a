package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jmespath-community/go-jmespath"

	"github.com/bokuwaitgel/smart-locker-panel/internal/gateway"
)

// DefaultMessageExpr pulls a message from the error shapes the backend answers with.
const DefaultMessageExpr = "message || error.message || error"

// MessageExtractor finds a human readable message in a backend response body.
type MessageExtractor struct {
	expr string
}

// NewMessageExtractor validates expr and returns an extractor using it.
// An empty expr selects DefaultMessageExpr.
func NewMessageExtractor(expr string) (*MessageExtractor, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		expr = DefaultMessageExpr
	}
	if _, err := jmespath.Compile(expr); err != nil {
		return nil, fmt.Errorf("compile message expression %q: %w", expr, err)
	}
	return &MessageExtractor{expr: expr}, nil
}

// FromBody returns the message found in body, or fallback.
func (m *MessageExtractor) FromBody(body []byte, fallback string) string {
	if m == nil || len(body) == 0 {
		return fallback
	}
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return fallback
	}
	found, err := jmespath.Search(m.expr, doc)
	if err != nil {
		return fallback
	}
	if s, ok := found.(string); ok && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s)
	}
	return fallback
}

// FromError returns the message carried by a failed gateway call, or fallback.
func (m *MessageExtractor) FromError(err error, fallback string) string {
	return m.FromBody(gateway.BodyOf(err), fallback)
}

// ActionError is a failed user action with the message the panel should show.
type ActionError struct {
	Message string
	Err     error
}

func (e *ActionError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ActionError) Unwrap() error { return e.Err }

// UserMessage returns the message to display for err, or fallback when err
// carries none.
func UserMessage(err error, fallback string) string {
	var ae *ActionError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return fallback
}

// actionError wraps a failed call unless the session expired, in which case
// the error is returned as is for the global handling to act on.
func (m *MessageExtractor) actionError(err error, fallback string) error {
	if gateway.Classify(err) == gateway.OutcomeAuthExpired {
		return err
	}
	return &ActionError{Message: m.FromError(err, fallback), Err: err}
}
