package errors

import (
	"context"
	goerrors "errors"
	"fmt"
	"testing"
)

type upstreamError struct{}

func (*upstreamError) Error() string { return "upstream" }

type labelledError struct{ label string }

func (e labelledError) Error() string      { return "labelled" }
func (e labelledError) ErrorClass() string { return e.label }

type slowNetError struct{}

func (slowNetError) Error() string   { return "i/o timeout" }
func (slowNetError) Timeout() bool   { return true }
func (slowNetError) Temporary() bool { return false }

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"plain", goerrors.New("boom"), "errors_errorstring"},
		{"wrapped pointer", fmt.Errorf("call: %w", &upstreamError{}), "errors_upstreamerror"},
		{"canceled", fmt.Errorf("call: %w", context.Canceled), "canceled"},
		{"deadline", context.DeadlineExceeded, "timeout"},
		{"labelled", fmt.Errorf("call: %w", labelledError{label: "http_5xx"}), "http_5xx"},
		{"empty label falls back", labelledError{}, "errors_labellederror"},
		{"net timeout", fmt.Errorf("dial: %w", slowNetError{}), "timeout"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.err); got != tc.want {
				t.Fatalf("Classify() = %q, want %q", got, tc.want)
			}
		})
	}
}
