package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bokuwaitgel/smart-locker-panel/internal/gateway"
)

func TestMessageExtractor_FromBody(t *testing.T) {
	m, err := NewMessageExtractor("")
	require.NoError(t, err)

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "top-level message", body: `{"message":"Locker busy"}`, want: "Locker busy"},
		{name: "nested error message", body: `{"error":{"message":"Board offline"}}`, want: "Board offline"},
		{name: "error string", body: `{"error":"Bad request"}`, want: "Bad request"},
		{name: "blank message", body: `{"message":"  "}`, want: "fallback"},
		{name: "not json", body: `<html>502</html>`, want: "fallback"},
		{name: "empty", body: ``, want: "fallback"},
		{name: "non-string message", body: `{"message":42}`, want: "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.FromBody([]byte(tt.body), "fallback"))
		})
	}
}

func TestMessageExtractor_CustomExpr(t *testing.T) {
	m, err := NewMessageExtractor("detail")
	require.NoError(t, err)
	assert.Equal(t, "nope", m.FromBody([]byte(`{"detail":"nope","message":"other"}`), "x"))

	_, err = NewMessageExtractor("message ||")
	require.Error(t, err)
}

func TestMessageExtractor_NilAndErrors(t *testing.T) {
	var m *MessageExtractor
	assert.Equal(t, "fb", m.FromBody([]byte(`{"message":"x"}`), "fb"))

	m, err := NewMessageExtractor(DefaultMessageExpr)
	require.NoError(t, err)
	httpErr := fmt.Errorf("open: %w", &gateway.HTTPError{Status: http.StatusConflict, Body: []byte(`{"message":"Already open"}`)})
	assert.Equal(t, "Already open", m.FromError(httpErr, "fb"))
	assert.Equal(t, "fb", m.FromError(errors.New("dial tcp"), "fb"))
}

func TestActionError(t *testing.T) {
	m, err := NewMessageExtractor("")
	require.NoError(t, err)

	cause := &gateway.HTTPError{Status: http.StatusBadRequest, Body: []byte(`{"message":"Invalid board"}`)}
	got := m.actionError(cause, "fb")
	var ae *ActionError
	require.ErrorAs(t, got, &ae)
	assert.Equal(t, "Invalid board", ae.Message)
	assert.ErrorIs(t, got, cause)
	assert.Equal(t, "Invalid board", UserMessage(got, "other"))
	assert.Equal(t, "other", UserMessage(errors.New("x"), "other"))

	expired := fmt.Errorf("call: %w", gateway.ErrAuthExpired)
	assert.Same(t, expired, m.actionError(expired, "fb"))
}
