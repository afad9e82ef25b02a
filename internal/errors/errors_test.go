package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bokuwaitgel/smart-locker-panel/internal/gateway"
)

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "bad", Validation("bad").Error())
	assert.Equal(t, "wrapped: cause", Wrap(errors.New("cause"), ErrCodeInternal, "wrapped").Error())
	assert.Equal(t, "status 3", Validationf("status %d", 3).Error())
}

func TestConstructors_KeepMessageVerbatim(t *testing.T) {
	msg := "disk 100% full, locker %d"
	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
	}{
		{"not found", NotFound(msg), ErrCodeNotFound},
		{"validation", Validation(msg), ErrCodeValidation},
		{"validation field", ValidationField("boardId", msg), ErrCodeValidation},
		{"unauthorized", Unauthorized(msg), ErrCodeUnauthorized},
		{"internal", Internal(msg), ErrCodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, msg, tt.err.Error())
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root")
	err := fmt.Errorf("outer: %w", Wrap(cause, ErrCodeUpstream, "upstream"))
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsUpstream(err))
	assert.Equal(t, ErrCodeUpstream, GetCode(err))
}

func TestWrap_NilError(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "x"))
}

func TestValidationField(t *testing.T) {
	err := ValidationField("boardId", "board id is required")
	assert.True(t, IsValidation(err))
	assert.Equal(t, "boardId", GetField(err))
	assert.Empty(t, GetField(errors.New("plain")))
}

func TestMapGatewayError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"auth expired", fmt.Errorf("GET /x: %w", gateway.ErrAuthExpired), ErrCodeUnauthorized},
		{"bad request", &gateway.HTTPError{Status: http.StatusBadRequest}, ErrCodeValidation},
		{"forbidden", &gateway.HTTPError{Status: http.StatusForbidden}, ErrCodeForbidden},
		{"not found", &gateway.HTTPError{Status: http.StatusNotFound}, ErrCodeNotFound},
		{"server error", &gateway.HTTPError{Status: http.StatusBadGateway}, ErrCodeUpstream},
		{"network", &gateway.NetworkError{Err: errors.New("dial tcp")}, ErrCodeUpstream},
		{"timeout", &gateway.NetworkError{Err: context.DeadlineExceeded}, ErrCodeTimeout},
		{"canceled", &gateway.NetworkError{Err: context.Canceled}, ErrCodeCanceled},
		{"app error passes", NotFound("gone"), ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetCode(MapGatewayError(tt.err)))
		})
	}
	assert.NoError(t, MapGatewayError(nil))
}
