package data

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bokuwaitgel/smart-locker-panel/internal/gateway"
	"github.com/bokuwaitgel/smart-locker-panel/internal/ports"
)

func TestLoginRepo_TokenShapes(t *testing.T) {
	t.Parallel()

	for name, body := range map[string]string{
		"token":        `{"token":"t1"}`,
		"accessToken":  `{"accessToken":"t1"}`,
		"data.token":   `{"data":{"token":"t1","user":{"id":1}}}`,
		"access_token": `{"access_token":"t1","token_type":"bearer"}`,
	} {
		t.Run(name, func(t *testing.T) {
			gw := newDoer(t)
			gw.EXPECT().Do(gomock.Any(), gateway.Request{
				Method: http.MethodPost,
				Path:   "/auth/login",
				JSON:   map[string]string{"email": "ops@example.com", "password": "pw"},
			}).Return(jsonResp(body), nil)

			repo, err := NewLoginRepo(gw, "")
			require.NoError(t, err)
			tok, err := repo.Authenticate(context.Background(), ports.Credentials{Email: " ops@example.com ", Password: "pw"})
			require.NoError(t, err)
			assert.Equal(t, "t1", tok)
		})
	}
}

func TestLoginRepo_Rejected(t *testing.T) {
	t.Parallel()

	gw := newDoer(t)
	gw.EXPECT().Do(gomock.Any(), gomock.Any()).Return(nil, &gateway.HTTPError{Status: http.StatusBadRequest})
	gw.EXPECT().Do(gomock.Any(), gomock.Any()).Return(nil, gateway.ErrAuthExpired)
	gw.EXPECT().Do(gomock.Any(), gomock.Any()).Return(nil, &gateway.HTTPError{Status: http.StatusInternalServerError})
	gw.EXPECT().Do(gomock.Any(), gomock.Any()).Return(jsonResp(`{"user":{}}`), nil)

	repo, err := NewLoginRepo(gw, "/api/login")
	require.NoError(t, err)
	creds := ports.Credentials{Email: "a@b.c", Password: "x"}

	_, err = repo.Authenticate(context.Background(), creds)
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = repo.Authenticate(context.Background(), creds)
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = repo.Authenticate(context.Background(), creds)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	_, err = repo.Authenticate(context.Background(), creds)
	require.ErrorIs(t, err, ErrMissingToken)
}

func TestLoginRepo_EmptyCredentialsSkipBackend(t *testing.T) {
	t.Parallel()

	repo, err := NewLoginRepo(newDoer(t), "")
	require.NoError(t, err)
	_, err = repo.Authenticate(context.Background(), ports.Credentials{Email: "", Password: "x"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
