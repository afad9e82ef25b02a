package data

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jmespath-community/go-jmespath"

	"github.com/bokuwaitgel/smart-locker-panel/internal/gateway"
	"github.com/bokuwaitgel/smart-locker-panel/internal/ports"
)

// ErrInvalidCredentials is returned when the backend rejects the login.
var ErrInvalidCredentials = ports.ErrInvalidCredentials

// tokenExpr finds the token in the shapes the backend has used.
const tokenExpr = "token || accessToken || access_token || data.token || data.accessToken"

var _ ports.LoginProvider = (*LoginRepo)(nil)

// LoginRepo exchanges credentials for a token at the backend login endpoint.
type LoginRepo struct {
	gw   gateway.Doer
	path string
	expr string
}

// NewLoginRepo creates a LoginRepo posting to path. gw should not carry a session.
func NewLoginRepo(gw gateway.Doer, path string) (*LoginRepo, error) {
	if _, err := jmespath.Compile(tokenExpr); err != nil {
		return nil, fmt.Errorf("compile token expression: %w", err)
	}
	if path == "" {
		path = "/auth/login"
	}
	return &LoginRepo{gw: gw, path: path, expr: tokenExpr}, nil
}

func (r *LoginRepo) Authenticate(ctx context.Context, creds ports.Credentials) (string, error) {
	email := strings.TrimSpace(creds.Email)
	if email == "" || creds.Password == "" {
		return "", ErrInvalidCredentials
	}

	resp, err := r.gw.Do(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   r.path,
		JSON:   map[string]string{"email": email, "password": creds.Password},
	})
	if err != nil {
		switch gateway.StatusOf(err) {
		case http.StatusUnauthorized, http.StatusBadRequest, http.StatusNotFound:
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: %w", err)
	}

	var body any
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	found, err := jmespath.Search(r.expr, body)
	if err != nil {
		return "", fmt.Errorf("search login response: %w", err)
	}
	tok, _ := found.(string)
	if strings.TrimSpace(tok) == "" {
		return "", ErrMissingToken
	}
	return tok, nil
}
