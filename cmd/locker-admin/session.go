package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bokuwaitgel/smart-locker-panel/internal/adapters/jwtclaims"
	"github.com/bokuwaitgel/smart-locker-panel/internal/adapters/memstore"
	"github.com/bokuwaitgel/smart-locker-panel/internal/data"
	"github.com/bokuwaitgel/smart-locker-panel/internal/gateway"
	"github.com/bokuwaitgel/smart-locker-panel/internal/ports"
	"github.com/bokuwaitgel/smart-locker-panel/internal/service"
)

var (
	errSessionExpired = errors.New("session expired: log in again and update " + tokenEnv)
	errNotLoggedIn    = errors.New("not logged in: set " + tokenEnv + " to a valid, unexpired token")
)

// adminSession is the CLI counterpart of a browser request scope: one
// session, one bound gateway client and the panel services on top.
type adminSession struct {
	Session *service.SessionService
	Client  *gateway.Client
	Panel   *service.Panel
	Auth    *service.AuthService
}

func openSession(cmdCtx *commandContext) (*adminSession, error) {
	cfg := cmdCtx.Config
	transport, err := gateway.NewTransport(gateway.TransportOptions{
		BaseURL:   cfg.Backend.BaseURL,
		Timeout:   cfg.Backend.Timeout,
		LoginPath: cfg.Auth.LoginPath,
		CookieJar: true,
		Logger:    cmdCtx.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build gateway: %w", err)
	}
	messages, err := service.NewMessageExtractor(cfg.Backend.ErrorMessageExpr)
	if err != nil {
		return nil, err
	}
	logins, err := data.NewLoginRepo(transport.Anonymous(), cfg.Backend.LoginPath)
	if err != nil {
		return nil, err
	}

	session := service.NewSessionService(service.SessionServiceOptions{
		Tokens:  memstore.New(strings.TrimSpace(cmdCtx.Token), 0),
		Decoder: jwtclaims.Decoder{},
		TTL:     cfg.Auth.TokenTTL,
		Logger:  cmdCtx.Logger,
	})
	nav := ports.NavigatorFunc(func(ctx context.Context, _ string) {
		cmdCtx.Logger.WarnContext(ctx, "backend rejected the token")
	})
	client := transport.Bind(session, nav)

	return &adminSession{
		Session: session,
		Client:  client,
		Panel: service.NewPanel(service.PanelOptions{
			Backend:  data.NewBackend(client),
			Messages: messages,
			Logger:   cmdCtx.Logger,
		}),
		Auth: service.NewAuthService(service.AuthServiceOptions{Provider: logins, Logger: cmdCtx.Logger}),
	}, nil
}

// openLoggedIn opens a session and requires the token to be usable.
func openLoggedIn(cmdCtx *commandContext) (*adminSession, error) {
	s, err := openSession(cmdCtx)
	if err != nil {
		return nil, err
	}
	s.Session.Hydrate(cmdCtx.Ctx)
	if !s.Session.IsAuthenticated() {
		return nil, errNotLoggedIn
	}
	return s, nil
}

// check turns a 401 anywhere in err into errSessionExpired.
func (s *adminSession) check(err error) error {
	if err == nil {
		return nil
	}
	if s.Client.Expired() || gateway.Classify(err) == gateway.OutcomeAuthExpired {
		return errSessionExpired
	}
	return err
}
