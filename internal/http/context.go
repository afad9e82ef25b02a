package httpx

import (
	"context"

	"github.com/bokuwaitgel/smart-locker-panel/internal/gateway"
	"github.com/bokuwaitgel/smart-locker-panel/internal/service"
)

// RequestScope holds everything built for one browser request: the session,
// the gateway client bound to it and the panel services using that client.
type RequestScope struct {
	Session *service.SessionService
	Client  *gateway.Client
	Panel   *service.Panel
}

type scopeKey struct{}

// WithRequestScope returns a child context carrying scope. A nil scope leaves ctx unchanged.
func WithRequestScope(ctx context.Context, scope *RequestScope) context.Context {
	if scope == nil {
		return ctx
	}
	return context.WithValue(ctx, scopeKey{}, scope)
}

// ScopeFromContext returns the request scope and whether one is present.
func ScopeFromContext(ctx context.Context) (*RequestScope, bool) {
	scope, ok := ctx.Value(scopeKey{}).(*RequestScope)
	return scope, ok && scope != nil
}

// SessionFromContext returns the session of the current request, or nil.
func SessionFromContext(ctx context.Context) *service.SessionService {
	if scope, ok := ScopeFromContext(ctx); ok {
		return scope.Session
	}
	return nil
}

// IsAnonymous reports whether the request has no authenticated session.
func IsAnonymous(ctx context.Context) bool {
	s := SessionFromContext(ctx)
	return s == nil || !s.IsAuthenticated()
}
