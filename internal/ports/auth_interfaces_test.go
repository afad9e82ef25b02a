package ports_test

import (
	"context"
	"testing"

	"github.com/bokuwaitgel/smart-locker-panel/internal/adapters/jwtclaims"
	mocks "github.com/bokuwaitgel/smart-locker-panel/internal/mocks/auth"
	"github.com/bokuwaitgel/smart-locker-panel/internal/ports"
)

// This test only verifies that our adapters and doubles conform to the ports at compile time.
func TestImplementationsSatisfyPorts(t *testing.T) {
	t.Helper()

	var _ ports.TokenStore = (*mocks.MemoryTokenStore)(nil)
	var _ ports.LoginProvider = (*mocks.StaticLoginProvider)(nil)
	var _ ports.Navigator = (*mocks.RecordingNavigator)(nil)
	var _ ports.TokenDecoder = jwtclaims.Decoder{}
}

func TestNavigatorFunc(t *testing.T) {
	var got string
	var nav ports.Navigator = ports.NavigatorFunc(func(_ context.Context, target string) { got = target })
	nav.Navigate(context.Background(), "/login")
	if got != "/login" {
		t.Fatalf("expected /login, got %q", got)
	}
}
