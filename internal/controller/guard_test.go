package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authmocks "github.com/healteex/trackctl/internal/mocks/auth"
	"github.com/healteex/trackctl/internal/session"
	"github.com/healteex/trackctl/internal/testutil"
)

func TestGuard_AllowsAuthenticated(t *testing.T) {
	vault := authmocks.NewMemoryVault()
	sess := testutil.AuthSession(true)
	vault.Durable = &sess
	sessions := session.NewStore(context.Background(), session.Options{Vault: vault})
	nav := &authmocks.RecordingNavigator{}

	guard := NewGuard(sessions, nav)
	assert.True(t, guard.Allow(RouteDashboard))
	assert.Empty(t, nav.Calls)
}

func TestGuard_BouncesAnonymousPreservingRoute(t *testing.T) {
	sessions := session.NewStore(context.Background(), session.Options{Vault: authmocks.NewMemoryVault()})
	nav := &authmocks.RecordingNavigator{}

	guard := NewGuard(sessions, nav)
	assert.False(t, guard.Allow("/dashboard?tab=alerts"))

	last, ok := nav.Last()
	require.True(t, ok)
	assert.Equal(t, RouteLogin, last.Route)
	assert.Equal(t, "/dashboard?tab=alerts", last.From, "requested route must survive the bounce")
}
