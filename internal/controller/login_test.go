package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/healteex/trackctl/internal/apperr"
	domainauth "github.com/healteex/trackctl/internal/domain/auth"
	"github.com/healteex/trackctl/internal/mocks"
	authmocks "github.com/healteex/trackctl/internal/mocks/auth"
	"github.com/healteex/trackctl/internal/ports"
	"github.com/healteex/trackctl/internal/session"
	"github.com/healteex/trackctl/internal/testutil"
)

type loginFixture struct {
	accounts *mocks.MockAccountsAPI
	sessions *session.Store
	nav      *authmocks.RecordingNavigator
}

func newLoginFixture(t *testing.T) *loginFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountsAPI(ctrl)
	return &loginFixture{
		accounts: accounts,
		sessions: session.NewStore(context.Background(), session.Options{
			Accounts: accounts,
			Vault:    authmocks.NewMemoryVault(),
		}),
		nav: &authmocks.RecordingNavigator{},
	}
}

func (f *loginFixture) controller(credentials ports.CredentialProvider) *LoginController {
	return NewLoginController(LoginControllerOptions{
		Sessions:    f.sessions,
		Credentials: credentials,
		Nav:         f.nav,
	})
}

func TestLoginSubmit_NavigatesToDashboard(t *testing.T) {
	f := newLoginFixture(t)
	f.accounts.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		Return(testutil.AuthResponse(false), nil)

	login := f.controller(nil)
	err := login.Submit(context.Background(), LoginForm{
		Email:    "ada@example.org",
		Password: "hunter2",
	}, "")
	require.NoError(t, err)

	assert.True(t, f.sessions.IsAuthenticated())
	last, ok := f.nav.Last()
	require.True(t, ok)
	assert.Equal(t, RouteDashboard, last.Route)
	assert.True(t, login.State().Ready())
}

func TestLoginSubmit_ReturnsToRequestedRoute(t *testing.T) {
	f := newLoginFixture(t)
	f.accounts.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		Return(testutil.AuthResponse(false), nil)

	login := f.controller(nil)
	err := login.Submit(context.Background(), LoginForm{
		Email:    "ada@example.org",
		Password: "hunter2",
	}, "/dashboard?tab=alerts")
	require.NoError(t, err)

	last, ok := f.nav.Last()
	require.True(t, ok)
	assert.Equal(t, "/dashboard?tab=alerts", last.Route)
}

func TestLoginSubmit_RequiredFields(t *testing.T) {
	f := newLoginFixture(t)
	login := f.controller(nil)

	err := login.Submit(context.Background(), LoginForm{Email: "ada@example.org"}, "")
	require.Error(t, err)
	assert.Equal(t, "Email and password are required", login.State().Status)
	assert.Empty(t, f.nav.Calls)
}

func TestLoginSubmit_UnsupportedRole(t *testing.T) {
	f := newLoginFixture(t)
	login := f.controller(nil)

	err := login.Submit(context.Background(), LoginForm{
		Email:    "ada@example.org",
		Password: "hunter2",
		Role:     "janitor",
	}, "")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestLoginSubmit_BackendFailureSurfacesDetail(t *testing.T) {
	f := newLoginFixture(t)
	f.accounts.EXPECT().
		CreateToken(gomock.Any(), gomock.Any()).
		Return(domainauth.Response{}, apperr.RequestFailed(401, "No active account found"))

	login := f.controller(nil)
	err := login.Submit(context.Background(), LoginForm{
		Email:    "ada@example.org",
		Password: "wrong",
	}, "")
	require.Error(t, err)

	assert.Equal(t, "No active account found", login.State().Status)
	assert.True(t, login.State().Ready(), "screen must accept resubmission")
	assert.False(t, f.sessions.IsAuthenticated())
	assert.Empty(t, f.nav.Calls)
}

func TestLoginSubmitGoogle(t *testing.T) {
	f := newLoginFixture(t)
	f.accounts.EXPECT().
		GoogleSignIn(gomock.Any(), ports.GoogleCredentials{IDToken: "id-token", RememberMe: true}).
		Return(testutil.AuthResponse(true), nil)

	login := f.controller(&authmocks.StaticCredentialProvider{Token: "id-token"})
	err := login.SubmitGoogle(context.Background(), LoginForm{RememberMe: true})
	require.NoError(t, err)

	assert.True(t, f.sessions.IsAuthenticated())
	last, ok := f.nav.Last()
	require.True(t, ok)
	assert.Equal(t, RouteDashboard, last.Route)
}

func TestLoginSubmitGoogle_ProviderFailure(t *testing.T) {
	f := newLoginFixture(t)

	login := f.controller(&authmocks.StaticCredentialProvider{Err: errors.New("consent denied")})
	err := login.SubmitGoogle(context.Background(), LoginForm{})
	require.Error(t, err)

	assert.Equal(t, "consent denied", login.State().Status)
	assert.False(t, f.sessions.IsAuthenticated())
}

func TestLoginSubmitGoogle_NotConfigured(t *testing.T) {
	f := newLoginFixture(t)

	login := f.controller(nil)
	err := login.SubmitGoogle(context.Background(), LoginForm{})
	require.Error(t, err)
	assert.Equal(t, "Google sign-in is not configured", login.State().Status)
}
