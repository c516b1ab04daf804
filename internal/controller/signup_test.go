package controller

import (
	"context"
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

func TestSignupRequest_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountsAPI(ctrl)
	accounts.EXPECT().
		RequestSignup(gomock.Any(), "new@example.org", domainauth.RoleFacilityAdmin).
		Return(ports.SignupReceipt{Detail: "Verification email sent", ExpiresInMinutes: 30}, nil)

	signup := NewSignupRequestController(accounts)
	err := signup.Submit(context.Background(), SignupRequestForm{
		Email: "new@example.org",
		Role:  "facility_admin",
	})
	require.NoError(t, err)

	receipt := signup.Receipt()
	require.NotNil(t, receipt)
	assert.Equal(t, 30, receipt.ExpiresInMinutes)
	assert.Equal(t, "Verification email sent", signup.State().Status)
	assert.Equal(t, RouteSignupVerify+"?role=facility_admin", signup.VerifyRoute())
}

func TestSignupRequest_RequiresEmailAndRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	signup := NewSignupRequestController(mocks.NewMockAccountsAPI(ctrl))

	err := signup.Submit(context.Background(), SignupRequestForm{Role: "pharmacist"})
	require.Error(t, err)
	assert.Equal(t, "Email is required", signup.State().Status)

	err = signup.Submit(context.Background(), SignupRequestForm{Email: "a@b.c", Role: "janitor"})
	require.Error(t, err)
	assert.Equal(t, "Select a role to continue", signup.State().Status)
	assert.Nil(t, signup.Receipt())
	assert.Equal(t, "", signup.VerifyRoute())
}

func TestSignupRequest_BackendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountsAPI(ctrl)
	accounts.EXPECT().
		RequestSignup(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(ports.SignupReceipt{}, apperr.RequestFailed(429, "Too many signup attempts"))

	signup := NewSignupRequestController(accounts)
	err := signup.Submit(context.Background(), SignupRequestForm{
		Email: "new@example.org",
		Role:  "pharmacist",
	})
	require.Error(t, err)
	assert.Equal(t, "Too many signup attempts", signup.State().Status)
	assert.Nil(t, signup.Receipt())
}

func TestSignupVerify_PrefillsQueryToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	verify := NewSignupVerifyController(SignupVerifyControllerOptions{
		Accounts: mocks.NewMockAccountsAPI(ctrl),
	}, "tok-from-link")

	assert.Equal(t, "tok-from-link", verify.Form().Token)
}

func TestSignupVerify_EstablishesSessionDirectly(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mocks.NewMockAccountsAPI(ctrl)
	sessions := session.NewStore(context.Background(), session.Options{
		Accounts: accounts,
		Vault:    authmocks.NewMemoryVault(),
	})
	nav := &authmocks.RecordingNavigator{}

	accounts.EXPECT().
		VerifySignup(gomock.Any(), ports.SignupVerification{
			Token:      "verify-token",
			Password:   "hunter2",
			FirstName:  "Ada",
			LastName:   "Obi",
			RememberMe: true,
		}).
		Return(testutil.AuthResponse(true), nil)

	verify := NewSignupVerifyController(SignupVerifyControllerOptions{
		Accounts: accounts,
		Sessions: sessions,
		Nav:      nav,
	}, "")
	err := verify.Submit(context.Background(), SignupVerifyForm{
		Token:      "verify-token",
		Password:   "hunter2",
		FirstName:  "Ada",
		LastName:   "Obi",
		RememberMe: true,
	})
	require.NoError(t, err)

	// The returned payload signs the user in with no separate login step.
	assert.True(t, sessions.IsAuthenticated())
	last, ok := nav.Last()
	require.True(t, ok)
	assert.Equal(t, RouteDashboard, last.Route)
}

func TestSignupVerify_RequiresToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	verify := NewSignupVerifyController(SignupVerifyControllerOptions{
		Accounts: mocks.NewMockAccountsAPI(ctrl),
	}, "")

	err := verify.Submit(context.Background(), SignupVerifyForm{Password: "hunter2"})
	require.Error(t, err)
	assert.Equal(t, "Verification token is required", verify.State().Status)
}
