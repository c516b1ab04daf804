package ports

// Package ports defines interfaces (hexagonal ports) for the client's
// collaborators. Implementations live in internal/api and internal/adapters;
// orchestration in internal/session, internal/service, and
// internal/controller.

import (
	"context"

	domainauth "github.com/healteex/trackctl/internal/domain/auth"
	"github.com/healteex/trackctl/internal/domain/model"
)

// PasswordCredentials carries inputs for a password sign-in.
type PasswordCredentials struct {
	Email      string
	Password   string
	Role       *domainauth.Role
	RememberMe bool
}

// GoogleCredentials carries a verified Google ID token for federated sign-in.
type GoogleCredentials struct {
	IDToken    string
	Role       *domainauth.Role
	RememberMe bool
}

// SignupVerification carries inputs for completing email signup.
type SignupVerification struct {
	Token      string
	Password   string
	FirstName  string
	LastName   string
	RememberMe bool
}

// SignupReceipt is the backend's acknowledgement of a signup request.
type SignupReceipt struct {
	Detail           string `json:"detail"`
	ExpiresInMinutes int    `json:"expires_in_minutes"`
}

// AccountsAPI covers the authentication endpoints of the backend.
type AccountsAPI interface {
	// CreateToken exchanges password credentials for a full auth payload.
	CreateToken(ctx context.Context, creds PasswordCredentials) (domainauth.Response, error)

	// GoogleSignIn exchanges a Google ID token for a full auth payload.
	GoogleSignIn(ctx context.Context, creds GoogleCredentials) (domainauth.Response, error)

	// RefreshToken exchanges a refresh token for a fresh access token.
	RefreshToken(ctx context.Context, refreshToken string) (domainauth.RefreshResponse, error)

	// RequestSignup asks the backend to email a verification token.
	RequestSignup(ctx context.Context, email string, role domainauth.Role) (SignupReceipt, error)

	// VerifySignup completes signup and returns the auth payload for the new account.
	VerifySignup(ctx context.Context, v SignupVerification) (domainauth.Response, error)
}

// InventoryAPI covers the inventory resource collections of the backend.
// All operations require a valid access token.
type InventoryAPI interface {
	ListFacilities(ctx context.Context, accessToken string) ([]model.Facility, error)
	ListMedicines(ctx context.Context, accessToken string) ([]model.Medicine, error)
	ListTransactions(ctx context.Context, accessToken string) ([]model.InventoryTransaction, error)
	ListStockSnapshots(ctx context.Context, accessToken string) ([]model.StockSnapshot, error)
	ListForecasts(ctx context.Context, accessToken string) ([]model.Forecast, error)
	ListAlerts(ctx context.Context, accessToken string) ([]model.Alert, error)

	CreateFacility(ctx context.Context, accessToken string, req *model.CreateFacilityRequest) (model.Facility, error)
	CreateTransaction(ctx context.Context, accessToken string, req *model.CreateTransactionRequest) (model.InventoryTransaction, error)
}

// SessionVault persists the serialized session across process restarts.
// Exactly one of the two locations holds a session at a time: the durable one
// when the user opted to be remembered, the scoped one otherwise.
type SessionVault interface {
	// ReadDurable returns the session from durable storage, or false when absent.
	ReadDurable(ctx context.Context) (domainauth.Session, bool, error)

	// ReadScoped returns the session from session-scoped storage, or false when absent.
	ReadScoped(ctx context.Context) (domainauth.Session, bool, error)

	// WriteDurable stores the session durably and clears the scoped location.
	WriteDurable(ctx context.Context, sess domainauth.Session) error

	// WriteScoped stores the session in the scoped location and clears the durable one.
	WriteScoped(ctx context.Context, sess domainauth.Session) error

	// Clear removes the session from both locations.
	Clear(ctx context.Context) error
}

// CredentialProvider obtains a raw Google ID-token credential from the
// external identity provider. The session layer depends on the provider only
// through this narrow surface so the identity widget's lifecycle stays out of
// the auth flow.
type CredentialProvider interface {
	Credential(ctx context.Context) (string, error)
}

// Navigator moves the user between screens. Controllers call it on success
// transitions; the guard calls it to bounce anonymous visitors to login.
type Navigator interface {
	// NavigateTo moves to route, replacing the current location.
	NavigateTo(route string)

	// NavigateFrom moves to route and records from so a later success can
	// return the user there.
	NavigateFrom(route, from string)
}
