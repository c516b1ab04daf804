package api

import (
	"context"
	"net/http"

	domainauth "github.com/healteex/trackctl/internal/domain/auth"
	"github.com/healteex/trackctl/internal/ports"
)

// Accounts endpoints, JWT scheme. Paths are relative to the configured base.
const (
	pathJWTCreate     = "/auth/jwt/create/"
	pathJWTRefresh    = "/auth/jwt/refresh/"
	pathGoogleSignIn  = "/auth/google/"
	pathSignupRequest = "/v1/accounts/signup/request/"
	pathSignupVerify  = "/v1/accounts/signup/verify/"
)

// loginBody is the wire payload for password sign-in.
type loginBody struct {
	Email      string           `json:"email"`
	Password   string           `json:"password"`
	Role       *domainauth.Role `json:"role,omitempty"`
	RememberMe bool             `json:"remember_me"`
}

// googleBody is the wire payload for federated sign-in.
type googleBody struct {
	IDToken    string           `json:"id_token"`
	Role       *domainauth.Role `json:"role,omitempty"`
	RememberMe bool             `json:"remember_me"`
}

// refreshBody is the wire payload for token refresh.
type refreshBody struct {
	Refresh string `json:"refresh"`
}

// signupRequestBody is the wire payload for requesting a signup token.
type signupRequestBody struct {
	Email string          `json:"email"`
	Role  domainauth.Role `json:"role"`
}

// signupVerifyBody is the wire payload for completing signup.
type signupVerifyBody struct {
	Token      string `json:"token"`
	Password   string `json:"password,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	RememberMe bool   `json:"remember_me"`
}

// CreateToken exchanges password credentials for a full auth payload.
func (c *Client) CreateToken(ctx context.Context, creds ports.PasswordCredentials) (domainauth.Response, error) {
	var out domainauth.Response
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   pathJWTCreate,
		body: loginBody{
			Email:      creds.Email,
			Password:   creds.Password,
			Role:       creds.Role,
			RememberMe: creds.RememberMe,
		},
	}, &out)
	return out, err
}

// GoogleSignIn exchanges a Google ID token for a full auth payload.
func (c *Client) GoogleSignIn(ctx context.Context, creds ports.GoogleCredentials) (domainauth.Response, error) {
	var out domainauth.Response
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   pathGoogleSignIn,
		body: googleBody{
			IDToken:    creds.IDToken,
			Role:       creds.Role,
			RememberMe: creds.RememberMe,
		},
	}, &out)
	return out, err
}

// RefreshToken exchanges a refresh token for a fresh access token.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (domainauth.RefreshResponse, error) {
	var out domainauth.RefreshResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   pathJWTRefresh,
		body:   refreshBody{Refresh: refreshToken},
	}, &out)
	return out, err
}

// RequestSignup asks the backend to email a verification token.
func (c *Client) RequestSignup(ctx context.Context, email string, role domainauth.Role) (ports.SignupReceipt, error) {
	var out ports.SignupReceipt
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   pathSignupRequest,
		body:   signupRequestBody{Email: email, Role: role},
	}, &out)
	return out, err
}

// VerifySignup completes signup and returns the auth payload for the new
// account, so no separate login round-trip is needed.
func (c *Client) VerifySignup(ctx context.Context, v ports.SignupVerification) (domainauth.Response, error) {
	var out domainauth.Response
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   pathSignupVerify,
		body: signupVerifyBody{
			Token:      v.Token,
			Password:   v.Password,
			FirstName:  v.FirstName,
			LastName:   v.LastName,
			RememberMe: v.RememberMe,
		},
	}, &out)
	return out, err
}
