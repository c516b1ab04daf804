package controller

import (
	"context"

	"github.com/healteex/trackctl/internal/apperr"
	domainauth "github.com/healteex/trackctl/internal/domain/auth"
	"github.com/healteex/trackctl/internal/ports"
	"github.com/healteex/trackctl/internal/session"
)

// LoginForm holds the login screen's field state.
type LoginForm struct {
	Email    string
	Password string
	// Role disambiguates when one email has accounts under several roles.
	// Empty means any role.
	Role       string
	RememberMe bool
}

// LoginControllerOptions groups dependencies for LoginController.
type LoginControllerOptions struct {
	Sessions    *session.Store
	Credentials ports.CredentialProvider
	Nav         ports.Navigator
}

// LoginController drives the login screen: password sign-in plus the
// federated credential path.
type LoginController struct {
	sessions    *session.Store
	credentials ports.CredentialProvider
	nav         ports.Navigator

	state ScreenState
}

// NewLoginController constructs a LoginController.
func NewLoginController(opts LoginControllerOptions) *LoginController {
	return &LoginController{
		sessions:    opts.Sessions,
		credentials: opts.Credentials,
		nav:         opts.Nav,
		state:       ScreenState{Phase: PhaseIdle},
	}
}

// State returns the screen's lifecycle state.
func (c *LoginController) State() ScreenState {
	return c.state
}

// Submit signs in with password credentials. On success it navigates to the
// originally requested route, or the dashboard when there is none. On failure
// the error message becomes the screen status and the screen returns to idle
// for resubmission.
func (c *LoginController) Submit(ctx context.Context, form LoginForm, from string) error {
	if form.Email == "" || form.Password == "" {
		err := apperr.Validation("Email and password are required")
		c.state = ScreenState{Phase: PhaseIdle, Status: err.Message}
		return err
	}

	role, err := optionalRole(form.Role)
	if err != nil {
		c.state = ScreenState{Phase: PhaseIdle, Status: apperr.Message(err, "Unable to sign in")}
		return err
	}

	c.state = ScreenState{Phase: PhaseSubmitting}
	_, err = c.sessions.SignInWithPassword(ctx, ports.PasswordCredentials{
		Email:      form.Email,
		Password:   form.Password,
		Role:       role,
		RememberMe: form.RememberMe,
	})
	if err != nil {
		c.state = ScreenState{Phase: PhaseIdle, Status: apperr.Message(err, "Unable to sign in")}
		return err
	}

	c.state = ScreenState{Phase: PhaseIdle}
	if from == "" {
		from = RouteDashboard
	}
	c.nav.NavigateTo(from)
	return nil
}

// SubmitGoogle runs the federated path: obtain a credential from the identity
// provider, then perform the equivalent Google sign-in. Success always lands
// on the dashboard.
func (c *LoginController) SubmitGoogle(ctx context.Context, form LoginForm) error {
	if c.credentials == nil {
		err := apperr.Internal("Google sign-in is not configured")
		c.state = ScreenState{Phase: PhaseIdle, Status: err.Message}
		return err
	}

	role, err := optionalRole(form.Role)
	if err != nil {
		c.state = ScreenState{Phase: PhaseIdle, Status: apperr.Message(err, "Google sign-in failed")}
		return err
	}

	c.state = ScreenState{Phase: PhaseSubmitting}
	credential, err := c.credentials.Credential(ctx)
	if err != nil {
		c.state = ScreenState{Phase: PhaseIdle, Status: apperr.Message(err, "Google sign-in failed")}
		return err
	}

	_, err = c.sessions.SignInWithGoogle(ctx, ports.GoogleCredentials{
		IDToken:    credential,
		Role:       role,
		RememberMe: form.RememberMe,
	})
	if err != nil {
		c.state = ScreenState{Phase: PhaseIdle, Status: apperr.Message(err, "Google sign-in failed")}
		return err
	}

	c.state = ScreenState{Phase: PhaseIdle}
	c.nav.NavigateTo(RouteDashboard)
	return nil
}

// optionalRole parses a role string, treating empty as "any role".
func optionalRole(value string) (*domainauth.Role, error) {
	if value == "" {
		return nil, nil
	}
	role, ok := domainauth.ParseRole(value)
	if !ok {
		return nil, apperr.ValidationField("role", "unsupported role")
	}
	return &role, nil
}
