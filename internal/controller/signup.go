package controller

import (
	"context"

	"github.com/healteex/trackctl/internal/apperr"
	domainauth "github.com/healteex/trackctl/internal/domain/auth"
	"github.com/healteex/trackctl/internal/ports"
	"github.com/healteex/trackctl/internal/session"
)

// SignupRequestForm holds the signup-request screen's field state.
type SignupRequestForm struct {
	Email string
	Role  string
}

// SignupRequestController drives the screen that asks the backend to email a
// verification token.
type SignupRequestController struct {
	accounts ports.AccountsAPI

	state   ScreenState
	receipt *ports.SignupReceipt
	role    domainauth.Role
}

// NewSignupRequestController constructs a SignupRequestController.
func NewSignupRequestController(accounts ports.AccountsAPI) *SignupRequestController {
	return &SignupRequestController{
		accounts: accounts,
		state:    ScreenState{Phase: PhaseIdle},
	}
}

// State returns the screen's lifecycle state.
func (c *SignupRequestController) State() ScreenState {
	return c.state
}

// Receipt returns the backend acknowledgement after a successful request,
// carrying the token expiry hint. Nil until then.
func (c *SignupRequestController) Receipt() *ports.SignupReceipt {
	return c.receipt
}

// VerifyRoute returns the verification route with the chosen role carried
// forward as a query parameter. Empty until a request succeeds.
func (c *SignupRequestController) VerifyRoute() string {
	if c.receipt == nil {
		return ""
	}
	return RouteSignupVerify + "?role=" + c.role.String()
}

// Submit requests a signup token for the email and role.
func (c *SignupRequestController) Submit(ctx context.Context, form SignupRequestForm) error {
	if form.Email == "" {
		err := apperr.Validation("Email is required")
		c.state = ScreenState{Phase: PhaseIdle, Status: err.Message}
		return err
	}
	role, ok := domainauth.ParseRole(form.Role)
	if !ok {
		err := apperr.ValidationField("role", "Select a role to continue")
		c.state = ScreenState{Phase: PhaseIdle, Status: err.Message}
		return err
	}

	c.state = ScreenState{Phase: PhaseSubmitting}
	receipt, err := c.accounts.RequestSignup(ctx, form.Email, role)
	if err != nil {
		c.state = ScreenState{Phase: PhaseIdle, Status: apperr.Message(err, "Unable to request signup")}
		return err
	}

	c.receipt = &receipt
	c.role = role
	c.state = ScreenState{Phase: PhaseIdle, Status: receipt.Detail}
	return nil
}

// SignupVerifyForm holds the signup-verify screen's field state.
type SignupVerifyForm struct {
	Token      string
	Password   string
	FirstName  string
	LastName   string
	RememberMe bool
}

// SignupVerifyControllerOptions groups dependencies for
// SignupVerifyController.
type SignupVerifyControllerOptions struct {
	Accounts ports.AccountsAPI
	Sessions *session.Store
	Nav      ports.Navigator
}

// SignupVerifyController drives the screen that completes signup with the
// emailed token. A successful verification yields a full auth payload which
// is applied to the session directly, with no separate login step.
type SignupVerifyController struct {
	accounts ports.AccountsAPI
	sessions *session.Store
	nav      ports.Navigator

	form  SignupVerifyForm
	state ScreenState
}

// NewSignupVerifyController constructs a SignupVerifyController. queryToken
// pre-fills the token field when the user followed the emailed link.
func NewSignupVerifyController(opts SignupVerifyControllerOptions, queryToken string) *SignupVerifyController {
	return &SignupVerifyController{
		accounts: opts.Accounts,
		sessions: opts.Sessions,
		nav:      opts.Nav,
		form:     SignupVerifyForm{Token: queryToken},
		state:    ScreenState{Phase: PhaseIdle},
	}
}

// State returns the screen's lifecycle state.
func (c *SignupVerifyController) State() ScreenState {
	return c.state
}

// Form returns the current field state, including any pre-filled token.
func (c *SignupVerifyController) Form() SignupVerifyForm {
	return c.form
}

// Submit verifies the token and establishes the returned session.
func (c *SignupVerifyController) Submit(ctx context.Context, form SignupVerifyForm) error {
	c.form = form
	if form.Token == "" {
		err := apperr.ValidationField("token", "Verification token is required")
		c.state = ScreenState{Phase: PhaseIdle, Status: err.Message}
		return err
	}

	c.state = ScreenState{Phase: PhaseSubmitting}
	resp, err := c.accounts.VerifySignup(ctx, ports.SignupVerification{
		Token:      form.Token,
		Password:   form.Password,
		FirstName:  form.FirstName,
		LastName:   form.LastName,
		RememberMe: form.RememberMe,
	})
	if err != nil {
		c.state = ScreenState{Phase: PhaseIdle, Status: apperr.Message(err, "Unable to verify signup")}
		return err
	}

	c.sessions.Apply(ctx, resp)
	c.state = ScreenState{Phase: PhaseIdle}
	c.nav.NavigateTo(RouteDashboard)
	return nil
}
