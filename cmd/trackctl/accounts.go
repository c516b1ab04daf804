package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/healteex/trackctl/internal/adapters/googleid"
	"github.com/healteex/trackctl/internal/controller"
	domainauth "github.com/healteex/trackctl/internal/domain/auth"
)

type loginOptions struct {
	Email    string
	Password string
	Role     string
	Remember bool
	Google   bool
}

func parseLoginFlags(args []string) (loginOptions, error) {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts loginOptions
	fs.StringVar(&opts.Email, "email", "", "Account email")
	fs.StringVar(&opts.Password, "password", "", "Account password (prompted when omitted)")
	fs.StringVar(&opts.Role, "role", "", "Role to sign in under when the email has several accounts")
	fs.BoolVar(&opts.Remember, "remember", false, "Persist the session across logins on this machine")
	fs.BoolVar(&opts.Google, "google", false, "Sign in with Google instead of a password")

	if err := fs.Parse(args); err != nil {
		return loginOptions{}, err
	}
	return opts, nil
}

func runLogin(cmdCtx *commandContext, args []string) error {
	opts, err := parseLoginFlags(args)
	if err != nil {
		return err
	}

	a, err := newApp(cmdCtx)
	if err != nil {
		return err
	}
	defer a.Close()

	if opts.Google {
		return loginWithGoogle(cmdCtx, a, opts)
	}

	if opts.Password == "" {
		opts.Password, err = promptLine("Password: ")
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, 2*time.Minute)
	defer cancel()

	login := controller.NewLoginController(controller.LoginControllerOptions{
		Sessions: a.Sessions,
		Nav:      a.Nav,
	})
	if err := login.Submit(ctx, controller.LoginForm{
		Email:      opts.Email,
		Password:   opts.Password,
		Role:       opts.Role,
		RememberMe: opts.Remember,
	}, ""); err != nil {
		return err
	}

	return printSignedIn(a)
}

func loginWithGoogle(cmdCtx *commandContext, a *app, opts loginOptions) error {
	// The consent flow waits on a human, so it gets a generous deadline.
	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, 5*time.Minute)
	defer cancel()

	provider, err := googleid.NewProvider(ctx, googleid.ProviderConfig{
		ClientID:     a.Config.Google.ClientID,
		ClientSecret: a.Config.Google.ClientSecret,
		RedirectAddr: a.Config.Google.RedirectAddr,
		Prompt:       promptAuthURL,
	})
	if err != nil {
		return err
	}

	login := controller.NewLoginController(controller.LoginControllerOptions{
		Sessions:    a.Sessions,
		Credentials: provider,
		Nav:         a.Nav,
	})
	if err := login.SubmitGoogle(ctx, controller.LoginForm{
		Role:       opts.Role,
		RememberMe: opts.Remember,
	}); err != nil {
		return err
	}

	return printSignedIn(a)
}

func printSignedIn(a *app) error {
	sess := a.Sessions.Current()
	if sess.User == nil {
		return errors.New("sign-in succeeded but no user was returned")
	}
	return writef(os.Stdout, "Signed in as %s\n", sess.User.DisplayName())
}

func runLogout(cmdCtx *commandContext, args []string) error {
	if len(args) != 0 {
		return errors.New("logout takes no arguments")
	}

	a, err := newApp(cmdCtx)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, 30*time.Second)
	defer cancel()

	a.Sessions.SignOut(ctx)
	return writeln(os.Stdout, "Signed out")
}

func runWhoami(cmdCtx *commandContext, args []string) error {
	if len(args) != 0 {
		return errors.New("whoami takes no arguments")
	}

	a, err := newApp(cmdCtx)
	if err != nil {
		return err
	}
	defer a.Close()

	sess := a.Sessions.Current()
	if !sess.IsAuthenticated() {
		return writeln(os.Stdout, "Not signed in")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writef(w, "User\t%s\n", sess.User.DisplayName()); err != nil {
		return err
	}
	if err := writef(w, "Email\t%s\n", sess.User.Email); err != nil {
		return err
	}
	if sess.User.Role != nil {
		if err := writef(w, "Role\t%s\n", sess.User.Role.String()); err != nil {
			return err
		}
	}
	if err := writef(w, "Remembered\t%t\n", sess.Remember); err != nil {
		return err
	}
	if expiry, ok := a.Sessions.AccessTokenExpiry(); ok {
		if err := writef(w, "Token expires\t%s\n", expiry.Local().Format(time.RFC1123)); err != nil {
			return err
		}
	}
	return w.Flush()
}

func runRefresh(cmdCtx *commandContext, args []string) error {
	if len(args) != 0 {
		return errors.New("refresh takes no arguments")
	}

	a, err := newApp(cmdCtx)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, 30*time.Second)
	defer cancel()

	token, err := a.Sessions.RefreshAccessToken(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return errors.New("no refresh token; sign in first")
	}

	if expiry, ok := a.Sessions.AccessTokenExpiry(); ok {
		return writef(os.Stdout, "Access token refreshed, valid until %s\n", expiry.Local().Format(time.RFC1123))
	}
	return writeln(os.Stdout, "Access token refreshed")
}

type signupRequestOptions struct {
	Email string
	Role  string
}

func parseSignupRequestFlags(args []string) (signupRequestOptions, error) {
	fs := flag.NewFlagSet("signup-request", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts signupRequestOptions
	fs.StringVar(&opts.Email, "email", "", "Email to send the verification token to (required)")
	fs.StringVar(&opts.Role, "role", "", "Requested role: "+roleList()+" (required)")

	if err := fs.Parse(args); err != nil {
		return signupRequestOptions{}, err
	}
	return opts, nil
}

func runSignupRequest(cmdCtx *commandContext, args []string) error {
	opts, err := parseSignupRequestFlags(args)
	if err != nil {
		return err
	}

	a, err := newApp(cmdCtx)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, 30*time.Second)
	defer cancel()

	signup := controller.NewSignupRequestController(a.API)
	if err := signup.Submit(ctx, controller.SignupRequestForm{
		Email: opts.Email,
		Role:  opts.Role,
	}); err != nil {
		return err
	}

	receipt := signup.Receipt()
	if err := writeln(os.Stdout, receipt.Detail); err != nil {
		return err
	}
	return writef(os.Stdout, "The token expires in %d minutes. Complete signup with:\n\n  trackctl signup-verify --token <token>\n", receipt.ExpiresInMinutes)
}

type signupVerifyOptions struct {
	Token     string
	Password  string
	FirstName string
	LastName  string
	Remember  bool
}

func parseSignupVerifyFlags(args []string) (signupVerifyOptions, error) {
	fs := flag.NewFlagSet("signup-verify", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts signupVerifyOptions
	fs.StringVar(&opts.Token, "token", "", "Verification token from the signup email (required)")
	fs.StringVar(&opts.Password, "password", "", "Password for the new account (prompted when omitted)")
	fs.StringVar(&opts.FirstName, "first-name", "", "First name")
	fs.StringVar(&opts.LastName, "last-name", "", "Last name")
	fs.BoolVar(&opts.Remember, "remember", false, "Persist the session across logins on this machine")

	if err := fs.Parse(args); err != nil {
		return signupVerifyOptions{}, err
	}
	return opts, nil
}

func runSignupVerify(cmdCtx *commandContext, args []string) error {
	opts, err := parseSignupVerifyFlags(args)
	if err != nil {
		return err
	}

	a, err := newApp(cmdCtx)
	if err != nil {
		return err
	}
	defer a.Close()

	if opts.Password == "" {
		opts.Password, err = promptLine("Password: ")
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, 30*time.Second)
	defer cancel()

	verify := controller.NewSignupVerifyController(controller.SignupVerifyControllerOptions{
		Accounts: a.API,
		Sessions: a.Sessions,
		Nav:      a.Nav,
	}, opts.Token)
	if err := verify.Submit(ctx, controller.SignupVerifyForm{
		Token:      opts.Token,
		Password:   opts.Password,
		FirstName:  opts.FirstName,
		LastName:   opts.LastName,
		RememberMe: opts.Remember,
	}); err != nil {
		return err
	}

	return printSignedIn(a)
}

func promptLine(prompt string) (string, error) {
	if err := write(os.Stderr, prompt); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func roleList() string {
	roles := domainauth.Roles()
	parts := make([]string, 0, len(roles))
	for _, r := range roles {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ", ")
}
