package googleid

// Package googleid obtains Google ID-token credentials through an OAuth2
// authorization-code flow with a loopback redirect, the desktop equivalent of
// the embedded identity widget. The rest of the client only ever sees the raw
// credential string, so this package's lifecycle stays out of the auth flow.

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

const googleIssuer = "https://accounts.google.com"

// Provider implements ports.CredentialProvider against Google's identity
// service.
type Provider struct {
	config   *oauth2.Config
	verifier *gooidc.IDTokenVerifier

	redirectAddr string
	prompt       func(authURL string)
	httpClient   *http.Client
}

// ProviderConfig holds configuration for the Google provider.
type ProviderConfig struct {
	ClientID     string
	ClientSecret string

	// RedirectAddr is the loopback address to listen on for Google's
	// redirect. Port 0 picks a free port.
	RedirectAddr string

	// Prompt is invoked with the authorization URL the user must visit.
	// Required: the caller owns how the URL reaches the user.
	Prompt func(authURL string)

	// HTTPClient overrides the transport used for discovery and exchange.
	HTTPClient *http.Client
}

// NewProvider creates a Google credential provider.
func NewProvider(ctx context.Context, cfg ProviderConfig) (*Provider, error) {
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if cfg.Prompt == nil {
		return nil, errors.New("prompt callback is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	redirectAddr := cfg.RedirectAddr
	if redirectAddr == "" {
		redirectAddr = "127.0.0.1:0"
	}

	// Single discovery fetch against the Google issuer.
	discoveryCtx := context.WithValue(ctx, oauth2.HTTPClient, httpClient)
	op, err := gooidc.NewProvider(discoveryCtx, googleIssuer)
	if err != nil {
		return nil, fmt.Errorf("oidc new provider: %w", err)
	}

	return &Provider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Scopes:       []string{gooidc.ScopeOpenID, "email", "profile"},
			Endpoint:     op.Endpoint(),
		},
		verifier:     op.Verifier(&gooidc.Config{ClientID: cfg.ClientID}),
		redirectAddr: redirectAddr,
		prompt:       cfg.Prompt,
		httpClient:   httpClient,
	}, nil
}

// Credential runs the authorization flow and returns the verified raw ID
// token, ready to forward to the backend's Google sign-in endpoint.
func (p *Provider) Credential(ctx context.Context) (string, error) {
	listener, err := net.Listen("tcp", p.redirectAddr)
	if err != nil {
		return "", fmt.Errorf("listen for redirect: %w", err)
	}
	defer func() { _ = listener.Close() }()

	state, err := generateRandomString(32)
	if err != nil {
		return "", fmt.Errorf("generate state: %w", err)
	}
	nonce, err := generateRandomString(32)
	if err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	cfg := *p.config
	cfg.RedirectURL = fmt.Sprintf("http://%s/callback", listener.Addr().String())

	authURL := cfg.AuthCodeURL(state,
		oauth2.SetAuthURLParam("nonce", nonce),
		oauth2.SetAuthURLParam("prompt", "select_account"),
	)
	p.prompt(authURL)

	code, err := waitForCallback(ctx, listener, state)
	if err != nil {
		return "", err
	}

	exchangeCtx := context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	token, err := cfg.Exchange(exchangeCtx, code)
	if err != nil {
		return "", fmt.Errorf("exchange code for token: %w", err)
	}

	rawID, ok := token.Extra("id_token").(string)
	if !ok || rawID == "" {
		return "", errors.New("missing id_token in token response")
	}

	idTok, err := p.verifier.Verify(ctx, rawID)
	if err != nil {
		return "", fmt.Errorf("verify id_token: %w", err)
	}
	if idTok.Nonce != nonce {
		return "", errors.New("invalid nonce")
	}

	return rawID, nil
}

// callbackResult carries the redirect parameters off the HTTP handler.
type callbackResult struct {
	code string
	err  error
}

// waitForCallback serves a single redirect request and returns the
// authorization code after checking the state parameter.
func waitForCallback(ctx context.Context, listener net.Listener, expectedState string) (string, error) {
	results := make(chan callbackResult, 1)

	server := &http.Server{
		ReadHeaderTimeout: 10 * time.Second,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			if errParam := query.Get("error"); errParam != "" {
				http.Error(w, "Sign-in failed. You can close this tab.", http.StatusBadRequest)
				results <- callbackResult{err: fmt.Errorf("provider returned error: %s", errParam)}
				return
			}
			if query.Get("state") != expectedState {
				http.Error(w, "Sign-in failed. You can close this tab.", http.StatusBadRequest)
				results <- callbackResult{err: errors.New("state mismatch")}
				return
			}
			code := query.Get("code")
			if code == "" {
				http.Error(w, "Sign-in failed. You can close this tab.", http.StatusBadRequest)
				results <- callbackResult{err: errors.New("missing authorization code")}
				return
			}
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = fmt.Fprintln(w, "Signed in. You can close this tab and return to the terminal.")
			results <- callbackResult{code: code}
		}),
	}

	go func() {
		if serveErr := server.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			select {
			case results <- callbackResult{err: serveErr}:
			default:
			}
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-results:
		return res.code, res.err
	}
}

// generateRandomString generates a cryptographically secure URL-safe random string of exact length.
func generateRandomString(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}
	nBytes := (length*3 + 3) / 4
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	s := base64.RawURLEncoding.EncodeToString(b)
	for len(s) < length {
		extra := make([]byte, 1)
		if _, err := rand.Read(extra); err != nil {
			return "", err
		}
		s += base64.RawURLEncoding.EncodeToString(extra)
	}
	return s[:length], nil
}
