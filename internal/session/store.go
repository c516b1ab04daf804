package session

// Package session owns the client's authentication state. All reads and
// writes of the current session funnel through Store so there is a single
// mutation surface and a single notification mechanism, instead of ad hoc
// shared globals.

import (
	"context"
	"log/slog"
	"sync"

	domainauth "github.com/healteex/trackctl/internal/domain/auth"
	"github.com/healteex/trackctl/internal/ports"
)

// Options groups dependencies for Store.
type Options struct {
	Accounts ports.AccountsAPI
	Vault    ports.SessionVault
	Logger   *slog.Logger
}

// Store holds the current session and coordinates sign-in, refresh, sign-out,
// and persistence. Reads of the current session never block behind an
// in-flight refresh; the most recent completed write wins.
type Store struct {
	accounts ports.AccountsAPI
	vault    ports.SessionVault
	logger   *slog.Logger

	mu      sync.RWMutex
	current domainauth.Session
	subs    []func(domainauth.Session)
}

// NewStore constructs a Store and restores any persisted session: the durable
// location is consulted first, then the session-scoped one, and anything
// unreadable degrades to anonymous.
func NewStore(ctx context.Context, opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		accounts: opts.Accounts,
		vault:    opts.Vault,
		logger:   logger,
	}

	if opts.Vault == nil {
		return s
	}

	if sess, ok, err := opts.Vault.ReadDurable(ctx); err == nil && ok && sess.IsAuthenticated() {
		s.current = sess
		return s
	} else if err != nil {
		logger.Warn("read durable session", "error", err)
	}

	if sess, ok, err := opts.Vault.ReadScoped(ctx); err == nil && ok && sess.IsAuthenticated() {
		s.current = sess
	} else if err != nil {
		logger.Warn("read scoped session", "error", err)
	}

	return s
}

// Current returns a snapshot of the session.
func (s *Store) Current() domainauth.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// IsAuthenticated reports whether an authenticated session is held.
func (s *Store) IsAuthenticated() bool {
	return s.Current().IsAuthenticated()
}

// AccessToken returns the current access token, empty when anonymous.
func (s *Store) AccessToken() string {
	return s.Current().AccessToken
}

// Subscribe registers fn to run after every session mutation with the new
// snapshot. Subscribers must not call back into the store.
func (s *Store) Subscribe(fn func(domainauth.Session)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// SignInWithPassword authenticates with email/password credentials. On
// success the whole session is replaced and persisted; on failure the prior
// session is left untouched and the error propagates.
func (s *Store) SignInWithPassword(
	ctx context.Context,
	creds ports.PasswordCredentials,
) (domainauth.Response, error) {
	resp, err := s.accounts.CreateToken(ctx, creds)
	if err != nil {
		return domainauth.Response{}, err
	}
	s.apply(ctx, resp)
	return resp, nil
}

// SignInWithGoogle authenticates with a Google ID-token credential. Same
// session replacement semantics as password sign-in.
func (s *Store) SignInWithGoogle(
	ctx context.Context,
	creds ports.GoogleCredentials,
) (domainauth.Response, error) {
	resp, err := s.accounts.GoogleSignIn(ctx, creds)
	if err != nil {
		return domainauth.Response{}, err
	}
	s.apply(ctx, resp)
	return resp, nil
}

// Apply sets the full session from an externally obtained auth payload, e.g.
// the one signup verification returns. Persistence follows the same rules as
// sign-in.
func (s *Store) Apply(ctx context.Context, resp domainauth.Response) {
	s.apply(ctx, resp)
}

// RefreshAccessToken exchanges the held refresh token for a new access token.
// Holding no refresh token is a no-op. A rejected refresh is fatal for the
// session: the store resets to anonymous rather than retrying, and the error
// is returned for logging.
func (s *Store) RefreshAccessToken(ctx context.Context) (string, error) {
	refresh := s.Current().RefreshToken
	if refresh == "" {
		return "", nil
	}

	resp, err := s.accounts.RefreshToken(ctx, refresh)
	if err != nil {
		s.logger.Warn("refresh token rejected, clearing session", "error", err)
		s.reset(ctx)
		return "", err
	}

	s.mu.Lock()
	s.current.AccessToken = resp.Access
	snapshot := s.current
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	s.notify(snapshot)
	return resp.Access, nil
}

// SignOut resets to anonymous unconditionally and clears persisted storage.
func (s *Store) SignOut(ctx context.Context) {
	s.reset(ctx)
}

// apply replaces the session with the one an auth payload establishes.
func (s *Store) apply(ctx context.Context, resp domainauth.Response) {
	sess := resp.Session()

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	s.persist(ctx, sess)
	s.notify(sess)
}

// reset returns the store to anonymous and clears both storage locations.
func (s *Store) reset(ctx context.Context) {
	s.mu.Lock()
	s.current = domainauth.Session{}
	s.mu.Unlock()

	if s.vault != nil {
		if err := s.vault.Clear(ctx); err != nil {
			s.logger.Warn("clear persisted session", "error", err)
		}
	}
	s.notify(domainauth.Session{})
}

// persist serializes the session to the storage location the remember flag
// selects, clearing the other; a session missing either token clears both.
// Persistence failures are logged, not surfaced: the in-memory session is
// already established and remains the source of truth.
func (s *Store) persist(ctx context.Context, sess domainauth.Session) {
	if s.vault == nil {
		return
	}

	var err error
	switch {
	case sess.AccessToken == "" || sess.RefreshToken == "":
		err = s.vault.Clear(ctx)
	case sess.Remember:
		err = s.vault.WriteDurable(ctx, sess)
	default:
		err = s.vault.WriteScoped(ctx, sess)
	}
	if err != nil {
		s.logger.Warn("persist session", "error", err)
	}
}

// notify runs subscribers with the new snapshot, outside the store lock.
func (s *Store) notify(sess domainauth.Session) {
	s.mu.RLock()
	subs := make([]func(domainauth.Session), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(sess)
	}
}
