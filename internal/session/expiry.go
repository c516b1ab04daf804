package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenExpiry decodes the exp claim of the held access token without
// verifying the signature; the backend is the verifier, the client only needs
// the timestamp to schedule refreshes. Returns false for anonymous sessions
// and tokens that do not decode.
func (s *Store) AccessTokenExpiry() (time.Time, bool) {
	token := s.Current().AccessToken
	if token == "" {
		return time.Time{}, false
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// NeedsRefresh reports whether the access token expires within the window.
// Undecodable tokens report false so a backend using opaque tokens never
// triggers refresh loops.
func (s *Store) NeedsRefresh(within time.Duration) bool {
	exp, ok := s.AccessTokenExpiry()
	if !ok {
		return false
	}
	return time.Until(exp) <= within
}

// EnsureFresh refreshes the access token when it is about to expire. It is a
// best-effort convenience for callers issuing authenticated requests; refresh
// failures follow RefreshAccessToken semantics (session reset, error
// returned).
func (s *Store) EnsureFresh(ctx context.Context, within time.Duration) error {
	if !s.NeedsRefresh(within) {
		return nil
	}
	_, err := s.RefreshAccessToken(ctx)
	return err
}
