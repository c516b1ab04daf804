package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"

	domainauth "github.com/healteex/trackctl/internal/domain/auth"
	"github.com/healteex/trackctl/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.SessionVault       = (*MemoryVault)(nil)
	_ ports.CredentialProvider = (*StaticCredentialProvider)(nil)
	_ ports.Navigator          = (*RecordingNavigator)(nil)
)

// MemoryVault is an in-memory session vault with the same exclusivity
// contract as the real adapters: at most one location is populated.
type MemoryVault struct {
	Durable *domainauth.Session
	Scoped  *domainauth.Session

	// FailWrites makes every write return an error, for exercising the
	// store's persistence-failure tolerance.
	FailWrites bool

	// WriteDurableCalls and WriteScopedCalls count persistence attempts.
	WriteDurableCalls int
	WriteScopedCalls  int
	ClearCalls        int
}

// NewMemoryVault creates an empty MemoryVault.
func NewMemoryVault() *MemoryVault {
	return &MemoryVault{}
}

// ReadDurable returns the durable session, if any.
func (v *MemoryVault) ReadDurable(_ context.Context) (domainauth.Session, bool, error) {
	if v.Durable == nil {
		return domainauth.Session{}, false, nil
	}
	return *v.Durable, true, nil
}

// ReadScoped returns the scoped session, if any.
func (v *MemoryVault) ReadScoped(_ context.Context) (domainauth.Session, bool, error) {
	if v.Scoped == nil {
		return domainauth.Session{}, false, nil
	}
	return *v.Scoped, true, nil
}

// WriteDurable stores the session durably and clears the scoped slot.
func (v *MemoryVault) WriteDurable(_ context.Context, sess domainauth.Session) error {
	v.WriteDurableCalls++
	if v.FailWrites {
		return errors.New("write failed")
	}
	v.Durable = &sess
	v.Scoped = nil
	return nil
}

// WriteScoped stores the session in the scoped slot and clears the durable one.
func (v *MemoryVault) WriteScoped(_ context.Context, sess domainauth.Session) error {
	v.WriteScopedCalls++
	if v.FailWrites {
		return errors.New("write failed")
	}
	v.Scoped = &sess
	v.Durable = nil
	return nil
}

// Clear empties both slots.
func (v *MemoryVault) Clear(_ context.Context) error {
	v.ClearCalls++
	if v.FailWrites {
		return errors.New("clear failed")
	}
	v.Durable = nil
	v.Scoped = nil
	return nil
}

// StaticCredentialProvider returns a fixed credential or error.
type StaticCredentialProvider struct {
	Token string
	Err   error
}

// Credential returns the configured token or error.
func (p *StaticCredentialProvider) Credential(_ context.Context) (string, error) {
	if p.Err != nil {
		return "", p.Err
	}
	return p.Token, nil
}

// Navigation records a single navigation call.
type Navigation struct {
	Route string
	From  string
}

// RecordingNavigator captures navigation calls for assertions.
type RecordingNavigator struct {
	Calls []Navigation
}

// NavigateTo records a plain navigation.
func (n *RecordingNavigator) NavigateTo(route string) {
	n.Calls = append(n.Calls, Navigation{Route: route})
}

// NavigateFrom records a navigation that preserves the origin.
func (n *RecordingNavigator) NavigateFrom(route, from string) {
	n.Calls = append(n.Calls, Navigation{Route: route, From: from})
}

// Last returns the most recent navigation, or false when none occurred.
func (n *RecordingNavigator) Last() (Navigation, bool) {
	if len(n.Calls) == 0 {
		return Navigation{}, false
	}
	return n.Calls[len(n.Calls)-1], true
}
