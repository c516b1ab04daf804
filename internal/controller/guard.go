package controller

import (
	"github.com/healteex/trackctl/internal/ports"
	"github.com/healteex/trackctl/internal/session"
)

// Guard is the stateless predicate protecting authenticated routes.
type Guard struct {
	sessions *session.Store
	nav      ports.Navigator
}

// NewGuard constructs a Guard.
func NewGuard(sessions *session.Store, nav ports.Navigator) *Guard {
	return &Guard{sessions: sessions, nav: nav}
}

// Allow reports whether the visitor may see route. Anonymous visitors are
// redirected to the login screen with route preserved, so a later successful
// login can return them there.
func (g *Guard) Allow(route string) bool {
	if g.sessions.IsAuthenticated() {
		return true
	}
	g.nav.NavigateFrom(RouteLogin, route)
	return false
}
